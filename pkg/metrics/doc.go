// Package metrics exposes Prometheus metrics for tables: data source latency
// and failures, page sizes and render counts.
//
//	m := metrics.New(prometheus.DefaultRegisterer)
//	users := m.Instrument(source.NewPgx(pool, "users"))
package metrics
