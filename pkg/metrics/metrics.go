package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/tabula/pkg/source"
)

const namespace = "tabula"

// Metrics collects table query and render metrics.
type Metrics struct {
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
	Renders       *prometheus.CounterVec
	RowsReturned  *prometheus.HistogramVec
}

// New registers the table metrics with reg.
// A nil registerer selects prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		QueryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "source",
				Name:      "query_duration_seconds",
				Help:      "Time spent in data source calls",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
			},
			[]string{"table", "op"}, // op: "count|rows"
		),
		QueryErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "source",
				Name:      "query_errors_total",
				Help:      "Failed data source calls",
			},
			[]string{"table", "op"},
		),
		Renders: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "renders_total",
				Help:      "Rendered tables by response kind",
			},
			[]string{"table", "kind"}, // kind: "page|partial"
		),
		RowsReturned: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "source",
				Name:      "rows_returned",
				Help:      "Rows returned per page",
				Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
			},
			[]string{"table"},
		),
	}
}

// RecordRender counts a rendered table.
func (m *Metrics) RecordRender(table string, partial bool) {
	if m == nil {
		return
	}
	kind := "page"
	if partial {
		kind = "partial"
	}
	m.Renders.WithLabelValues(table, kind).Inc()
}

// Instrument wraps src so each call is timed and failures are counted.
// The table label comes from the source name.
func (m *Metrics) Instrument(src source.Source) source.Source {
	if m == nil {
		return src
	}
	return &instrumented{Source: src, metrics: m, table: source.NameOf(src)}
}

type instrumented struct {
	source.Source
	metrics *Metrics
	table   string
}

func (s *instrumented) Name() string {
	return s.table
}

func (s *instrumented) Count(ctx context.Context, q source.Query) (int, error) {
	start := time.Now()
	n, err := s.Source.Count(ctx, q)
	s.observe("count", start, err)
	return n, err
}

func (s *instrumented) Rows(ctx context.Context, q source.Query) ([]source.Row, error) {
	start := time.Now()
	rows, err := s.Source.Rows(ctx, q)
	s.observe("rows", start, err)
	if err == nil {
		s.metrics.RowsReturned.WithLabelValues(s.table).Observe(float64(len(rows)))
	}
	return rows, err
}

func (s *instrumented) observe(op string, start time.Time, err error) {
	s.metrics.QueryDuration.WithLabelValues(s.table, op).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.QueryErrors.WithLabelValues(s.table, op).Inc()
	}
}
