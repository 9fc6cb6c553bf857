package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabula/pkg/metrics"
	"github.com/dmitrymomot/tabula/pkg/source"
)

type failingSource struct{ err error }

func (f failingSource) Count(context.Context, source.Query) (int, error)          { return 0, f.err }
func (f failingSource) Rows(context.Context, source.Query) ([]source.Row, error) { return nil, f.err }

func TestInstrument(t *testing.T) {
	t.Parallel()

	t.Run("times calls and records page sizes", func(t *testing.T) {
		t.Parallel()

		m := metrics.New(prometheus.NewRegistry())
		src := m.Instrument(source.NewMemory("users", []source.Row{{"id": 1}, {"id": 2}, {"id": 3}}))
		require.Equal(t, "users", source.NameOf(src))

		n, err := src.Count(context.Background(), source.Query{})
		require.NoError(t, err)
		require.Equal(t, 3, n)

		rows, err := src.Rows(context.Background(), source.Query{Limit: 2})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		require.Equal(t, 2, testutil.CollectAndCount(m.QueryDuration))
		require.Equal(t, 1, testutil.CollectAndCount(m.RowsReturned))
		require.Equal(t, 0, testutil.CollectAndCount(m.QueryErrors))
	})

	t.Run("counts failures", func(t *testing.T) {
		t.Parallel()

		m := metrics.New(prometheus.NewRegistry())
		boom := errors.New("boom")
		src := m.Instrument(failingSource{err: boom})

		_, err := src.Count(context.Background(), source.Query{})
		require.ErrorIs(t, err, boom)
		_, err = src.Rows(context.Background(), source.Query{})
		require.ErrorIs(t, err, boom)
		_, err = src.Rows(context.Background(), source.Query{})
		require.ErrorIs(t, err, boom)

		require.InDelta(t, 1, testutil.ToFloat64(m.QueryErrors.WithLabelValues("unknown", "count")), 0)
		require.InDelta(t, 2, testutil.ToFloat64(m.QueryErrors.WithLabelValues("unknown", "rows")), 0)
		require.Equal(t, 0, testutil.CollectAndCount(m.RowsReturned))
	})

	t.Run("nil metrics leave the source untouched", func(t *testing.T) {
		t.Parallel()

		var m *metrics.Metrics
		src := source.NewMemory("users", nil)
		require.Same(t, src, m.Instrument(src))
		m.RecordRender("users", true)
	})
}

func TestRecordRender(t *testing.T) {
	t.Parallel()

	m := metrics.New(prometheus.NewRegistry())
	m.RecordRender("users", false)
	m.RecordRender("users", true)
	m.RecordRender("users", true)

	require.InDelta(t, 1, testutil.ToFloat64(m.Renders.WithLabelValues("users", "page")), 0)
	require.InDelta(t, 2, testutil.ToFloat64(m.Renders.WithLabelValues("users", "partial")), 0)
}

func TestNew_RegistersOnce(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics.New(reg)
	require.Panics(t, func() { metrics.New(reg) })
}
