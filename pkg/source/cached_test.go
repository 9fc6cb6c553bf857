package source_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabula/pkg/cache"
	"github.com/dmitrymomot/tabula/pkg/source"
)

type countingSource struct {
	source.Source
	counts atomic.Int32
}

func (c *countingSource) Name() string { return "users" }

func (c *countingSource) Count(ctx context.Context, q source.Query) (int, error) {
	c.counts.Add(1)
	return c.Source.Count(ctx, q)
}

func TestWithCountCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reuses counts across pages and sorts", func(t *testing.T) {
		t.Parallel()

		inner := &countingSource{Source: source.NewMemory("users", users())}
		src := source.WithCountCache(inner, cache.NewMemory[int](), time.Minute)

		n, err := src.Count(ctx, source.Query{SortField: "id", Limit: 2})
		require.NoError(t, err)
		require.Equal(t, 4, n)

		n, err = src.Count(ctx, source.Query{SortField: "name", SortDir: source.Desc, Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Equal(t, 4, n)
		require.Equal(t, int32(1), inner.counts.Load())
		require.Equal(t, "users", source.NameOf(src))
	})

	t.Run("search term changes the key", func(t *testing.T) {
		t.Parallel()

		inner := &countingSource{Source: source.NewMemory("users", users())}
		src := source.WithCountCache(inner, cache.NewMemory[int](), time.Minute)

		n, err := src.Count(ctx, source.Query{Search: "example", SearchFields: []string{"email"}})
		require.NoError(t, err)
		require.Equal(t, 3, n)

		n, err = src.Count(ctx, source.Query{Search: "test.dev", SearchFields: []string{"email"}})
		require.NoError(t, err)
		require.Equal(t, 1, n)

		_, err = src.Count(ctx, source.Query{Search: " EXAMPLE ", SearchFields: []string{"email"}})
		require.NoError(t, err)
		require.Equal(t, int32(2), inner.counts.Load())
	})

	t.Run("scopes with filters bypass the cache", func(t *testing.T) {
		t.Parallel()

		inner := &countingSource{Source: source.NewMemory("users", users())}
		src := source.WithCountCache(inner, cache.NewMemory[int](), time.Minute)
		scope := source.NewScope().Filter(func(r source.Row) bool { return r["active"] == true })

		for range 3 {
			n, err := src.Count(ctx, source.Query{Scope: scope})
			require.NoError(t, err)
			require.Equal(t, 2, n)
		}
		require.Equal(t, int32(3), inner.counts.Load())
	})

	t.Run("rows are never cached", func(t *testing.T) {
		t.Parallel()

		src := source.WithCountCache(source.NewMemory("users", users()), cache.NewMemory[int](), time.Minute)
		rows, err := src.Rows(ctx, source.Query{SortField: "id", Limit: 1})
		require.NoError(t, err)
		require.Equal(t, []any{1}, ids(rows))
	})
}
