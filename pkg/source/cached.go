package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/dmitrymomot/tabula/pkg/cache"
)

type countCached struct {
	Source
	cache cache.Cache[int]
	ttl   time.Duration
}

// WithCountCache wraps src so Count results are cached for ttl.
// Queries with in-memory filters bypass the cache because predicates cannot be keyed.
func WithCountCache(src Source, c cache.Cache[int], ttl time.Duration) Source {
	return &countCached{Source: src, cache: c, ttl: ttl}
}

func (c *countCached) Name() string {
	return NameOf(c.Source)
}

func (c *countCached) Count(ctx context.Context, q Query) (int, error) {
	if q.Scope.HasFilters() {
		return c.Source.Count(ctx, q)
	}

	return cache.GetOrSet(ctx, c.cache, countKey(NameOf(c.Source), q), func(ctx context.Context) (int, time.Duration, error) {
		n, err := c.Source.Count(ctx, q)
		return n, c.ttl, err
	})
}

// countKey hashes everything that changes a count: sort and page do not.
func countKey(name string, q Query) string {
	h := sha256.New()
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(strings.TrimSpace(q.Search))))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(q.SearchFields, ",")))
	h.Write([]byte{0})
	h.Write([]byte(q.Scope.Key()))
	return "count:" + name + ":" + hex.EncodeToString(h.Sum(nil))[:32]
}
