// Package cache provides the small key-value caches used to keep table totals.
//
// Counting rows is the one query a paginated table runs on every request that
// rarely changes between requests. [Cache] abstracts where those totals live:
//
//   - [Memory] keeps them in process, bounded by an entry limit
//   - [Redis] shares them between instances through go-redis
//
// [GetOrSet] loads a missing value once even when several requests miss the
// same key at the same time:
//
//	total, err := cache.GetOrSet(ctx, counts, key, func(ctx context.Context) (int, time.Duration, error) {
//		n, err := src.Count(ctx, q)
//		return n, 30 * time.Second, err
//	})
package cache
