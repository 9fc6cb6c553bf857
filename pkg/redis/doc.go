// Package redis opens the go-redis client that backs the shared row count
// cache of SQL sources.
//
// Configuration comes from Config, usually loaded from YAML and REDIS_*
// environment variables. Open validates the URL, applies pool settings and
// pings the server, retrying RetryAttempts times with a growing delay:
//
//	client, err := redis.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Errors wrap ErrEmptyConnectionURL, ErrFailedToParseURL or
// ErrConnectionFailed with errors.Join.
package redis
