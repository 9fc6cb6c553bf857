package redis

import "time"

// Config holds the Redis connection settings used for shared count caching.
type Config struct {
	// redis:// or rediss:// URL. Empty disables Redis.
	URL string `yaml:"url" env:"REDIS_URL"`

	PoolSize      int           `yaml:"pool_size" env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns  int           `yaml:"min_idle_conns" env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	MaxIdleTime   time.Duration `yaml:"max_idle_time" env:"REDIS_MAX_IDLE_TIME" envDefault:"10m"`
	DialTimeout   time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout   time.Duration `yaml:"read_timeout" env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout  time.Duration `yaml:"write_timeout" env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
	RetryAttempts int           `yaml:"retry_attempts" env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `yaml:"retry_interval" env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`

	// Key prefix for cached row counts.
	Prefix string        `yaml:"prefix" env:"REDIS_PREFIX" envDefault:"tabula:count:"`
	TTL    time.Duration `yaml:"ttl" env:"REDIS_COUNT_TTL" envDefault:"30s"`
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}
