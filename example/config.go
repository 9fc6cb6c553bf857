package main

import (
	"time"

	"github.com/dmitrymomot/tabula"
	"github.com/dmitrymomot/tabula/pkg/config"
	"github.com/dmitrymomot/tabula/pkg/db"
	"github.com/dmitrymomot/tabula/pkg/logger"
	"github.com/dmitrymomot/tabula/pkg/redis"
)

// Config is the demo server configuration.
type Config struct {
	Addr           string        `yaml:"addr" env:"ADDR" envDefault:":8080"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" envDefault:"10s"`
	Metrics        bool          `yaml:"metrics" env:"METRICS" envDefault:"true"`

	Log      logger.Config `yaml:"log"`
	Database db.Config     `yaml:"database"`
	Redis    redis.Config  `yaml:"redis"`
	Table    tabula.Config `yaml:"table"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{Table: tabula.DefaultConfig()}
	if err := config.Load(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
