// Package config loads application configuration from a YAML file and
// environment variables.
//
// Structs describe both sources with tags, the way the other packages of
// this module do:
//
//	type Config struct {
//		Addr     string        `yaml:"addr" env:"ADDR" envDefault:":8080"`
//		Database db.Config     `yaml:"database"`
//		Table    tabula.Config `yaml:"table"`
//	}
//
//	cfg := Config{Table: tabula.DefaultConfig()}
//	err := config.Load("tabula.yaml", &cfg)
//
// Unknown YAML keys are rejected so typos surface at startup.
package config
