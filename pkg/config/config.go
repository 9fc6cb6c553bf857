package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load fills cfg, a pointer to a struct, in three layers:
//
//  1. envDefault tags, for fields still at their zero value;
//  2. the YAML file at path, when path is not empty;
//  3. environment variables named by env tags.
//
// Later layers win. Values already set on cfg before the call survive
// unless a later layer overrides them, so callers may pre-fill defaults.
func Load(path string, cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Environment:                  map[string]string{},
		SetDefaultsForZeroValuesOnly: true,
	}); err != nil {
		return errors.Join(ErrParseEnv, err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Join(ErrReadFile, err)
		}
		if err := decodeYAML(data, cfg); err != nil {
			return err
		}
	}

	// Defaults were applied above; a tag name nobody uses disables them here.
	if err := env.ParseWithOptions(cfg, env.Options{DefaultValueTagName: "envDefaultDisabled"}); err != nil {
		return errors.Join(ErrParseEnv, err)
	}
	return nil
}

// LoadEnv fills cfg from envDefault tags and the given environment only.
// Tests use it to avoid depending on the process environment.
func LoadEnv(cfg any, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Environment:                  environ,
		SetDefaultsForZeroValuesOnly: true,
	}); err != nil {
		return errors.Join(ErrParseEnv, err)
	}
	return nil
}

func decodeYAML(data []byte, cfg any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(ErrParseFile, err)
	}
	return nil
}
