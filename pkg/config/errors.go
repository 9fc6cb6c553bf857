package config

import "errors"

var (
	ErrReadFile  = errors.New("config: failed to read file")
	ErrParseFile = errors.New("config: failed to parse file")
	ErrParseEnv  = errors.New("config: failed to parse environment")
)
