package config

import "errors"

var (
	ErrConfigNotFound  = errors.New("config file does not exist")
	ErrInvalidEnv      = errors.New("invalid env")
	ErrInvalidColor    = errors.New("invalid color mode")
	ErrInvalidTimezone = errors.New("invalid timezone")
)
