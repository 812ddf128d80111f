package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	Env      string `yaml:"env" env-default:"prod" env:"ENV"`
	Timezone string `yaml:"timezone" env-default:"UTC" env:"FSEVENTS_TZ"`
	Color    string `yaml:"color" env-default:"auto" env:"FSEVENTS_COLOR"`
}

// Load читает конфигурацию из файла CONFIG_PATH (если задан) и окружения.
// Priority: env > file > default.
func Load() (*Config, error) {
	return LoadConfig(os.Getenv("CONFIG_PATH"))
}

func LoadConfig(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from env: %w", err)
		}
	} else {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when loading fails.
func Default() *Config {
	return &Config{Env: EnvProd, Timezone: "UTC", Color: ColorAuto}
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimezone, err)
	}
	return loc, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEnv, c.Env)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
