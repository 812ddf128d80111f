package cli

import (
	"log/slog"
	"time"

	"fsevents/internal/config"
)

// AppContext хранит зависимости, которые будут использоваться в командах CLI
type AppContext struct {
	Config   *config.Config
	Logger   *slog.Logger
	Location *time.Location
	Color    bool
}

func NewAppContext(cfg *config.Config, log *slog.Logger, location *time.Location, color bool) *AppContext {
	return &AppContext{
		Config:   cfg,
		Logger:   log,
		Location: location,
		Color:    color,
	}
}
