package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"fsevents/internal/cli"
	cliplugins "fsevents/internal/cli_plugins"
	"fsevents/internal/config"
	"fsevents/internal/util/logger/handlers/slogpretty"
	"fsevents/internal/util/logger/sl"
	clipkg "fsevents/pkg/cli"
)

func main() {
	// Загружаем конфигурацию; при ошибке работаем с настройками по умолчанию
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	// Настраиваем логгер
	log := setupLogger(cfg.Env).With(slog.String("run_id", uuid.NewString()))
	if cfgErr != nil {
		log.Error("config load failed, using defaults", sl.Err(cfgErr))
	}

	location, err := cfg.Location()
	if err != nil {
		log.Error("unknown timezone, using UTC", sl.Err(err))
		location = time.UTC
	}

	appCtx := cli.NewAppContext(cfg, log, location, colorEnabled(cfg.Color))

	c := clipkg.NewCLI(cliplugins.NewInterpretCommand(appCtx))
	c.RegisterPlugin(cliplugins.NewValidateCommand(appCtx))

	// код возврата всегда 0: ошибки только диагностируются
	if err := c.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Error("command failed", sl.Err(err))
	}
}

func colorEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stderr)

	return slog.New(handler)
}
