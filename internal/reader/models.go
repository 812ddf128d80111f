package reader

import "log/slog"

// Config содержит настройки для Reader
type Config struct {
	Logger *slog.Logger
}

// Rejection описывает отброшенную строку трассы.
type Rejection struct {
	Line int
	Text string
	Err  error
}
