package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the log level, output format and Sentry reporting.
type Config struct {
	Level  string       `yaml:"level" env:"LOG_LEVEL" envDefault:"info"`
	Format string       `yaml:"format" env:"LOG_FORMAT" envDefault:"json"`
	Sentry SentryConfig `yaml:"sentry"`
}

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithConfig(Config{}, os.Stdout, extractors...)
}

// NewWithConfig creates a logger writing to w with the configured level and
// format ("json" or "text"). Sentry is enabled when cfg.Sentry.DSN is set.
func NewWithConfig(cfg Config, w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	handler := newHandler(cfg, w)
	if cfg.Sentry.DSN != "" {
		if sentryHandler, err := newSentryHandler(cfg.Sentry); err != nil {
			slog.New(handler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		} else {
			handler = newMultiHandler(handler, sentryHandler)
		}
	}
	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}

// ParseLevel maps a level name to slog.Level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func newHandler(cfg Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
