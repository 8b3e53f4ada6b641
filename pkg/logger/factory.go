package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development debugging.
	FormatText Format = "text"
)

// Config holds environment-driven logger settings.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format Format `env:"LOG_FORMAT" envDefault:"json"`
}

// Option configures logger creation.
type Option func(*settings)

type settings struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// WithLevel sets the minimum log level.
func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat sets the output format. Unknown formats fall back to JSON.
func WithFormat(f Format) Option {
	return func(s *settings) { s.format = f }
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr adds static attributes to every log record, such as the service name.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) { s.attrs = append(s.attrs, attrs...) }
}

// New creates a slog.Logger with the given options.
// Defaults: info level, JSON format, stdout.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	ho := &slog.HandlerOptions{Level: s.level}

	var h slog.Handler
	if s.format == FormatText {
		h = slog.NewTextHandler(s.output, ho)
	} else {
		h = slog.NewJSONHandler(s.output, ho)
	}

	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}

	return slog.New(h)
}

// NewFromConfig creates a logger from environment-driven configuration.
// Additional options override config values.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{
		WithLevel(parseLevel(cfg.Level)),
		WithFormat(cfg.Format),
	}
	return New(append(configOpts, opts...)...)
}

// NewDiscard returns a logger that drops all records. Useful as a default
// in constructors and in tests.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
