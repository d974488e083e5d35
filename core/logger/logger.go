package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	out   io.Writer
	level slog.Level
	json  bool
	attrs []slog.Attr
}

// Option configures a logger built by New.
type Option func(*options)

// WithOutput sets the destination of log records. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLevel sets the minimum level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSON switches the output to JSON. Text is used by default.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithAttrs adds attributes to every record.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// New creates a structured logger.
func New(opts ...Option) *slog.Logger {
	o := &options{out: os.Stderr, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(o)
	}

	hopts := &slog.HandlerOptions{Level: o.level}
	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.out, hopts)
	} else {
		h = slog.NewTextHandler(o.out, hopts)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}
	return slog.New(h)
}

// ParseLevel converts a level name such as "debug" or "warn" to slog.Level.
// Unknown names resolve to slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}
