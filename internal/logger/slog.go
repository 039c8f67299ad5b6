package logger

import (
	"context"
	"log/slog"
)

var slogLevels = [...]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func toSlogLevel(l Level) slog.Level {
	if l < LevelDebug || l > LevelError {
		return slog.LevelInfo
	}
	return slogLevels[l]
}

func toAttrs(fields []Field) []slog.Attr {
	attrs := make([]slog.Attr, len(fields))
	for i, f := range fields {
		attrs[i] = slog.Any(f.Key, f.Value)
	}
	return attrs
}

type slogLogger struct {
	h     *slog.Logger
	level Level
}

// NewSlogLogger returns a Logger on log/slog writing JSON, or logfmt-style
// text when cfg.Format is "text".
func NewSlogLogger(cfg Config) Logger {
	opts := &slog.HandlerOptions{Level: toSlogLevel(cfg.Level), AddSource: cfg.AddSource}

	var handler slog.Handler = slog.NewJSONHandler(cfg.writer(), opts)
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(cfg.writer(), opts)
	}
	return &slogLogger{h: slog.New(handler), level: cfg.Level}
}

func (l *slogLogger) log(lvl slog.Level, msg string, fields []Field) {
	l.h.LogAttrs(context.Background(), lvl, msg, toAttrs(fields)...)
}

func (l *slogLogger) Debug(msg string, fields ...Field) { l.log(slog.LevelDebug, msg, fields) }
func (l *slogLogger) Info(msg string, fields ...Field)  { l.log(slog.LevelInfo, msg, fields) }
func (l *slogLogger) Warn(msg string, fields ...Field)  { l.log(slog.LevelWarn, msg, fields) }
func (l *slogLogger) Error(msg string, fields ...Field) { l.log(slog.LevelError, msg, fields) }

func (l *slogLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	child := l.h.Handler().WithAttrs(toAttrs(fields))
	return &slogLogger{h: slog.New(child), level: l.level}
}

func (l *slogLogger) WithContext(ctx context.Context) Logger {
	return l.With(contextFields(ctx)...)
}

func (l *slogLogger) Level() Level { return l.level }
