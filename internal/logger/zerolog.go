package logger

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// zerologLogger implements Logger using rs/zerolog
type zerologLogger struct {
	logger zerolog.Logger
	level  Level
}

// NewZerologLogger creates a Logger backed by zerolog. Format "text" selects the
// human-readable console writer.
func NewZerologLogger(cfg Config) Logger {
	out := cfg.writer()
	if cfg.Format == "text" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zl := zerolog.New(out).
		Level(toZerologLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	return &zerologLogger{logger: zl, level: cfg.Level}
}

func toZerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func withFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		e = e.Interface(f.Key, f.Value)
	}
	return e
}

func (l *zerologLogger) Debug(msg string, fields ...Field) {
	withFields(l.logger.Debug(), fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...Field) {
	withFields(l.logger.Info(), fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...Field) {
	withFields(l.logger.Warn(), fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields ...Field) {
	withFields(l.logger.Error(), fields).Msg(msg)
}

func (l *zerologLogger) With(fields ...Field) Logger {
	c := l.logger.With()
	for _, f := range fields {
		c = c.Interface(f.Key, f.Value)
	}
	return &zerologLogger{logger: c.Logger(), level: l.level}
}

func (l *zerologLogger) WithContext(ctx context.Context) Logger {
	fields := contextFields(ctx)
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

func (l *zerologLogger) Level() Level {
	return l.level
}
