// Package logger provides the structured logging abstraction used across
// habitpulse. Backends (slog, zerolog) are chosen by configuration.
package logger

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"time"
)

// Level is a log severity, ordered from most to least verbose
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return levelNames[LevelInfo]
	}
	return levelNames[l]
}

// ParseLevel maps a configured level name to a Level. Unknown names mean info.
func ParseLevel(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return LevelWarn
	}
	for l, name := range levelNames {
		if name == s {
			return Level(l)
		}
	}
	return LevelInfo
}

// Field is one structured key/value on a log entry
type Field struct {
	Key   string
	Value any
}

func field[T any](key string, v T) Field { return Field{Key: key, Value: v} }

func String(key, v string) Field                 { return field(key, v) }
func Int(key string, v int) Field                { return field(key, v) }
func Int64(key string, v int64) Field            { return field(key, v) }
func Float64(key string, v float64) Field        { return field(key, v) }
func Bool(key string, v bool) Field              { return field(key, v) }
func Duration(key string, v time.Duration) Field { return field(key, v) }
func Time(key string, v time.Time) Field         { return field(key, v) }
func Any(key string, v any) Field                { return field(key, v) }

// Date logs a calendar day as YYYY-MM-DD
func Date(key string, day time.Time) Field { return field(key, day.Format(time.DateOnly)) }

// Err logs err under "error"; a nil error is logged as null
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error"}
	}
	return field("error", err.Error())
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child that adds fields to every entry
	With(fields ...Field) Logger
	// WithContext returns a child carrying request_id and user_id from ctx
	WithContext(ctx context.Context) Logger

	Level() Level
}

const (
	BackendSlog    = "slog"
	BackendZerolog = "zerolog"
)

type Config struct {
	Level Level
	// Format is "json" or "text"
	Format string
	// Backend is BackendSlog (default) or BackendZerolog
	Backend string
	// File sends output to a rotating file instead of stdout
	File FileConfig
	// AddSource adds file:line to entries (slog only)
	AddSource bool
	// Output overrides the destination; tests capture logs with it
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{Level: LevelInfo, Format: "json", Backend: BackendSlog}
}

// New builds a Logger for cfg
func New(cfg Config) Logger {
	switch cfg.Backend {
	case BackendZerolog:
		return NewZerologLogger(cfg)
	default:
		return NewSlogLogger(cfg)
	}
}

type holder struct{ Logger }

var global atomic.Pointer[holder]

// SetDefault replaces the process-wide logger used by Default
func SetDefault(l Logger) {
	global.Store(&holder{l})
}

// Default returns the process-wide logger, creating a JSON slog logger on first use
func Default() Logger {
	if h := global.Load(); h != nil {
		return h.Logger
	}
	global.CompareAndSwap(nil, &holder{NewSlogLogger(DefaultConfig())})
	return global.Load().Logger
}

func Debug(msg string, fields ...Field) { Default().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Default().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Default().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { Default().Error(msg, fields...) }
