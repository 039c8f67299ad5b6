package logger

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig configures rotating file output
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// writer resolves the destination for log output
func (c Config) writer() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	if c.File.Path == "" {
		return os.Stdout
	}

	maxSize := c.File.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 50
	}
	return &lumberjack.Logger{
		Filename:   c.File.Path,
		MaxSize:    maxSize,
		MaxBackups: c.File.MaxBackups,
		MaxAge:     c.File.MaxAgeDays,
		Compress:   c.File.Compress,
	}
}
