// Package logging builds the zerolog logger used by every command.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params controls where and how much is logged
type Params struct {
	Level   string
	File    string // rotated JSON log; empty disables file output
	Verbose bool   // also write human-readable lines to stderr
}

// New returns the configured logger and a closer for the log file.
// A log file that cannot be created degrades to console-only logging.
func New(p Params) (zerolog.Logger, io.Closer) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if p.Verbose {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}

	if p.File != "" {
		if err := os.MkdirAll(filepath.Dir(p.File), 0o755); err == nil {
			lj := &lumberjack.Logger{
				Filename:   p.File,
				MaxSize:    10, // megabytes
				MaxBackups: 5,
				Compress:   true,
			}
			writers = append(writers, lj)
			closer = lj
		}
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closer
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(p.Level)).
		With().Timestamp().Logger()
	return logger, closer
}

// ParseLevel maps a config string to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
