// Package logging builds the application's zerolog logger. The TUI owns the
// terminal, so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	Path          string    // file to append to; ignored when Writer is set
	Writer        io.Writer // overrides Path
	HumanReadable bool
}

// New returns a logger and a closer for its output. With neither Path nor
// Writer set it returns a disabled logger.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var (
		out    io.Writer = opts.Writer
		closer io.Closer = nopCloser{}
	)
	if out == nil {
		if strings.TrimSpace(opts.Path) == "" {
			return zerolog.Nop(), nopCloser{}, nil
		}
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = out
		console.NoColor = true
		console.TimeFormat = time.RFC3339
		out = console
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
