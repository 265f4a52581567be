// Package logging builds the zerolog logger shared by every taskline command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Options configures New. The zero value logs at info level to stderr.
type Options struct {
	// Level is a zerolog level name. Verbose and Quiet take precedence over it.
	Level   string
	Verbose bool
	Quiet   bool

	// File is an optional rotating log file.
	File string

	// Console replaces stderr. It is written as JSON, never colored.
	Console io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger, installs it as log.Logger and returns a closer for the
// log file, if any.
func New(o Options) (zerolog.Logger, io.Closer, error) {
	level, err := SelectLevel(o.Level, o.Verbose, o.Quiet)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	console := o.Console
	if console == nil {
		console = selectOutput()
	}

	var w io.Writer = console
	var closer io.Closer = nopCloser{}
	if o.File != "" {
		lj, err := fileWriter(o.File)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		w = zerolog.MultiLevelWriter(console, lj)
		closer = lj
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	return logger, closer, nil
}

// SelectLevel resolves the effective level from a level name and the
// verbosity flags. An empty name means info.
func SelectLevel(name string, verbose, quiet bool) (zerolog.Level, error) {
	switch {
	case verbose:
		return zerolog.DebugLevel, nil
	case quiet:
		return zerolog.WarnLevel, nil
	case name == "":
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return os.Stderr
}

func fileWriter(path string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}, nil
}
