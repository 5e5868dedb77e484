package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessticot-go/internal/config"
)

// newLogger builds the program logger: human-readable on a terminal,
// JSON lines everywhere else.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var w io.Writer = cfg.LogFile
	if f, ok := cfg.LogFile.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// setupLogFile redirects logs to the -logfile path if given.
func setupLogFile(cfg *config.Config) error {
	if *logFile == "" {
		return nil
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return err
	}
	cfg.LogFile = file
	return nil
}
