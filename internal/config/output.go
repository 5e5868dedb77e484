package config

import (
	"io"
	"os"
)

// OutputConfig holds settings related to writing finished games.
type OutputConfig struct {
	// JSON selects JSON instead of PGN
	JSON bool

	// MaxLineLength is the maximum line length for PGN movetext
	MaxLineLength int

	// Event is written into the PGN Event tag
	Event string

	// File receives the games
	File io.Writer
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
		Event:         "Engine match",
		File:          os.Stdout,
	}
}
