// Package config holds the settings shared by the command-line tool, the
// arena and the server.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/eval"
	"github.com/lgbarn/chessticot-go/internal/game"
	"github.com/lgbarn/chessticot-go/internal/search"
)

// Config holds all program configuration.
type Config struct {
	Search *SearchConfig
	Game   *GameConfig
	Arena  *ArenaConfig
	Output *OutputConfig
	Server *ServerConfig

	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	LogLevel string
	LogFile  io.Writer
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:   NewSearchConfig(),
		Game:     NewGameConfig(),
		Arena:    NewArenaConfig(),
		Output:   NewOutputConfig(),
		Server:   NewServerConfig(),
		LogLevel: "info",
		LogFile:  os.Stderr,
	}
}

// SearchConfig configures the planner.
type SearchConfig struct {
	Depth     int
	Evaluator string
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:     search.DefaultDepth,
		Evaluator: "mobility",
	}
}

// GameConfig configures individual games.
type GameConfig struct {
	// MaxPlies ends engine games as timed out after this many half-moves.
	MaxPlies int
	// StartFEN is the position games start from.
	StartFEN string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		MaxPlies: game.DefaultMaxPlies,
		StartFEN: engine.InitialFEN,
	}
}

// ArenaConfig configures engine-vs-engine matches.
type ArenaConfig struct {
	Games   int
	Workers int
	White   string // player description, see player.ByName
	Black   string
}

// NewArenaConfig creates an ArenaConfig with default values.
func NewArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Games:   1,
		Workers: 1,
		White:   "planner",
		Black:   "planner",
	}
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{Addr: ":8080"}
}

// Validate checks the configuration for values no component accepts.
func (c *Config) Validate() error {
	if c.Search.Depth < 1 || c.Search.Depth > search.MaxDepth {
		return invalid("search depth must be in 1..%d, got %d", search.MaxDepth, c.Search.Depth)
	}
	if _, err := eval.ByName(c.Search.Evaluator); err != nil {
		return err
	}
	if c.Game.MaxPlies < 1 {
		return invalid("max plies must be positive, got %d", c.Game.MaxPlies)
	}
	if _, err := engine.ParseFEN(c.Game.StartFEN); err != nil {
		return errors.Wrap(err, "start position")
	}
	if c.Arena.Games < 1 {
		return invalid("games must be positive, got %d", c.Arena.Games)
	}
	if c.Arena.Workers < 1 {
		return invalid("workers must be positive, got %d", c.Arena.Workers)
	}
	if c.Output.MaxLineLength < 1 {
		return invalid("max line length must be positive, got %d", c.Output.MaxLineLength)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return invalid("log level %q: %v", c.LogLevel, err)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidConfig)
}

// SearchOptions converts the search settings for the planner. The
// evaluator name must already be valid.
func (c *Config) SearchOptions() search.Options {
	e, err := eval.ByName(c.Search.Evaluator)
	if err != nil {
		e = eval.Mobility
	}
	return search.Options{Depth: c.Search.Depth, Evaluator: e}
}

// GameOptions converts the game settings.
func (c *Config) GameOptions() game.Options {
	return game.Options{MaxPlies: c.Game.MaxPlies}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.Output.File = w
}
