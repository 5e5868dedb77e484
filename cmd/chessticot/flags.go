// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessticot-go/internal/config"
	"github.com/lgbarn/chessticot-go/internal/eval"
	"github.com/lgbarn/chessticot-go/internal/game"
	"github.com/lgbarn/chessticot-go/internal/search"
)

var (
	// Position
	fenFlag   = flag.String("fen", "", "Start position in FEN (default: initial position)")
	movesFlag = flag.String("moves", "", "Space-separated UCI moves played from the start position first")

	// Search
	depth    = flag.Int("depth", search.DefaultDepth, "Search depth in plies")
	evalName = flag.String("eval", "mobility", "Evaluator: "+strings.Join(eval.Names(), ", "))

	// Move generator verification
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to depth N")
	divide     = flag.Bool("divide", false, "With -perft, print the node count below each root move")
	workers    = flag.Int("workers", 1, "Parallel workers for -perft and -selfplay")

	// Self-play
	selfPlay    = flag.Int("selfplay", 0, "Play N engine-vs-engine games")
	whitePlayer = flag.String("white", "planner", "First player: first, greedy[:eval], planner")
	blackPlayer = flag.String("black", "planner", "Second player: first, greedy[:eval], planner")
	maxPlies    = flag.Int("maxplies", game.DefaultMaxPlies, "End engine games as timed out after N plies")
	pgnFile     = flag.String("pgn", "", "Write self-play games to this file (default: stdout)")
	jsonOutput  = flag.Bool("json", false, "Write self-play games as JSON instead of PGN")

	// Server
	serveAddr = flag.String("serve", "", "Serve the HTTP API on this address (e.g. :8080)")

	// Logging
	logLevel = flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error")
	logFile  = flag.String("logfile", "", "Write logs to this file (default: stderr)")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyGameFlags(cfg)
	applyArenaFlags(cfg)

	cfg.Output.JSON = *jsonOutput
	if *serveAddr != "" {
		cfg.Server.Addr = *serveAddr
	}
	cfg.LogLevel = *logLevel
}

// applySearchFlags configures the planner.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Evaluator = *evalName
}

// applyGameFlags configures the start position and ply limit.
func applyGameFlags(cfg *config.Config) {
	if *fenFlag != "" {
		cfg.Game.StartFEN = *fenFlag
	}
	cfg.Game.MaxPlies = *maxPlies
}

// applyArenaFlags configures self-play matches.
func applyArenaFlags(cfg *config.Config) {
	cfg.Arena.White = *whitePlayer
	cfg.Arena.Black = *blackPlayer
	cfg.Arena.Workers = *workers
	if *selfPlay > 0 {
		cfg.Arena.Games = *selfPlay
	}
}

// moveList splits the -moves value.
func moveList() []string {
	return strings.Fields(*movesFlag)
}
