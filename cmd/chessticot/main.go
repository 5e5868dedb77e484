// chessticot is a small chess engine: it analyses positions, verifies its
// move generator with perft, plays engine matches and serves an HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessticot-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessticot version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := setupLogFile(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch {
	case *serveAddr != "":
		err = runServer(ctx, cfg, logger)
	case *perftDepth > 0:
		err = runPerft(ctx, cfg, os.Stdout)
	case *selfPlay > 0:
		err = runSelfPlay(ctx, cfg, logger, os.Stderr)
	default:
		err = runAnalysis(cfg, os.Stdout)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed")
		stop()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessticot [options]\n\n")
	fmt.Fprintf(os.Stderr, "Analyses a position unless -perft, -selfplay or -serve is given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessticot -fen '6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1' -depth 2\n")
	fmt.Fprintf(os.Stderr, "  chessticot -perft 5 -divide -workers 8\n")
	fmt.Fprintf(os.Stderr, "  chessticot -selfplay 10 -white planner -black greedy:material -pgn games.pgn\n")
	fmt.Fprintf(os.Stderr, "  chessticot -serve :8080\n")
}
