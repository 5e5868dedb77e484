package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessticot-go/internal/arena"
	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/config"
	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/game"
	"github.com/lgbarn/chessticot-go/internal/output"
	"github.com/lgbarn/chessticot-go/internal/search"
	"github.com/lgbarn/chessticot-go/internal/server"
)

// startPosition parses the configured FEN and plays the -moves list on it.
func startPosition(cfg *config.Config, moves []string) (*chess.Position, error) {
	pos, err := engine.ParseFEN(cfg.Game.StartFEN)
	if err != nil {
		return nil, err
	}
	pos, _, err = engine.ParseUCIMoves(pos, moves)
	return pos, err
}

// runAnalysis searches the start position and prints the best move.
func runAnalysis(cfg *config.Config, w io.Writer) error {
	pos, err := startPosition(cfg, moveList())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "position %s\n", engine.ToFEN(pos))
	if status := engine.PositionStatus(pos); status != engine.Ongoing {
		fmt.Fprintf(w, "status %s\n", status)
		return nil
	}

	planner := search.NewPlanner(cfg.SearchOptions())
	start := time.Now()
	res := planner.BestMove(pos)
	elapsed := time.Since(start)

	fmt.Fprintf(w, "bestmove %s\n", engine.ToUCI(res.Move))
	if search.IsMate(res.Score) {
		fmt.Fprintf(w, "score mate %d\n", search.MateDistance(res.Score))
	} else {
		fmt.Fprintf(w, "score %d\n", res.Score)
	}
	fmt.Fprintf(w, "depth %d nodes %d time %s\n", planner.Options().Depth, res.Nodes, elapsed.Round(time.Millisecond))
	return nil
}

// runPerft counts the legal move tree below the start position.
func runPerft(ctx context.Context, cfg *config.Config, w io.Writer) error {
	pos, err := startPosition(cfg, moveList())
	if err != nil {
		return err
	}

	start := time.Now()
	var total uint64
	if *divide {
		lines := make([]string, 0, 64)
		for _, e := range engine.Divide(pos, *perftDepth) {
			lines = append(lines, fmt.Sprintf("%s: %d", engine.ToUCI(e.Move), e.Nodes))
			total += e.Nodes
		}
		slices.Sort(lines)
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	} else {
		total, err = engine.PerftParallel(ctx, pos, *perftDepth, cfg.Arena.Workers)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	fmt.Fprintf(w, "Nodes searched: %d\n", total)
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Fprintf(w, "Time: %s (%.0f nodes/s)\n", elapsed.Round(time.Millisecond), float64(total)/secs)
	}
	return nil
}

// runSelfPlay plays a match, writes the games and prints the standings.
func runSelfPlay(ctx context.Context, cfg *config.Config, logger zerolog.Logger, report io.Writer) error {
	start, err := startPosition(cfg, moveList())
	if err != nil {
		return err
	}
	opts := cfg.SearchOptions()
	white, err := arena.EntrantByName(cfg.Arena.White, opts)
	if err != nil {
		return err
	}
	black, err := arena.EntrantByName(cfg.Arena.Black, opts)
	if err != nil {
		return err
	}

	match := arena.New(white, black, arena.Options{
		Games:   cfg.Arena.Games,
		Workers: cfg.Arena.Workers,
		Start:   start,
		Game:    cfg.GameOptions(),
	}, logger)
	result, err := match.Run(ctx)
	if err != nil {
		return err
	}

	out := cfg.Output.File
	if *pgnFile != "" {
		file, err := os.Create(*pgnFile)
		if err != nil {
			return errors.Wrapf(err, "creating %s", *pgnFile)
		}
		defer file.Close()
		out = file
	}
	if err := writeGames(out, cfg, result.Games); err != nil {
		return err
	}
	printStandings(report, result)
	return nil
}

// writeGames writes finished games in the configured format.
func writeGames(w io.Writer, cfg *config.Config, games []*game.Game) error {
	gw := output.NewWriter(w, cfg.Output.JSON, cfg.Output.Event)
	for _, g := range games {
		if err := gw.WriteGame(g); err != nil {
			return err
		}
	}
	return gw.Close()
}

func printStandings(w io.Writer, r *arena.Report) {
	fmt.Fprintf(w, "%-24s %6s %4s %4s %4s %4s %6s\n", "Player", "Games", "W", "D", "L", "T", "Points")
	for _, s := range r.Standings {
		fmt.Fprintf(w, "%-24s %6d %4d %4d %4d %4d %6.1f\n", s.Name, s.Played, s.Wins, s.Draws, s.Losses, s.TimedOut, s.Points)
	}
	fmt.Fprintf(w, "%d game(s), %d distinct.\n", len(r.Games), r.Distinct)
}

// runServer serves the HTTP API until ctx is cancelled.
func runServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	srv := server.New(server.Options{Search: cfg.SearchOptions()}, logger)
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			logger.Warn().Err(err).Msg("shutdown")
		}
	}()
	return srv.Listen(cfg.Server.Addr)
}
