package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessticot-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It is the standard correctness check for move generation.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := MakeMove(pos, m)
		nodes += Perft(pos, depth-1)
		UnmakeMove(pos, u)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns the perft count below each legal root move, in generation order.
func Divide(pos *chess.Position, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := LegalMoves(pos)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		u := MakeMove(pos, m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(pos, depth-1)})
		UnmakeMove(pos, u)
	}
	return entries
}

// PerftParallel splits the root moves across at most workers goroutines,
// each searching its own copy of the position. The context cancels work
// that has not started yet.
func PerftParallel(ctx context.Context, pos *chess.Position, depth, workers int) (uint64, error) {
	if depth <= 1 || workers <= 1 {
		return Perft(pos.Copy(), depth), nil
	}

	root := pos.Copy()
	moves := LegalMoves(root)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var total uint64
	for _, m := range moves {
		m := m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := Apply(root, m)
			atomic.AddUint64(&total, Perft(child, depth-1))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}
