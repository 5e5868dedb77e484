// Package eval provides static position evaluators. Every evaluator scores
// a position from the point of view of the side to move: positive values
// favour the player about to move. Evaluators are pure and deterministic,
// and their results stay within [-MaxScore, MaxScore].
package eval

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/errors"
)

// MaxScore bounds the magnitude of any static evaluation. It stays well
// below the search's mate scores so that a mate always outranks material.
const MaxScore = 500_000

// Evaluator scores a position for the side to move.
type Evaluator interface {
	Evaluate(pos *chess.Position) int
}

// EvaluatorFunc adapts an ordinary function to the Evaluator interface.
type EvaluatorFunc func(pos *chess.Position) int

// Evaluate calls f(pos).
func (f EvaluatorFunc) Evaluate(pos *chess.Position) int {
	return f(pos)
}

// Zero scores every position as equal. Search with it explores the tree
// purely for mates and stalemates.
var Zero Evaluator = EvaluatorFunc(func(*chess.Position) int { return 0 })

var registry = map[string]Evaluator{
	"zero":     Zero,
	"material": Material,
	"basic":    Basic,
	"mobility": Mobility,
}

// ByName returns the evaluator registered under name.
func ByName(name string) (Evaluator, error) {
	if e, ok := registry[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("unknown evaluator %q (have %v): %w", name, Names(), errors.ErrInvalidConfig)
}

// Names returns the registered evaluator names in sorted order.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// clamp limits x to [lo, hi].
func clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// perspective returns +1 for pieces of the side to move and -1 otherwise.
func perspective(pos *chess.Position, piece chess.Piece) int {
	if piece.Colour() == pos.ToMove {
		return 1
	}
	return -1
}
