// Package player provides the move choosers that take part in games:
// trivial baselines, one-ply greedy evaluators and the search-backed planner.
package player

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/eval"
	"github.com/lgbarn/chessticot-go/internal/search"
)

// Player chooses a move for the side to move. ChooseMove returns
// chess.NullMove only when the position has no legal moves, and must not
// modify pos.
type Player interface {
	Name() string
	ChooseMove(pos *chess.Position) chess.Move
}

// FirstMove plays the first legal move in generation order.
type FirstMove struct{}

// Name returns the player's display name.
func (FirstMove) Name() string { return "First move" }

// ChooseMove returns the first legal move.
func (FirstMove) ChooseMove(pos *chess.Position) chess.Move {
	moves := engine.LegalMoves(pos.Copy())
	if len(moves) == 0 {
		return chess.NullMove
	}
	return moves[0]
}

// Greedy plays the move whose resulting position its evaluator likes best,
// looking one ply ahead. Ties go to the move generated first.
type Greedy struct {
	Label     string
	Evaluator eval.Evaluator
}

// NewGreedy creates a greedy player using the named evaluator.
func NewGreedy(evaluator string) (*Greedy, error) {
	e, err := eval.ByName(evaluator)
	if err != nil {
		return nil, err
	}
	return &Greedy{Label: fmt.Sprintf("Greedy (%s)", evaluator), Evaluator: e}, nil
}

// Name returns the player's display name.
func (g *Greedy) Name() string { return g.Label }

// ChooseMove evaluates every legal move from the opponent's point of view
// and picks the one the opponent likes least.
func (g *Greedy) ChooseMove(pos *chess.Position) chess.Move {
	work := pos.Copy()
	best, bestScore := chess.NullMove, 0
	for i, m := range engine.LegalMoves(work) {
		u := engine.MakeMove(work, m)
		score := -g.Evaluator.Evaluate(work)
		engine.UnmakeMove(work, u)
		if i == 0 || score > bestScore {
			best, bestScore = m, score
		}
	}
	return best
}

// Planner plays the move chosen by a fixed-depth search.
type Planner struct {
	planner *search.Planner
	name    string
}

// NewPlanner creates a search-backed player.
func NewPlanner(opts search.Options) *Planner {
	p := search.NewPlanner(opts)
	return &Planner{
		planner: p,
		name:    fmt.Sprintf("Planner (depth %d)", p.Options().Depth),
	}
}

// Name returns the player's display name.
func (p *Planner) Name() string { return p.name }

// ChooseMove returns the search's best move.
func (p *Planner) ChooseMove(pos *chess.Position) chess.Move {
	return p.planner.BestMove(pos).Move
}

// Analyse returns the full search result for pos.
func (p *Planner) Analyse(pos *chess.Position) search.Result {
	return p.planner.BestMove(pos)
}

// ByName builds a player from a short description: "first", "greedy:<evaluator>"
// or "planner". Planners take their depth and evaluator from opts.
func ByName(name string, opts search.Options) (Player, error) {
	switch {
	case name == "first":
		return FirstMove{}, nil
	case name == "planner":
		return NewPlanner(opts), nil
	case name == "greedy":
		return NewGreedy("mobility")
	case strings.HasPrefix(name, "greedy:"):
		return NewGreedy(strings.TrimPrefix(name, "greedy:"))
	}
	return nil, fmt.Errorf("unknown player %q: %w", name, errors.ErrInvalidConfig)
}
