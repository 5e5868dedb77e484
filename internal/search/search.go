// Package search implements the planner: a fixed-depth negamax search with
// alpha-beta pruning over the legal move tree.
//
// Scores are always from the point of view of the side to move. A side that
// is checkmated p plies below the root scores -(MateScore - p), so shorter
// mates are more extreme than longer ones. Stalemate scores zero.
package search

import (
	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/eval"
)

const (
	// MateScore is the score of delivering mate at the root.
	MateScore = 1_000_000

	// Infinity exceeds every reachable score and serves as the open window.
	Infinity = MateScore + 1

	// MaxDepth bounds the search depth so that mate scores never collide
	// with static evaluations.
	MaxDepth = 64

	// DefaultDepth is the depth used when Options.Depth is zero.
	DefaultDepth = 3
)

// Options configures a Planner.
type Options struct {
	// Depth is the number of plies searched below the root.
	Depth int

	// Evaluator scores leaf positions. Nil means eval.Mobility.
	Evaluator eval.Evaluator
}

// withDefaults fills in unset options.
func (o Options) withDefaults() Options {
	if o.Depth <= 0 {
		o.Depth = DefaultDepth
	}
	if o.Depth > MaxDepth {
		o.Depth = MaxDepth
	}
	if o.Evaluator == nil {
		o.Evaluator = eval.Mobility
	}
	return o
}

// Result is the outcome of a search.
type Result struct {
	Score int        // From the side to move's point of view
	Move  chess.Move // chess.NullMove when the root is terminal or depth is 0
	Nodes uint64     // Positions visited
}

// Planner runs searches with a fixed configuration.
// A Planner is not safe for concurrent use; give each goroutine its own.
type Planner struct {
	opts  Options
	nodes uint64
}

// NewPlanner creates a planner. A zero depth selects DefaultDepth.
func NewPlanner(opts Options) *Planner {
	return &Planner{opts: opts.withDefaults()}
}

// Options returns the planner's effective configuration.
func (p *Planner) Options() Options {
	return p.opts
}

// BestMove searches pos to the configured depth with an open window.
// pos is not modified.
func (p *Planner) BestMove(pos *chess.Position) Result {
	return p.Search(pos.Copy(), p.opts.Depth, -Infinity, Infinity)
}

// Search runs negamax with alpha-beta pruning from pos to the given depth
// within the window (alpha, beta). Moves are made and unmade on pos in
// place; it is restored before Search returns. Ties go to the move
// generated first.
func (p *Planner) Search(pos *chess.Position, depth, alpha, beta int) Result {
	if depth < 0 {
		depth = 0
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}
	p.nodes = 0
	score, move := p.negamax(pos, depth, 0, alpha, beta)
	return Result{Score: score, Move: move, Nodes: p.nodes}
}

func (p *Planner) negamax(pos *chess.Position, depth, ply, alpha, beta int) (int, chess.Move) {
	p.nodes++

	moves := engine.LegalMoves(pos)
	if len(moves) == 0 {
		if engine.InCheck(pos, pos.ToMove) {
			return -(MateScore - ply), chess.NullMove
		}
		return 0, chess.NullMove
	}
	if depth == 0 {
		return p.opts.Evaluator.Evaluate(pos), chess.NullMove
	}

	best, bestMove := -Infinity, chess.NullMove
	for _, m := range moves {
		u := engine.MakeMove(pos, m)
		score, _ := p.negamax(pos, depth-1, ply+1, -beta, -alpha)
		engine.UnmakeMove(pos, u)
		score = -score

		if score > best {
			best, bestMove = score, m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break // Cutoff
		}
	}
	return best, bestMove
}

// IsMate reports whether score announces a forced mate for either side.
func IsMate(score int) bool {
	return score >= MateScore-MaxDepth || score <= -(MateScore-MaxDepth)
}

// MateDistance returns the number of plies to the mate announced by score
// (positive when the side to move mates, negative when it is mated).
// It returns 0 for scores that are not mate scores; use IsMate to tell
// those apart from a side that is already mated.
func MateDistance(score int) int {
	switch {
	case score >= MateScore-MaxDepth:
		return MateScore - score
	case score <= -(MateScore - MaxDepth):
		return -(MateScore + score)
	default:
		return 0
	}
}
