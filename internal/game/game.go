// Package game tracks a game in progress: the current position, the moves
// played, repetitions and the result once the rules end it.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/hashing"
)

// DefaultMaxPlies caps engine-vs-engine games.
const DefaultMaxPlies = 300

// Options configures a game.
type Options struct {
	// MaxPlies ends the game as TimedOut once this many half-moves are
	// played. Zero means no limit.
	MaxPlies int
}

// Game is a game in progress or finished. It is not safe for concurrent use.
type Game struct {
	ID    string
	White string
	Black string

	start  *chess.Position
	pos    *chess.Position
	moves  []chess.Move
	reps   *hashing.RepetitionTable
	opts   Options
	result Result
	reason Reason
}

// New starts a game from a copy of start. A start position that is
// already checkmate or stalemate yields a finished game.
func New(start *chess.Position, opts Options) *Game {
	g := &Game{
		ID:    uuid.NewString(),
		start: start.Copy(),
		pos:   start.Copy(),
		reps:  hashing.NewRepetitionTable(),
		opts:  opts,
	}
	g.reps.Add(g.pos)
	g.adjudicate()
	return g
}

// NewFromFEN starts a game from a FEN string.
func NewFromFEN(fen string, opts Options) (*Game, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return New(pos, opts), nil
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// StartPosition returns a copy of the position the game started from.
func (g *Game) StartPosition() *chess.Position {
	return g.start.Copy()
}

// FEN returns the current position as FEN.
func (g *Game) FEN() string {
	return engine.ToFEN(g.pos)
}

// Moves returns the moves played so far.
func (g *Game) Moves() []chess.Move {
	out := make([]chess.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

// Plies returns the number of half-moves played.
func (g *Game) Plies() int {
	return len(g.moves)
}

// ToMove returns the colour to move.
func (g *Game) ToMove() chess.Colour {
	return g.pos.ToMove
}

// LegalMoves returns the legal moves in the current position, or none if
// the game is over.
func (g *Game) LegalMoves() []chess.Move {
	if g.IsOver() {
		return nil
	}
	return engine.LegalMoves(g.pos.Copy())
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.InCheck(g.pos, g.pos.ToMove)
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.result != Undecided
}

// Result returns the outcome, Undecided while the game is in progress.
func (g *Game) Result() Result {
	return g.result
}

// Reason returns why the game ended.
func (g *Game) Reason() Reason {
	return g.reason
}

// MakeMove plays m. It returns errors.ErrGameOver once the game has ended
// and an *errors.IllegalMoveError if m is not legal in the current position.
func (g *Game) MakeMove(m chess.Move) error {
	if g.IsOver() {
		return errors.Wrapf(errors.ErrGameOver, "%s after %d plies", g.reason, len(g.moves))
	}
	if !engine.IsLegal(g.pos, m) {
		return &errors.IllegalMoveError{Move: m.String(), FEN: g.FEN()}
	}
	g.play(m)
	return nil
}

// MakeUCIMove decodes a long algebraic move and plays it.
func (g *Game) MakeUCIMove(text string) (chess.Move, error) {
	if g.IsOver() {
		return chess.NullMove, errors.Wrapf(errors.ErrGameOver, "%s after %d plies", g.reason, len(g.moves))
	}
	m, err := engine.ParseUCIMove(text, g.pos)
	if err != nil {
		return chess.NullMove, err
	}
	g.play(m)
	return m, nil
}

// play applies a move already known to be legal.
func (g *Game) play(m chess.Move) {
	engine.MakeMove(g.pos, m)
	g.moves = append(g.moves, m)
	g.reps.Add(g.pos)
	g.adjudicate()
}

// adjudicate ends the game if the current position calls for it.
func (g *Game) adjudicate() {
	switch engine.PositionStatus(g.pos) {
	case engine.Checkmate:
		g.result, g.reason = WhiteWin, Checkmate
		if g.pos.ToMove == chess.White {
			g.result = BlackWin
		}
		return
	case engine.Stalemate:
		g.result, g.reason = Draw, Stalemate
		return
	}

	switch {
	case engine.HasInsufficientMaterial(g.pos):
		g.result, g.reason = Draw, InsufficientMaterial
	case engine.IsFiftyMoveDraw(g.pos):
		g.result, g.reason = Draw, FiftyMoveRule
	case g.reps.Count(g.pos) >= 3:
		g.result, g.reason = Draw, ThreefoldRepetition
	case g.opts.MaxPlies > 0 && len(g.moves) >= g.opts.MaxPlies:
		g.result, g.reason = TimedOut, PlyLimit
	}
}
