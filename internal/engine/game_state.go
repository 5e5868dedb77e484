package engine

import "github.com/lgbarn/chessticot-go/internal/chess"

// Status is the terminal state of a position, derived from its legal moves.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// PositionStatus reports whether the side to move is checkmated,
// stalemated or still has moves.
func PositionStatus(pos *chess.Position) Status {
	if HasLegalMoves(pos) {
		return Ongoing
	}
	if InCheck(pos, pos.ToMove) {
		return Checkmate
	}
	return Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return PositionStatus(pos) == Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return PositionStatus(pos) == Stalemate
}
