package eval

import (
	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/engine"
)

var mobilityValues = [chess.NumKinds]int{
	chess.Pawn:   100,
	chess.Knight: 200,
	chess.Bishop: 300,
	chess.Rook:   500,
	chess.Queen:  5000,
	chess.King:   10000,
}

const (
	// controlWeight is earned per legal move a piece could make.
	controlWeight = 2
	// ownHangingPenalty is charged for each attacked piece of the side to move.
	ownHangingPenalty = 5
)

// Mobility adds to each piece's value two points per legal move it could
// make if its side were to move. An attacked piece of the side to move costs
// a small penalty; an attacked enemy piece loses its whole value, since the
// side to move can take it next.
var Mobility Evaluator = EvaluatorFunc(mobility)

func mobility(pos *chess.Position) int {
	var moves [chess.NumSquares]int
	countMoves(pos, &moves)

	score := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := pos.Board[sq]
		if piece == chess.Empty {
			continue
		}
		value := mobilityValues[piece.Kind()] + moves[sq]*controlWeight
		if engine.IsAttacked(pos, sq, piece.Colour().Opposite()) {
			if piece.Colour() == pos.ToMove {
				value -= ownHangingPenalty
			} else {
				value -= mobilityValues[piece.Kind()]
			}
		}
		score += value * perspective(pos, piece)
	}
	return clamp(score, -MaxScore, MaxScore)
}

// countMoves tallies legal moves per origin square for both colours. The
// side not on move is counted on a copy with the turn handed over and the
// en-passant target cleared.
func countMoves(pos *chess.Position, moves *[chess.NumSquares]int) {
	for _, m := range engine.LegalMoves(pos.Copy()) {
		moves[m.From]++
	}
	other := pos.Copy()
	other.ToMove = pos.ToMove.Opposite()
	other.EnPassant = chess.NoSquare
	for _, m := range engine.LegalMoves(other) {
		moves[m.From]++
	}
}
