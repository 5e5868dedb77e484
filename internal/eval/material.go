package eval

import (
	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/engine"
)

// materialValues are centipawn values indexed by Kind. The king is never
// captured so it carries no material value.
var materialValues = [chess.NumKinds]int{
	chess.Pawn:   100,
	chess.Knight: 400,
	chess.Bishop: 400,
	chess.Rook:   600,
	chess.Queen:  1200,
}

// Material counts piece values: own pieces add, enemy pieces subtract.
var Material Evaluator = EvaluatorFunc(material)

func material(pos *chess.Position) int {
	score := 0
	for _, piece := range pos.Board {
		if piece == chess.Empty {
			continue
		}
		score += materialValues[piece.Kind()] * perspective(pos, piece)
	}
	return clamp(score, -MaxScore, MaxScore)
}

// basicValues weight the Basic evaluator.
var basicValues = [chess.NumKinds]int{
	chess.Pawn:   10,
	chess.Knight: 20,
	chess.Bishop: 30,
	chess.Rook:   50,
	chess.Queen:  100,
}

// Basic counts material, doubling the value of every piece that no enemy
// piece attacks.
var Basic Evaluator = EvaluatorFunc(basic)

func basic(pos *chess.Position) int {
	score := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := pos.Board[sq]
		if piece == chess.Empty {
			continue
		}
		value := basicValues[piece.Kind()]
		if !engine.IsAttacked(pos, sq, piece.Colour().Opposite()) {
			value *= 2
		}
		score += value * perspective(pos, piece)
	}
	return clamp(score, -MaxScore, MaxScore)
}
