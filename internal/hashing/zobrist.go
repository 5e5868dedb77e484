// Package hashing provides position keys and the repetition and duplicate
// bookkeeping built on them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessticot-go/internal/chess"
)

// Zobrist tables for pieces, castling rights, en-passant file and side to move.
var (
	zobristPiece     [2][chess.NumKinds][chess.NumSquares]uint64
	zobristCastle    [chess.AllCastling + 1]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so keys are the same in every run.
	rnd := rand.New(rand.NewSource(0x5EED))

	for colour := range zobristPiece {
		for kind := range zobristPiece[colour] {
			for sq := range zobristPiece[colour][kind] {
				zobristPiece[colour][kind][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Zobrist returns the key of a position: piece placement, side to move,
// castling rights and en-passant file. The move clocks are not part of it,
// so positions that repeat under the rules share a key.
func Zobrist(pos *chess.Position) uint64 {
	var key uint64

	for sq, piece := range pos.Board {
		if piece != chess.Empty {
			key ^= zobristPiece[piece.Colour()][piece.Kind()][sq]
		}
	}

	if pos.ToMove == chess.Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[pos.Castling]

	if pos.EnPassant != chess.NoSquare {
		key ^= zobristEnPassant[pos.EnPassant.File()]
	}

	return key
}

// WeakHash is a cheap additive hash of the piece placement alone. It is
// used as a second check alongside Zobrist.
func WeakHash(pos *chess.Position) uint64 {
	var h uint64
	for sq, piece := range pos.Board {
		if piece != chess.Empty {
			h += uint64(piece) * uint64(sq+1) * 0x9E3779B97F4A7C15
		}
	}
	return h
}
