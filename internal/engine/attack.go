// Package engine provides attack detection, legal move generation, move
// application and the FEN/UCI adapters for chess positions.
package engine

import (
	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/errors"
)

// direction is a (file, rank) step along a ray.
type direction struct {
	df, dr int
}

// The first four directions are orthogonal (rook), the last four diagonal
// (bishop). Generation order depends on this order.
var directions = [8]direction{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

const (
	firstOrthogonal = 0
	firstDiagonal   = 4
)

var (
	knightOffsets = [8]direction{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8]direction{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

// Precomputed lookup tables, indexed by square.
var (
	knightTargets [chess.NumSquares][]chess.Square
	kingTargets   [chess.NumSquares][]chess.Square
	// rays[sq][d] lists the squares from sq outwards along directions[d].
	rays [chess.NumSquares][8][]chess.Square
	// pawnAttackers[c][sq] lists the squares from which a pawn of colour c
	// attacks sq.
	pawnAttackers [2][chess.NumSquares][]chess.Square
)

func init() {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		for _, o := range knightOffsets {
			if t := sq.Offset(o.df, o.dr); t != chess.NoSquare {
				knightTargets[sq] = append(knightTargets[sq], t)
			}
		}
		for _, o := range kingOffsets {
			if t := sq.Offset(o.df, o.dr); t != chess.NoSquare {
				kingTargets[sq] = append(kingTargets[sq], t)
			}
		}
		for d, dir := range directions {
			for t := sq.Offset(dir.df, dir.dr); t != chess.NoSquare; t = t.Offset(dir.df, dir.dr) {
				rays[sq][d] = append(rays[sq][d], t)
			}
		}
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			back := -chess.PawnDirection(colour)
			for _, df := range []int{-1, 1} {
				if from := sq.Offset(df, back); from != chess.NoSquare {
					pawnAttackers[colour][sq] = append(pawnAttackers[colour][sq], from)
				}
			}
		}
	}
}

// IsAttacked returns true if any piece of byColour attacks the square.
// It casts rays and probes offset tables from the target square rather
// than generating moves, so it is cheap enough to call per candidate move.
func IsAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	pawn := chess.MakePiece(byColour, chess.Pawn)
	for _, from := range pawnAttackers[byColour][sq] {
		if pos.Board[from] == pawn {
			return true
		}
	}

	knight := chess.MakePiece(byColour, chess.Knight)
	for _, from := range knightTargets[sq] {
		if pos.Board[from] == knight {
			return true
		}
	}

	king := chess.MakePiece(byColour, chess.King)
	for _, from := range kingTargets[sq] {
		if pos.Board[from] == king {
			return true
		}
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	rook := chess.MakePiece(byColour, chess.Rook)
	bishop := chess.MakePiece(byColour, chess.Bishop)
	for d := range directions {
		slider := rook
		if d >= firstDiagonal {
			slider = bishop
		}
		for _, t := range rays[sq][d] {
			piece := pos.Board[t]
			if piece == chess.Empty {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break // Blocked
		}
	}

	return false
}

// KingSquare returns where the king of the given colour stands.
// A missing king is an invariant violation and panics.
func KingSquare(pos *chess.Position, colour chess.Colour) chess.Square {
	sq := pos.KingSquare[colour]
	if !sq.Valid() || pos.Board[sq] != chess.MakePiece(colour, chess.King) {
		errors.Invariantf("%v king missing from position", colour)
	}
	return sq
}

// InCheck returns true if the given colour's king is attacked.
func InCheck(pos *chess.Position, colour chess.Colour) bool {
	return IsAttacked(pos, KingSquare(pos, colour), colour.Opposite())
}

// Attackers returns the squares of all byColour pieces attacking sq.
func Attackers(pos *chess.Position, sq chess.Square, byColour chess.Colour) []chess.Square {
	var out []chess.Square
	for from := chess.A1; from <= chess.H8; from++ {
		piece := pos.Board[from]
		if piece == chess.Empty || piece.Colour() != byColour {
			continue
		}
		if attacksSquare(pos, from, sq) {
			out = append(out, from)
		}
	}
	return out
}

// attacksSquare reports whether the piece on from attacks target.
func attacksSquare(pos *chess.Position, from, target chess.Square) bool {
	piece := pos.Board[from]
	switch piece.Kind() {
	case chess.Pawn:
		for _, f := range pawnAttackers[piece.Colour()][target] {
			if f == from {
				return true
			}
		}
	case chess.Knight:
		for _, t := range knightTargets[from] {
			if t == target {
				return true
			}
		}
	case chess.King:
		for _, t := range kingTargets[from] {
			if t == target {
				return true
			}
		}
	case chess.Bishop, chess.Rook, chess.Queen:
		d, ok := directionBetween(from, target)
		if !ok || !slidesAlong(piece.Kind(), d) {
			return false
		}
		for _, t := range rays[from][d] {
			if t == target {
				return true
			}
			if pos.Board[t] != chess.Empty {
				return false
			}
		}
	}
	return false
}

// slidesAlong reports whether a sliding kind moves along direction d.
func slidesAlong(kind chess.Kind, d int) bool {
	switch kind {
	case chess.Queen:
		return true
	case chess.Rook:
		return d < firstDiagonal
	case chess.Bishop:
		return d >= firstDiagonal
	}
	return false
}

// directionBetween returns the index of the ray leading from a to b, if the
// two squares share a rank, file or diagonal.
func directionBetween(a, b chess.Square) (int, bool) {
	if a == b {
		return 0, false
	}
	df := b.File() - a.File()
	dr := b.Rank() - a.Rank()
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return 0, false
	}
	step := direction{sign(df), sign(dr)}
	for d, dir := range directions {
		if dir == step {
			return d, true
		}
	}
	return 0, false
}

// PinnedPieces returns a bitmask (bit n = square n) of the colour's pieces
// that are absolutely pinned against their own king.
func PinnedPieces(pos *chess.Position, colour chess.Colour) uint64 {
	ks := KingSquare(pos, colour)
	enemy := colour.Opposite()
	queen := chess.MakePiece(enemy, chess.Queen)

	var pinned uint64
	for d := range directions {
		slider := chess.MakePiece(enemy, chess.Rook)
		if d >= firstDiagonal {
			slider = chess.MakePiece(enemy, chess.Bishop)
		}
		candidate := chess.NoSquare
		for _, t := range rays[ks][d] {
			piece := pos.Board[t]
			if piece == chess.Empty {
				continue
			}
			if candidate == chess.NoSquare {
				if piece.Colour() != colour {
					break
				}
				candidate = t
				continue
			}
			if piece == slider || piece == queen {
				pinned |= 1 << uint(candidate)
			}
			break
		}
	}
	return pinned
}

// IsPinned reports whether the piece on sq is pinned to its own king.
func IsPinned(pos *chess.Position, sq chess.Square) bool {
	piece := pos.Board[sq]
	if piece == chess.Empty || piece.Kind() == chess.King {
		return false
	}
	return PinnedPieces(pos, piece.Colour())&(1<<uint(sq)) != 0
}
