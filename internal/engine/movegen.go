package engine

import "github.com/lgbarn/chessticot-go/internal/chess"

// maxMoves bounds the number of pseudo-legal moves in any reachable position.
const maxMoves = 256

// castlePath describes the squares one castling move touches.
type castlePath struct {
	right     chess.CastlingRights
	flag      chess.MoveFlag
	king      chess.Square
	kingTo    chess.Square
	rook      chess.Square
	empty     []chess.Square // must be unoccupied
	transit   []chess.Square // must not be attacked (king start excluded)
	rookTo    chess.Square
	rookPiece chess.Piece
}

var castlePaths = [2][2]castlePath{
	chess.White: {
		{chess.WhiteKingside, chess.KingsideCastle, chess.E1, chess.G1, chess.H1,
			[]chess.Square{chess.F1, chess.G1}, []chess.Square{chess.F1, chess.G1}, chess.F1, chess.W(chess.Rook)},
		{chess.WhiteQueenside, chess.QueensideCastle, chess.E1, chess.C1, chess.A1,
			[]chess.Square{chess.D1, chess.C1, chess.B1}, []chess.Square{chess.D1, chess.C1}, chess.D1, chess.W(chess.Rook)},
	},
	chess.Black: {
		{chess.BlackKingside, chess.KingsideCastle, chess.E8, chess.G8, chess.H8,
			[]chess.Square{chess.F8, chess.G8}, []chess.Square{chess.F8, chess.G8}, chess.F8, chess.B(chess.Rook)},
		{chess.BlackQueenside, chess.QueensideCastle, chess.E8, chess.C8, chess.A8,
			[]chess.Square{chess.D8, chess.C8, chess.B8}, []chess.Square{chess.D8, chess.C8}, chess.D8, chess.B(chess.Rook)},
	},
}

// castlePathFor returns the path of a castling move by the given colour.
func castlePathFor(colour chess.Colour, flag chess.MoveFlag) *castlePath {
	if flag == chess.KingsideCastle {
		return &castlePaths[colour][0]
	}
	return &castlePaths[colour][1]
}

// PseudoLegalMoves returns every move obeying piece movement rules and
// board occupancy for the side to move. Moves may leave the mover's king
// in check. The order is deterministic: squares a1..h8, and within a square
// the fixed per-kind order of each generator (knights follow knightOffsets,
// so b1c3 precedes b1a3).
func PseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, maxMoves)
	us := pos.ToMove
	for from := chess.A1; from <= chess.H8; from++ {
		piece := pos.Board[from]
		if piece == chess.Empty || piece.Colour() != us {
			continue
		}
		switch piece.Kind() {
		case chess.Pawn:
			moves = appendPawnMoves(moves, pos, from)
		case chess.Knight:
			moves = appendStepMoves(moves, pos, from, knightTargets[from])
		case chess.Bishop:
			moves = appendSlidingMoves(moves, pos, from, firstDiagonal, len(directions))
		case chess.Rook:
			moves = appendSlidingMoves(moves, pos, from, firstOrthogonal, firstDiagonal)
		case chess.Queen:
			moves = appendSlidingMoves(moves, pos, from, firstOrthogonal, len(directions))
		case chess.King:
			moves = appendStepMoves(moves, pos, from, kingTargets[from])
			moves = appendCastlingMoves(moves, pos, from)
		}
	}
	return moves
}

// appendPawnMoves adds pushes, double pushes, captures, en-passant captures
// and promotions for the pawn on from.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square) []chess.Move {
	us := pos.ToMove
	dir := chess.PawnDirection(us)
	lastRank := chess.HomeRank(us.Opposite())
	startRank := chess.HomeRank(us) + dir

	if to := from.Offset(0, dir); to != chess.NoSquare && pos.Board[to] == chess.Empty {
		if to.Rank() == lastRank {
			moves = appendPromotions(moves, from, to)
		} else {
			moves = append(moves, chess.Move{From: from, To: to})
			if from.Rank() == startRank {
				if to2 := to.Offset(0, dir); pos.Board[to2] == chess.Empty {
					moves = append(moves, chess.Move{From: from, To: to2, Flag: chess.DoublePawnPush})
				}
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if to == chess.NoSquare {
			continue
		}
		target := pos.Board[to]
		switch {
		case target != chess.Empty && target.Colour() != us:
			if to.Rank() == lastRank {
				moves = appendPromotions(moves, from, to)
			} else {
				moves = append(moves, chess.Move{From: from, To: to})
			}
		case target == chess.Empty && to == pos.EnPassant:
			moves = append(moves, chess.Move{From: from, To: to, Flag: chess.EnPassantCapture})
		}
	}
	return moves
}

// appendPromotions adds one move per promotion kind.
func appendPromotions(moves []chess.Move, from, to chess.Square) []chess.Move {
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind})
	}
	return moves
}

// appendStepMoves adds knight or king moves from a target table.
func appendStepMoves(moves []chess.Move, pos *chess.Position, from chess.Square, targets []chess.Square) []chess.Move {
	us := pos.ToMove
	for _, to := range targets {
		target := pos.Board[to]
		if target == chess.Empty || target.Colour() != us {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// appendSlidingMoves walks rays firstDir..lastDir-1 from the square,
// stopping at the first blocker and including it if it is an enemy piece.
func appendSlidingMoves(moves []chess.Move, pos *chess.Position, from chess.Square, firstDir, lastDir int) []chess.Move {
	us := pos.ToMove
	for d := firstDir; d < lastDir; d++ {
		for _, to := range rays[from][d] {
			target := pos.Board[to]
			if target == chess.Empty {
				moves = append(moves, chess.Move{From: from, To: to})
				continue
			}
			if target.Colour() != us {
				moves = append(moves, chess.Move{From: from, To: to})
			}
			break // Blocked
		}
	}
	return moves
}

// appendCastlingMoves adds castling moves whose right is held, whose rook
// is in place and whose intervening squares are empty. Attack conditions
// are checked during legality filtering.
func appendCastlingMoves(moves []chess.Move, pos *chess.Position, from chess.Square) []chess.Move {
	us := pos.ToMove
	for i := range castlePaths[us] {
		cp := &castlePaths[us][i]
		if from != cp.king || !pos.Castling.Has(cp.right) || pos.Board[cp.rook] != cp.rookPiece {
			continue
		}
		vacant := true
		for _, sq := range cp.empty {
			if pos.Board[sq] != chess.Empty {
				vacant = false
				break
			}
		}
		if vacant {
			moves = append(moves, chess.Move{From: cp.king, To: cp.kingTo, Flag: cp.flag})
		}
	}
	return moves
}

// LegalMoves returns every legal move for the side to move, in the same
// deterministic order as PseudoLegalMoves. The position is temporarily
// modified while candidate moves are tried and is restored before return,
// so it must not be shared with other goroutines during the call.
func LegalMoves(pos *chess.Position) []chess.Move {
	moves := PseudoLegalMoves(pos)
	us := pos.ToMove
	checked := InCheck(pos, us)
	pinned := PinnedPieces(pos, us)

	legal := moves[:0]
	for _, m := range moves {
		if isLegal(pos, m, checked, pinned) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal decides whether a pseudo-legal move keeps the mover's king safe.
func isLegal(pos *chess.Position, m chess.Move, checked bool, pinned uint64) bool {
	us := pos.ToMove
	if m.IsCastle() {
		return castleIsSafe(pos, m, checked)
	}

	// An unpinned non-king piece cannot expose a king that is not already
	// attacked. En passant removes two pieces from a rank, so it is always
	// simulated.
	moved := pos.Board[m.From]
	if !checked && moved.Kind() != chess.King && m.Flag != chess.EnPassantCapture &&
		pinned&(1<<uint(m.From)) == 0 {
		return true
	}

	u := MakeMove(pos, m)
	safe := !IsAttacked(pos, pos.KingSquare[us], us.Opposite())
	UnmakeMove(pos, u)
	return safe
}

// castleIsSafe checks that the king is not in check and that neither the
// squares it crosses nor its destination are attacked.
func castleIsSafe(pos *chess.Position, m chess.Move, checked bool) bool {
	if checked {
		return false
	}
	us := pos.ToMove
	cp := castlePathFor(us, m.Flag)
	for _, sq := range cp.transit {
		if IsAttacked(pos, sq, us.Opposite()) {
			return false
		}
	}
	return true
}

// LegalMovesFrom returns the legal moves of the piece standing on from.
func LegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	var out []chess.Move
	for _, m := range LegalMoves(pos) {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

// IsLegal reports whether m is one of the legal moves of the position.
func IsLegal(pos *chess.Position, m chess.Move) bool {
	for _, lm := range LegalMoves(pos) {
		if lm == m {
			return true
		}
	}
	return false
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	moves := PseudoLegalMoves(pos)
	us := pos.ToMove
	checked := InCheck(pos, us)
	pinned := PinnedPieces(pos, us)
	for _, m := range moves {
		if isLegal(pos, m, checked, pinned) {
			return true
		}
	}
	return false
}
