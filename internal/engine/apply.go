package engine

import "github.com/lgbarn/chessticot-go/internal/chess"

// castlingMask maps a square to the rights lost when a piece leaves or
// arrives on it (king and rook home squares).
var castlingMask = func() [chess.NumSquares]chess.CastlingRights {
	var m [chess.NumSquares]chess.CastlingRights
	m[chess.E1] = chess.WhiteKingside | chess.WhiteQueenside
	m[chess.H1] = chess.WhiteKingside
	m[chess.A1] = chess.WhiteQueenside
	m[chess.E8] = chess.BlackKingside | chess.BlackQueenside
	m[chess.H8] = chess.BlackKingside
	m[chess.A8] = chess.BlackQueenside
	return m
}()

// MakeMove applies a move generated for pos in place and returns the
// record that UnmakeMove needs to restore the position exactly.
// Applying a move that was not generated for pos is the caller's error.
func MakeMove(pos *chess.Position, m chess.Move) chess.Undo {
	us := pos.ToMove
	moved := pos.Board[m.From]

	u := chess.Undo{
		Move:           m,
		Moved:          moved,
		CapturedOn:     m.To,
		Castling:       pos.Castling,
		EnPassant:      pos.EnPassant,
		HalfmoveClock:  pos.HalfmoveClock,
		FullmoveNumber: pos.FullmoveNumber,
	}
	if m.Flag == chess.EnPassantCapture {
		u.CapturedOn = chess.NewSquare(m.To.File(), m.From.Rank())
	}
	u.Captured = pos.Board[u.CapturedOn]
	if u.Captured != chess.Empty {
		pos.Set(u.CapturedOn, chess.Empty)
	}

	// Move the piece, promoting if required
	placed := moved
	if m.Promotion != chess.NoKind {
		placed = chess.MakePiece(us, m.Promotion)
	}
	pos.Set(m.From, chess.Empty)
	pos.Set(m.To, placed)

	// Move the rook when castling
	if m.IsCastle() {
		cp := castlePathFor(us, m.Flag)
		pos.Set(cp.rook, chess.Empty)
		pos.Set(cp.rookTo, cp.rookPiece)
	}

	pos.Castling &^= castlingMask[m.From] | castlingMask[m.To]

	pos.EnPassant = chess.NoSquare
	if m.Flag == chess.DoublePawnPush {
		pos.EnPassant = chess.NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}

	if moved.Kind() == chess.Pawn || u.Captured != chess.Empty {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if us == chess.Black {
		pos.FullmoveNumber++
	}
	pos.ToMove = us.Opposite()

	return u
}

// UnmakeMove takes back the move recorded in u, restoring castling
// rights, the en-passant target, the clocks and any captured piece.
func UnmakeMove(pos *chess.Position, u chess.Undo) {
	m := u.Move
	us := u.Moved.Colour()

	if m.IsCastle() {
		cp := castlePathFor(us, m.Flag)
		pos.Set(cp.rookTo, chess.Empty)
		pos.Set(cp.rook, cp.rookPiece)
	}

	pos.Set(m.To, chess.Empty)
	pos.Set(m.From, u.Moved)
	if u.Captured != chess.Empty {
		pos.Set(u.CapturedOn, u.Captured)
	}

	pos.ToMove = us
	pos.Castling = u.Castling
	pos.EnPassant = u.EnPassant
	pos.HalfmoveClock = u.HalfmoveClock
	pos.FullmoveNumber = u.FullmoveNumber
}

// Apply returns a new position with the move applied, leaving pos untouched.
func Apply(pos *chess.Position, m chess.Move) *chess.Position {
	next := pos.Copy()
	MakeMove(next, m)
	return next
}
