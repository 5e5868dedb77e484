package chess

// MoveFlag classifies the special rules a move invokes.
type MoveFlag int

const (
	Normal MoveFlag = iota
	DoublePawnPush
	EnPassantCapture
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move flag.
func (f MoveFlag) String() string {
	switch f {
	case Normal:
		return "normal"
	case DoublePawnPush:
		return "double-pawn-push"
	case EnPassantCapture:
		return "en-passant"
	case KingsideCastle:
		return "kingside-castle"
	case QueensideCastle:
		return "queenside-castle"
	default:
		return "unknown"
	}
}

// Move is a value type: two moves are equal iff all fields match.
// A Move only has meaning relative to the position it was generated from.
type Move struct {
	From      Square
	To        Square
	Promotion Kind // NoKind unless a pawn reaches the last rank
	Flag      MoveFlag
}

// NullMove is the absent move returned when there is nothing to play.
var NullMove = Move{From: NoSquare, To: NoSquare}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m == NullMove
}

// IsCastle reports whether m is either castling move.
func (m Move) IsCastle() bool {
	return m.Flag == KingsideCastle || m.Flag == QueensideCastle
}

// String returns the long algebraic form used by UCI: "e2e4", "e7e8q".
// Castling is written as the king's two-square move.
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// Undo holds everything needed to take a move back exactly.
type Undo struct {
	Move           Move
	Moved          Piece
	Captured       Piece
	CapturedOn     Square
	Castling       CastlingRights
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
}
