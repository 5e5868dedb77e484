package chess

// Position represents a chess position with all state needed to generate
// and apply moves.
type Position struct {
	// Board holds the piece on each square, indexed by Square.
	Board [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Castling options still held by either side.
	Castling CastlingRights

	// The square skipped by the most recent double pawn push, or NoSquare.
	EnPassant Square

	// Half-moves since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, incremented after Black moves.
	FullmoveNumber int

	// Keep track of where the two kings are for check detection.
	// Indexed by Colour; NoSquare when the king is absent.
	KingSquare [2]Square
}

// NewPosition creates an empty position with White to move.
func NewPosition() *Position {
	return &Position{
		ToMove:         White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
		KingSquare:     [2]Square{NoSquare, NoSquare},
	}
}

// InitialPosition creates the standard starting position.
func InitialPosition() *Position {
	p := NewPosition()
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	*p = *NewPosition()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Set(NewSquare(file, 0), W(backRank[file]))
		p.Set(NewSquare(file, 1), W(Pawn))
		p.Set(NewSquare(file, 6), B(Pawn))
		p.Set(NewSquare(file, 7), B(backRank[file]))
	}
	p.Castling = AllCastling
}

// Get returns the piece on the given square.
func (p *Position) Get(sq Square) Piece {
	return p.Board[sq]
}

// Set places a piece on a square, keeping the king squares current.
func (p *Position) Set(sq Square, piece Piece) {
	old := p.Board[sq]
	if old.Kind() == King && p.KingSquare[old.Colour()] == sq {
		p.KingSquare[old.Colour()] = NoSquare
	}
	p.Board[sq] = piece
	if piece.Kind() == King {
		p.KingSquare[piece.Colour()] = sq
	}
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// CountPieces returns how many pieces of the given colour are on the board.
func (p *Position) CountPieces(colour Colour) int {
	n := 0
	for _, piece := range p.Board {
		if piece != Empty && piece.Colour() == colour {
			n++
		}
	}
	return n
}

// Count returns how many pieces of the given colour and kind are on the board.
func (p *Position) Count(colour Colour, kind Kind) int {
	target := MakePiece(colour, kind)
	n := 0
	for _, piece := range p.Board {
		if piece == target {
			n++
		}
	}
	return n
}
