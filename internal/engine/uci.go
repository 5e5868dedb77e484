package engine

import (
	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/errors"
)

// ToUCI returns the long algebraic form of a move: "e2e4", "e7e8q".
// Castling is written as the king's move ("e1g1").
func ToUCI(m chess.Move) string {
	return m.String()
}

// ParseUCIMove decodes a long algebraic move in the context of pos.
// Text that is not a square pair with an optional promotion letter yields an
// *errors.FormatError; a well-formed move that is not legal in pos yields an
// *errors.IllegalMoveError. Flags are recovered from the matching legal move.
func ParseUCIMove(text string, pos *chess.Position) (chess.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.NullMove, errors.NewUCIError(text, "expected 4 or 5 characters, got %d", len(text))
	}
	from, ok := chess.ParseSquare(text[0:2])
	if !ok {
		return chess.NullMove, errors.NewUCIError(text, "invalid origin square %q", text[0:2])
	}
	to, ok := chess.ParseSquare(text[2:4])
	if !ok {
		return chess.NullMove, errors.NewUCIError(text, "invalid destination square %q", text[2:4])
	}
	promotion := chess.NoKind
	if len(text) == 5 {
		promotion = parsePromotion(text[4])
		if promotion == chess.NoKind {
			return chess.NullMove, errors.NewUCIError(text, "invalid promotion piece %q", text[4])
		}
	}

	for _, m := range LegalMoves(pos) {
		if m.From == from && m.To == to && m.Promotion == promotion {
			return m, nil
		}
	}
	return chess.NullMove, &errors.IllegalMoveError{Move: text, FEN: ToFEN(pos)}
}

// parsePromotion maps a lowercase promotion letter to its kind.
func parsePromotion(c byte) chess.Kind {
	switch c {
	case 'q':
		return chess.Queen
	case 'r':
		return chess.Rook
	case 'b':
		return chess.Bishop
	case 'n':
		return chess.Knight
	default:
		return chess.NoKind
	}
}

// ParseUCIMoves applies a sequence of long algebraic moves to a copy of
// pos and returns the resulting position along with the decoded moves.
func ParseUCIMoves(pos *chess.Position, texts []string) (*chess.Position, []chess.Move, error) {
	cur := pos.Copy()
	moves := make([]chess.Move, 0, len(texts))
	for i, text := range texts {
		m, err := ParseUCIMove(text, cur)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "move %d", i+1)
		}
		MakeMove(cur, m)
		moves = append(moves, m)
	}
	return cur, moves, nil
}
