package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a FEN record.
const fenFields = 6

// ParseFEN creates a position from a FEN string. Malformed or inconsistent
// input is reported as an *errors.FormatError wrapping errors.ErrInvalidFEN.
func ParseFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, errors.NewFENError(fen, "record", "expected %d fields, got %d", fenFields, len(parts))
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(pos, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, fen, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, fen, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, fen, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, fen, parts[4], parts[5]); err != nil {
		return nil, err
	}
	if IsAttacked(pos, pos.KingSquare[pos.ToMove.Opposite()], pos.ToMove) {
		return nil, errors.NewFENError(fen, "side to move", "%v can capture the %v king", pos.ToMove, pos.ToMove.Opposite())
	}

	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error. It is intended for
// constants and tests.
func MustParseFEN(fen string) *chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return errors.NewFENError(fen, "placement", "expected %d ranks, got %d", chess.BoardSize, len(ranks))
	}

	var kings [2]int
	for i, rankText := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return errors.NewFENError(fen, "placement", "invalid piece character %q", c)
			}
			if file >= chess.BoardSize {
				return errors.NewFENError(fen, "placement", "rank %d has more than %d files", rank+1, chess.BoardSize)
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			if kind == chess.King {
				kings[colour]++
			}
			pos.Set(chess.NewSquare(file, rank), chess.MakePiece(colour, kind))
			file++
		}
		if file != chess.BoardSize {
			return errors.NewFENError(fen, "placement", "rank %d has %d files", rank+1, file)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return errors.NewFENError(fen, "placement", "expected one %v king, found %d", colour, kings[colour])
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, fen, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return errors.NewFENError(fen, "side to move", "expected w or b, got %q", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field and checks
// that every claimed right has its king and rook on their home squares.
func parseCastlingRights(pos *chess.Position, fen, field string) error {
	pos.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		var right chess.CastlingRights
		switch field[i] {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		default:
			return errors.NewFENError(fen, "castling", "invalid castling character %q", field[i])
		}
		if pos.Castling.Has(right) {
			return errors.NewFENError(fen, "castling", "duplicate castling right %q", field[i])
		}
		pos.Castling |= right
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for i := range castlePaths[colour] {
			cp := &castlePaths[colour][i]
			if !pos.Castling.Has(cp.right) {
				continue
			}
			if pos.Get(cp.king) != chess.MakePiece(colour, chess.King) || pos.Get(cp.rook) != cp.rookPiece {
				return errors.NewFENError(fen, "castling", "right %v without king and rook on their home squares", cp.right)
			}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The square
// must lie behind a pawn that just made a double push.
func parseEnPassant(pos *chess.Position, fen, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}

	sq, ok := chess.ParseSquare(field)
	if !ok {
		return errors.NewFENError(fen, "en passant", "invalid square %q", field)
	}

	mover := pos.ToMove
	pusher := mover.Opposite()
	wantRank := chess.HomeRank(pusher) + 2*chess.PawnDirection(pusher)
	if sq.Rank() != wantRank {
		return errors.NewFENError(fen, "en passant", "square %v is not on rank %d", sq, wantRank+1)
	}
	pawnSq := sq.Offset(0, chess.PawnDirection(pusher))
	if pos.Get(sq) != chess.Empty || pos.Get(pawnSq) != chess.MakePiece(pusher, chess.Pawn) {
		return errors.NewFENError(fen, "en passant", "no %v pawn has just passed %v", pusher, sq)
	}

	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fen, halfmove, fullmove string) error {
	h, err := strconv.Atoi(halfmove)
	if err != nil || h < 0 {
		return errors.NewFENError(fen, "halfmove clock", "expected a non-negative integer, got %q", halfmove)
	}
	f, err := strconv.Atoi(fullmove)
	if err != nil || f < 1 {
		return errors.NewFENError(fen, "fullmove number", "expected a positive integer, got %q", fullmove)
	}
	pos.HalfmoveClock = h
	pos.FullmoveNumber = f
	return nil
}

// ToFEN converts a position to a FEN string.
func ToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Get(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
