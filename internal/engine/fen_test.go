package engine

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/errors"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				return p.Get(chess.E1) == chess.W(chess.King) &&
					p.Get(chess.E8) == chess.B(chess.King) &&
					p.Get(chess.E2) == chess.W(chess.Pawn) &&
					p.Get(chess.E7) == chess.B(chess.Pawn) &&
					p.ToMove == chess.White &&
					p.Castling == chess.AllCastling &&
					p.EnPassant == chess.NoSquare
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.Get(chess.E4) == chess.W(chess.Pawn) &&
					p.Get(chess.E2) == chess.Empty &&
					p.ToMove == chess.Black &&
					p.EnPassant == chess.E3
			},
		},
		{
			name: "sicilian defense",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			checkFn: func(p *chess.Position) bool {
				return p.Get(chess.C5) == chess.B(chess.Pawn) &&
					p.EnPassant == chess.C6 &&
					p.FullmoveNumber == 2
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.Castling == chess.NoCastling
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 37 90",
			checkFn: func(p *chess.Position) bool {
				return p.HalfmoveClock == 37 && p.FullmoveNumber == 90 &&
					p.KingSquare[chess.White] == chess.E1 && p.KingSquare[chess.Black] == chess.E8
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("ParseFEN(%q) position check failed", tt.fen)
			}
		})
	}
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"empty string", "", "record"},
		{"missing clocks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", "record"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBXKBNR w KQkq - 0 1", "placement"},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"two black kings", "3kk3/8/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", "side to move"},
		{"bad castling char", "r3k2r/8/8/8/8/8/8/R3K2R w KX - 0 1", "castling"},
		{"castling without rook", "4k3/8/8/8/8/8/8/4K3 w K - 0 1", "castling"},
		{"castling without king", "r3k2r/8/8/8/8/8/8/R4K1R w K - 0 1", "castling"},
		{"bad en passant square", "4k3/8/8/8/4P3/8/8/4K3 b - e9 0 1", "en passant"},
		{"en passant wrong rank", "4k3/8/8/8/4P3/8/8/4K3 b - e4 0 1", "en passant"},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 b - e3 0 1", "en passant"},
		{"negative halfmove", "4k3/8/8/8/8/8/8/4K3 w - - -1 1", "halfmove clock"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", "fullmove number"},
		{"opponent in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1", "side to move"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if err == nil {
				t.Fatalf("ParseFEN(%q) = %v, want error", tt.fen, ToFEN(pos))
			}
			if !stderrors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("errors.Is(err, ErrInvalidFEN) = false for %v", err)
			}
			var fe *errors.FormatError
			if !stderrors.As(err, &fe) {
				t.Fatalf("error %T is not a *FormatError", err)
			}
			if fe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q (%v)", fe.Field, tt.wantField, err)
			}
		})
	}
}

func TestToFEN_RoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/8/4K3 b - - 99 150",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			pos, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			if diff := cmp.Diff(fen, ToFEN(pos)); diff != "" {
				t.Errorf("ToFEN mismatch (-want +got):\n%s", diff)
			}

			again, err := ParseFEN(ToFEN(pos))
			if err != nil {
				t.Fatalf("ParseFEN(ToFEN()) error = %v", err)
			}
			if diff := cmp.Diff(pos, again); diff != "" {
				t.Errorf("position mismatch after round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFEN_MatchesInitialPosition(t *testing.T) {
	if diff := cmp.Diff(chess.InitialPosition(), MustParseFEN(InitialFEN)); diff != "" {
		t.Errorf("initial position mismatch (-want +got):\n%s", diff)
	}
}

func TestMustParseFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseFEN did not panic on invalid input")
		}
	}()
	MustParseFEN("not a fen")
}
