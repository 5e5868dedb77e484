package engine

import (
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/testutil"
)

const (
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4   = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5   = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func TestLegalMoves_InitialPosition(t *testing.T) {
	got := moveStrings(LegalMoves(MustParseFEN(InitialFEN)))
	want := []string{
		"b1a3", "b1c3", "g1f3", "g1h3",
		"a2a3", "a2a4", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g2g3", "g2g4", "h2h3", "h2h4",
	}
	testutil.AssertSameMoves(t, got, want)
}

func TestLegalMoves_Deterministic(t *testing.T) {
	pos := MustParseFEN(kiwipeteFEN)
	first := LegalMoves(pos)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, LegalMoves(pos)); diff != "" {
			t.Fatalf("LegalMoves order changed between calls (-first +now):\n%s", diff)
		}
	}
}

func TestLegalMoves_GenerationOrder(t *testing.T) {
	// The first generated move comes from the lowest occupied square, and
	// knight targets follow knightOffsets, which starts at (+1, +2).
	moves := LegalMoves(MustParseFEN(InitialFEN))
	if got := moves[0].String(); got != "b1c3" {
		t.Errorf("first move = %s, want b1c3", got)
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].From < moves[i-1].From {
			t.Fatalf("move %v listed after %v: origins not ascending", moves[i], moves[i-1])
		}
	}
}

func TestLegalMoves_NeverLeaveKingInCheck(t *testing.T) {
	for _, fen := range []string{InitialFEN, kiwipeteFEN, position3, position4, position5} {
		pos := MustParseFEN(fen)
		us := pos.ToMove
		for _, m := range LegalMoves(pos) {
			next := Apply(pos, m)
			if InCheck(next, us) {
				t.Errorf("%s: move %v leaves %v in check", fen, m, us)
			}
		}
	}
}

func TestLegalMoves_SubsetOfPseudoLegal(t *testing.T) {
	pos := MustParseFEN(position4)
	pseudo := map[chess.Move]bool{}
	for _, m := range PseudoLegalMoves(pos) {
		pseudo[m] = true
	}
	for _, m := range LegalMoves(pos) {
		if !pseudo[m] {
			t.Errorf("legal move %v not generated as pseudo-legal", m)
		}
	}
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		move      string
		wantCount int // 1 if the castling move should be legal, else 0
	}{
		{"white kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", 1},
		{"white queenside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", 1},
		{"black kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", 1},
		{"black queenside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", 1},
		{"no right", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "e1g1", 0},
		{"path blocked", "r3k2r/8/8/8/8/8/8/R3KN1R w KQkq - 0 1", "e1g1", 0},
		{"queenside b-file blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1c1", 0},
		{"in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQq - 0 1", "e1g1", 0},
		{"transit attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQq - 0 1", "e1g1", 0},
		{"destination attacked", "r3k2r/8/8/8/8/8/6r1/R3K2R w KQq - 0 1", "e1g1", 0},
		{"b-file attacked is fine", "r3k2r/8/8/8/8/8/1r6/R3K2R w KQk - 0 1", "e1c1", 1},
		{"rook attacked is fine", "r3k2r/8/8/8/8/8/7r/R3K2R w KQq - 0 1", "e1g1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			count := 0
			for _, m := range LegalMoves(pos) {
				if m.String() == tt.move && m.IsCastle() {
					count++
				}
			}
			if count != tt.wantCount {
				t.Errorf("castling move %s found %d times, want %d", tt.move, count, tt.wantCount)
			}
		})
	}
}

func TestEnPassant(t *testing.T) {
	pos := MustParseFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	push := mustFind(t, pos, "e2e4")
	if push.Flag != chess.DoublePawnPush {
		t.Fatalf("e2e4 flag = %v, want %v", push.Flag, chess.DoublePawnPush)
	}
	MakeMove(pos, push)
	if pos.EnPassant != chess.E3 {
		t.Fatalf("EnPassant = %v, want e3", pos.EnPassant)
	}

	capture := mustFind(t, pos, "d4e3")
	if capture.Flag != chess.EnPassantCapture {
		t.Fatalf("d4e3 flag = %v, want %v", capture.Flag, chess.EnPassantCapture)
	}

	// A waiting move in between forfeits the capture.
	pos = MustParseFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	MakeMove(pos, mustFind(t, pos, "e2e4"))
	MakeMove(pos, mustFind(t, pos, "e8d8"))
	MakeMove(pos, mustFind(t, pos, "e1d1"))
	for _, m := range LegalMoves(pos) {
		if m.Flag == chess.EnPassantCapture {
			t.Errorf("en passant %v still available a move later", m)
		}
	}
}

func TestEnPassant_DiscoveredCheck(t *testing.T) {
	// Capturing en passant would open the fifth rank to the rook.
	pos := MustParseFEN("8/8/8/KPp4r/8/8/8/7k w - c6 0 1")
	for _, m := range LegalMoves(pos) {
		if m.Flag == chess.EnPassantCapture {
			t.Errorf("en passant %v exposes the king", m)
		}
	}
}

func TestPromotions(t *testing.T) {
	pos := MustParseFEN("3n3k/4P3/8/8/8/8/8/K7 w - - 0 1")
	var got []string
	for _, m := range LegalMovesFrom(pos, chess.E7) {
		got = append(got, m.String())
	}
	want := []string{"e7e8q", "e7e8r", "e7e8b", "e7e8n", "e7d8q", "e7d8r", "e7d8b", "e7d8n"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("promotion moves mismatch (-want +got):\n%s", diff)
	}
}

func TestPinnedPieceMovesAlongPin(t *testing.T) {
	pos := MustParseFEN("4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1")
	got := moveStrings(LegalMovesFrom(pos, chess.E2))
	testutil.AssertSameMoves(t, got, []string{"e2e3", "e2e4", "e2e5", "e2e6", "e2e7"}, "pinned rook")
}

func TestCheckEvasions(t *testing.T) {
	// Double check: only king moves are legal.
	pos := MustParseFEN("4k3/8/8/8/8/3Q1n2/8/r3K3 w - - 0 1")
	for _, m := range LegalMoves(pos) {
		if pos.Board[m.From].Kind() != chess.King {
			t.Errorf("non-king move %v in double check", m)
		}
	}
}

func TestIsLegal(t *testing.T) {
	pos := MustParseFEN(InitialFEN)
	if !IsLegal(pos, chess.Move{From: chess.E2, To: chess.E4, Flag: chess.DoublePawnPush}) {
		t.Error("e2e4 should be legal")
	}
	if IsLegal(pos, chess.Move{From: chess.E2, To: chess.E5}) {
		t.Error("e2e5 should not be legal")
	}
	if !HasLegalMoves(pos) {
		t.Error("initial position should have legal moves")
	}
}

// TestLegalMoves_MatchesDragontooth cross-checks the root move set against
// an independent bitboard generator.
func TestLegalMoves_MatchesDragontooth(t *testing.T) {
	for _, fen := range []string{InitialFEN, kiwipeteFEN, position4, position5} {
		t.Run(fen, func(t *testing.T) {
			board := dragontoothmg.ParseFen(fen)
			var want []string
			for _, m := range board.GenerateLegalMoves() {
				want = append(want, strings.ToLower(m.String()))
			}
			got := moveStrings(LegalMoves(MustParseFEN(fen)))
			testutil.AssertSameMoves(t, got, want, "root moves against dragontoothmg")
		})
	}
}

func mustFind(t *testing.T, pos *chess.Position, uci string) chess.Move {
	t.Helper()
	m, err := ParseUCIMove(uci, pos)
	if err != nil {
		t.Fatalf("ParseUCIMove(%q) error = %v", uci, err)
	}
	return m
}
