package eval

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/testutil"
)

var evaluators = map[string]Evaluator{
	"material": Material,
	"basic":    Basic,
	"mobility": Mobility,
	"zero":     Zero,
}

func TestEvaluators_InitialPositionIsBalanced(t *testing.T) {
	pos := engine.MustParseFEN(engine.InitialFEN)
	for name, e := range evaluators {
		if got := e.Evaluate(pos); got != 0 {
			t.Errorf("%s: Evaluate(initial) = %d, want 0", name, got)
		}
	}
}

func TestEvaluators_SideToMovePerspective(t *testing.T) {
	// The same placement scored for either side to move has opposite sign.
	white := engine.MustParseFEN("4k3/8/8/8/8/8/8/QR2K3 w - - 0 1")
	black := engine.MustParseFEN("4k3/8/8/8/8/8/8/QR2K3 b - - 0 1")
	for _, name := range []string{"material", "basic"} {
		e := evaluators[name]
		w, b := e.Evaluate(white), e.Evaluate(black)
		if w <= 0 {
			t.Errorf("%s: white to move with extra material scored %d", name, w)
		}
		if w != -b {
			t.Errorf("%s: white %d and black %d are not negations", name, w, b)
		}
	}
	if Mobility.Evaluate(white) <= 0 || Mobility.Evaluate(black) >= 0 {
		t.Errorf("mobility: white %d, black %d", Mobility.Evaluate(white), Mobility.Evaluate(black))
	}
}

func TestMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
		{"extra queen", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", 1200},
		{"extra queen, opponent to move", "4k3/8/8/8/8/8/8/3QK3 b - - 0 1", -1200},
		{"rook against two pawns", "4k3/pp6/8/8/8/8/8/R3K3 w - - 0 1", 400},
		{"minor pieces", "2b1k3/8/8/8/8/8/8/1N2K1N1 b - - 0 1", -400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Material.Evaluate(engine.MustParseFEN(tt.fen)), tt.want)
		})
	}
}

func TestBasic_DoublesUnattackedPieces(t *testing.T) {
	// The white rook is attacked by the black king, so it counts once;
	// the white queen is safe and counts twice.
	pos := engine.MustParseFEN("3k4/3R4/8/8/8/8/8/Q3K3 b - - 0 1")
	testutil.AssertEqual(t, Basic.Evaluate(pos), -(50 + 200))
}

func TestMobility_PenalisesHangingEnemyPiece(t *testing.T) {
	// Black to move and the white queen on d5 is attacked by the pawn on e6.
	hanging := engine.MustParseFEN("4k3/8/4p3/3Q4/8/8/8/4K3 b - - 0 1")
	safe := engine.MustParseFEN("4k3/8/4p3/8/8/8/8/3QK3 b - - 0 1")
	if Mobility.Evaluate(hanging) <= Mobility.Evaluate(safe) {
		t.Errorf("hanging queen %d should score better for black than safe queen %d",
			Mobility.Evaluate(hanging), Mobility.Evaluate(safe))
	}
}

func TestMobility_DoesNotModifyPosition(t *testing.T) {
	pos := engine.MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := pos.Copy()
	Mobility.Evaluate(pos)
	testutil.AssertEqual(t, pos, before)
}

func TestEvaluators_Bounded(t *testing.T) {
	// Nine queens and two rooks against a bare king.
	pos := engine.MustParseFEN("QQQQk3/QQQQ4/8/8/8/8/8/Q3K2R b K - 0 1")
	for name, e := range evaluators {
		got := e.Evaluate(pos)
		if got > MaxScore || got < -MaxScore {
			t.Errorf("%s: Evaluate = %d outside ±%d", name, got, MaxScore)
		}
	}
}

func TestEvaluators_Deterministic(t *testing.T) {
	pos := engine.MustParseFEN("r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 0 1")
	for name, e := range evaluators {
		first := e.Evaluate(pos)
		for i := 0; i < 3; i++ {
			if got := e.Evaluate(pos); got != first {
				t.Errorf("%s: Evaluate changed from %d to %d", name, first, got)
			}
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		e, err := ByName(name)
		testutil.AssertNoError(t, err, "ByName(%q)", name)
		testutil.AssertTrue(t, e != nil, "ByName(%q) returned nil", name)
	}

	_, err := ByName("stockfish")
	if !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("ByName(unknown) error = %v, want ErrInvalidConfig", err)
	}
}

func TestNames(t *testing.T) {
	testutil.AssertEqual(t, Names(), []string{"basic", "material", "mobility", "zero"})
}

func TestEvaluatorFunc(t *testing.T) {
	calls := 0
	e := EvaluatorFunc(func(*chess.Position) int { calls++; return 42 })
	testutil.AssertEqual(t, e.Evaluate(chess.InitialPosition()), 42)
	testutil.AssertEqual(t, calls, 1)
}

func TestClamp(t *testing.T) {
	testutil.AssertEqual(t, clamp(5, 0, 10), 5)
	testutil.AssertEqual(t, clamp(-5, 0, 10), 0)
	testutil.AssertEqual(t, clamp(15, 0, 10), 10)
}
