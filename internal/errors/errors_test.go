package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidUCI", ErrInvalidUCI, ErrInvalidUCI},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrInvariant", ErrInvariant, ErrInvariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestFormatError_FEN(t *testing.T) {
	err := NewFENError("8/8/8 w - - 0 1", "placement", "expected 8 ranks, got %d", 3)

	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(err, ErrInvalidFEN) = false, want true")
	}
	if errors.Is(err, ErrInvalidUCI) {
		t.Error("FEN error should not match ErrInvalidUCI")
	}

	msg := err.Error()
	for _, s := range []string{"FEN", "placement", "8/8/8", "expected 8 ranks, got 3"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("FormatError.Error() = %q, should contain %q", msg, s)
		}
	}
}

func TestFormatError_UCI(t *testing.T) {
	err := NewUCIError("e9e4", "bad square")

	var fe *FormatError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &fe) {
		t.Fatal("errors.As() could not extract FormatError")
	}
	if fe.Format != "UCI" || fe.Input != "e9e4" {
		t.Errorf("FormatError = %+v; want UCI e9e4", fe)
	}
	if !errors.Is(err, ErrInvalidUCI) {
		t.Error("errors.Is(err, ErrInvalidUCI) = false, want true")
	}
}

func TestIllegalMoveError(t *testing.T) {
	err := &IllegalMoveError{Move: "e2e5", FEN: "startpos"}

	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(err, ErrIllegalMove) = false, want true")
	}
	msg := err.Error()
	if !containsIgnoreCase(msg, "e2e5") || !containsIgnoreCase(msg, "startpos") {
		t.Errorf("IllegalMoveError.Error() = %q, missing context", msg)
	}

	bare := &IllegalMoveError{Move: "a1a1"}
	if strings.Contains(bare.Error(), "position") {
		t.Errorf("IllegalMoveError without FEN = %q, should not mention position", bare.Error())
	}
}

func TestInvariantf_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Invariantf did not panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %T is not an error", r)
		}
		if !errors.Is(err, ErrInvariant) {
			t.Errorf("errors.Is(%v, ErrInvariant) = false", err)
		}
		if !containsIgnoreCase(err.Error(), "white king missing") {
			t.Errorf("panic message = %q", err.Error())
		}
	}()
	Invariantf("%s king missing", "white")
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	original := ErrInvalidFEN
	wrapped := Wrap(original, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	original := ErrIllegalMove
	wrapped := Wrapf(original, "move %d in game %d", 15, 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
