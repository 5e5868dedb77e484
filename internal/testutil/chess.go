package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// fenFields names the six FEN fields in order.
var fenFields = [6]string{"placement", "side to move", "castling", "en passant", "halfmove clock", "fullmove number"}

// AssertFEN compares two FEN strings field by field and names every field
// that differs.
func AssertFEN(t testing.TB, got, want string, msgAndArgs ...interface{}) {
	t.Helper()
	if got == want {
		return
	}
	g, w := strings.Fields(got), strings.Fields(want)
	if len(g) != len(w) {
		fail(t, fmt.Sprintf("FEN %q has %d fields, want %d (%q)", got, len(g), len(w), want), msgAndArgs)
		return
	}
	var diffs []string
	for i := range w {
		if g[i] != w[i] {
			name := fmt.Sprintf("field %d", i+1)
			if i < len(fenFields) {
				name = fenFields[i]
			}
			diffs = append(diffs, fmt.Sprintf("%s: got %q, want %q", name, g[i], w[i]))
		}
	}
	fail(t, "FEN mismatch: "+strings.Join(diffs, "; "), msgAndArgs)
}

// AssertSameMoves compares two lists of UCI moves as sets, ignoring
// generation order. Duplicates are significant.
func AssertSameMoves(t testing.TB, got, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		fail(t, fmt.Sprintf("move lists differ (-want +got):\n%s", diff), msgAndArgs)
	}
}
