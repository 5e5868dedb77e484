// Package output writes finished games as PGN or JSON.
//
// Move text is rendered by replaying the game through github.com/notnil/chess,
// which also acts as an independent check that every recorded move is legal.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/game"
)

// DefaultMaxLineLength is the PGN export line width.
const DefaultMaxLineLength = 80

// SevenTagRoster lists the mandatory PGN tags in export order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, separated from the previous one by a space or a
// line break when the line would overflow.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// SANMoves renders moves played from start in standard algebraic notation.
// It fails if any move is rejected by the replay.
func SANMoves(start *chess.Position, moves []chess.Move) ([]string, error) {
	fen := engine.ToFEN(start)
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", fen)
	}
	replay := notnil.NewGame(opt)

	sans := make([]string, 0, len(moves))
	for i, m := range moves {
		pos := replay.Position()
		uci := engine.ToUCI(m)
		nm, err := notnil.UCINotation{}.Decode(pos, uci)
		if err == nil {
			err = replay.Move(nm)
		}
		if err != nil {
			illegal := &errors.IllegalMoveError{Move: uci, FEN: pos.String()}
			return nil, errors.Wrapf(illegal, "ply %d", i+1)
		}
		played := replay.Moves()[len(replay.Moves())-1]
		sans = append(sans, notnil.AlgebraicNotation{}.Encode(pos, played))
	}
	return sans, nil
}

// Tags holds the PGN header values that do not come from the game itself.
type Tags struct {
	Event string
	Site  string
	Date  string
	Round string
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

// gameTags returns the header for g in export order.
func gameTags(g *game.Game, tags Tags) [][2]string {
	date := tags.Date
	if date == "" {
		date = "????.??.??"
	}
	out := [][2]string{
		{"Event", orUnknown(tags.Event)},
		{"Site", orUnknown(tags.Site)},
		{"Date", date},
		{"Round", orUnknown(tags.Round)},
		{"White", orUnknown(g.White)},
		{"Black", orUnknown(g.Black)},
		{"Result", g.Result().PGN()},
	}
	if start := engine.ToFEN(g.StartPosition()); start != engine.InitialFEN {
		out = append(out, [2]string{"SetUp", "1"}, [2]string{"FEN", start})
	}
	out = append(out, [2]string{"PlyCount", strconv.Itoa(g.Plies())})
	if g.IsOver() {
		out = append(out, [2]string{"Termination", g.Reason().String()})
	}
	return out
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// WritePGN writes g as a PGN game followed by a blank line.
func WritePGN(w io.Writer, g *game.Game, tags Tags, maxLineLength int) error {
	start := g.StartPosition()
	sans, err := SANMoves(start, g.Moves())
	if err != nil {
		return err
	}

	var sb strings.Builder
	for _, tag := range gameTags(g, tags) {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", tag[0], escapeTagValue(tag[1]))
	}
	sb.WriteString("\n")

	ow := NewOutputWriter(&sb, maxLineLength)
	number := start.FullmoveNumber
	for i, san := range sans {
		white := (start.ToMove == chess.White) == (i%2 == 0)
		switch {
		case white:
			ow.Write(strconv.Itoa(number) + ".")
		case i == 0:
			ow.Write(strconv.Itoa(number) + "...")
		}
		ow.Write(san)
		if !white {
			number++
		}
	}
	ow.Write(g.Result().PGN())
	ow.NewLine()
	sb.WriteString("\n")

	_, err = io.WriteString(w, sb.String())
	return err
}
