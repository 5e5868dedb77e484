package output

import (
	"io"
	"strconv"

	"github.com/lgbarn/chessticot-go/internal/game"
)

// GameWriter is the interface for writing finished games.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// PGNWriter writes games in PGN format, numbering rounds from 1.
type PGNWriter struct {
	w             io.Writer
	tags          Tags
	maxLineLength int
	round         int
}

// NewPGNWriter creates a new PGN writer. Event and Site are copied into
// every game's header.
func NewPGNWriter(w io.Writer, event, site string) *PGNWriter {
	return &PGNWriter{
		w:             w,
		tags:          Tags{Event: event, Site: site},
		maxLineLength: DefaultMaxLineLength,
	}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(g *game.Game) error {
	pw.round++
	tags := pw.tags
	tags.Round = strconv.Itoa(pw.round)
	return WritePGN(pw.w, g, tags, pw.maxLineLength)
}

// Flush is a no-op; PGN is written immediately.
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*game.Game
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches games into one document.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	if jw.single {
		jg, err := GameToJSON(g)
		if err != nil {
			return err
		}
		return encodeIndented(jw.w, jg)
	}
	jw.games = append(jw.games, g)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := WriteGamesJSON(jw.w, jw.games)
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// NewWriter returns a JSON writer if asJSON is set and a PGN writer otherwise.
func NewWriter(w io.Writer, asJSON bool, event string) GameWriter {
	if asJSON {
		return NewJSONWriter(w)
	}
	return NewPGNWriter(w, event, "chessticot")
}
