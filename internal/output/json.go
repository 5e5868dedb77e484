package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID          string     `json:"id"`
	White       string     `json:"white"`
	Black       string     `json:"black"`
	Result      string     `json:"result"`
	Termination string     `json:"termination,omitempty"`
	PlyCount    int        `json:"plyCount"`
	InitialFEN  string     `json:"initialFEN"`
	FinalFEN    string     `json:"finalFEN"`
	Moves       []JSONMove `json:"moves"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply   int    `json:"ply"`
	Color string `json:"color"` // "white" or "black"
	UCI   string `json:"uci"`
	SAN   string `json:"san"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to its JSON form.
func GameToJSON(g *game.Game) (*JSONGame, error) {
	start := g.StartPosition()
	moves := g.Moves()
	sans, err := SANMoves(start, moves)
	if err != nil {
		return nil, err
	}

	jg := &JSONGame{
		ID:         g.ID,
		White:      g.White,
		Black:      g.Black,
		Result:     g.Result().PGN(),
		PlyCount:   len(moves),
		InitialFEN: engine.ToFEN(start),
		FinalFEN:   g.FEN(),
		Moves:      make([]JSONMove, len(moves)),
	}
	if g.IsOver() {
		jg.Termination = g.Reason().String()
	}

	colour := start.ToMove
	for i, m := range moves {
		jg.Moves[i] = JSONMove{
			Ply:   i + 1,
			Color: strings.ToLower(colour.String()),
			UCI:   engine.ToUCI(m),
			SAN:   sans[i],
		}
		colour = colour.Opposite()
	}
	return jg, nil
}

// WriteGamesJSON writes games as a single JSON document.
func WriteGamesJSON(w io.Writer, games []*game.Game) error {
	out := &JSONOutput{Games: make([]*JSONGame, 0, len(games))}
	for _, g := range games {
		jg, err := GameToJSON(g)
		if err != nil {
			return err
		}
		out.Games = append(out.Games, jg)
	}
	return encodeIndented(w, out)
}

func encodeIndented(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
