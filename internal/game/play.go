package game

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/player"
)

// Play runs a game between two players from start until the rules or the
// ply limit end it. The context is checked between moves; on cancellation
// the unfinished game is returned together with the context's error.
//
// A player that offers an illegal move, or no move while legal moves exist,
// breaks an invariant and Play panics.
func Play(ctx context.Context, white, black player.Player, start *chess.Position, opts Options, logger zerolog.Logger) (*Game, error) {
	g := New(start, opts)
	g.White, g.Black = white.Name(), black.Name()

	log := logger.With().Str("game", g.ID).Logger()
	log.Debug().
		Str("white", g.White).
		Str("black", g.Black).
		Str("fen", g.FEN()).
		Msg("game started")

	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return g, err
		}

		mover := white
		if g.ToMove() == chess.Black {
			mover = black
		}
		m := mover.ChooseMove(g.Position())
		if m.IsNull() || !engine.IsLegal(g.pos, m) {
			errors.Invariantf("%s offered illegal move %v in %s", mover.Name(), m, g.FEN())
		}
		g.play(m)

		log.Trace().
			Int("ply", g.Plies()).
			Str("player", mover.Name()).
			Str("move", m.String()).
			Msg("move played")
	}

	log.Info().
		Str("white", g.White).
		Str("black", g.Black).
		Str("result", g.Result().PGN()).
		Str("reason", g.Reason().String()).
		Int("plies", g.Plies()).
		Msg("game finished")
	return g, nil
}
