// Package arena plays engine-vs-engine matches. Games run in parallel on a
// worker pool, colours alternate between games and the finished games are
// tallied into a score table.
package arena

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/game"
	"github.com/lgbarn/chessticot-go/internal/hashing"
	"github.com/lgbarn/chessticot-go/internal/player"
	"github.com/lgbarn/chessticot-go/internal/search"
	"github.com/lgbarn/chessticot-go/internal/worker"
)

// Entrant is one side of a match. New is called once per game, so a
// player's internal state is never shared between concurrent games.
type Entrant struct {
	Name string
	New  func() (player.Player, error)
}

// EntrantByName returns an entrant building players with player.ByName.
// The description is checked up front.
func EntrantByName(name string, opts search.Options) (Entrant, error) {
	p, err := player.ByName(name, opts)
	if err != nil {
		return Entrant{}, err
	}
	return Entrant{
		Name: p.Name(),
		New:  func() (player.Player, error) { return player.ByName(name, opts) },
	}, nil
}

// Options configures a match.
type Options struct {
	Games   int
	Workers int
	Start   *chess.Position // nil means the standard initial position
	Game    game.Options
}

// Standing is one entrant's line in the score table.
type Standing struct {
	Name     string
	Played   int
	Wins     int
	Draws    int
	Losses   int
	TimedOut int
	Points   float64
}

// Report summarises a finished match.
type Report struct {
	Games      []*game.Game // in pairing order
	Standings  []Standing   // best first
	Distinct   int
	Duplicates int
}

// Arena plays a match between two entrants.
type Arena struct {
	a, b   Entrant
	opts   Options
	logger zerolog.Logger
}

// New creates an arena. Entrants sharing a name are told apart by a suffix.
func New(a, b Entrant, opts Options, logger zerolog.Logger) *Arena {
	if a.Name == b.Name {
		a.Name += " #1"
		b.Name += " #2"
	}
	if opts.Start == nil {
		opts.Start = chess.InitialPosition()
	}
	return &Arena{a: a, b: b, opts: opts, logger: logger}
}

// pairing returns the entrants playing White and Black in game i. The
// first entrant has White in even-numbered games.
func (ar *Arena) pairing(i int) (white, black Entrant) {
	if i%2 == 0 {
		return ar.a, ar.b
	}
	return ar.b, ar.a
}

// Run plays the match. It stops early when ctx is cancelled or a game
// fails, returning the first error.
func (ar *Arena) Run(ctx context.Context) (*Report, error) {
	if ar.opts.Games < 1 {
		return nil, fmt.Errorf("games must be positive, got %d: %w", ar.opts.Games, errors.ErrInvalidConfig)
	}

	items := make([]worker.WorkItem, ar.opts.Games)
	for i := range items {
		white, black := ar.pairing(i)
		wp, err := white.New()
		if err != nil {
			return nil, errors.Wrapf(err, "creating %s", white.Name)
		}
		bp, err := black.New()
		if err != nil {
			return nil, errors.Wrapf(err, "creating %s", black.Name)
		}
		items[i] = worker.WorkItem{Index: i, White: wp, Black: bp, Start: ar.opts.Start}
	}

	ar.logger.Info().
		Str("a", ar.a.Name).
		Str("b", ar.b.Name).
		Int("games", ar.opts.Games).
		Int("workers", ar.opts.Workers).
		Msg("match started")

	eg, egCtx := errgroup.WithContext(ctx)
	pool := worker.NewPool(ar.opts.Workers, ar.opts.Workers, func(item worker.WorkItem) worker.ProcessResult {
		g, err := game.Play(egCtx, item.White, item.Black, item.Start, ar.opts.Game, ar.logger)
		return worker.ProcessResult{Index: item.Index, Game: g, Error: err}
	})
	pool.Start()

	eg.Go(func() error {
		defer pool.Close()
		for _, item := range items {
			if egCtx.Err() != nil {
				return nil
			}
			pool.Submit(item)
		}
		return nil
	})

	games := make([]*game.Game, len(items))
	eg.Go(func() error {
		var firstErr error
		for res := range pool.Results() {
			if res.Error != nil {
				if firstErr == nil {
					firstErr = errors.Wrapf(res.Error, "game %d", res.Index)
					pool.Stop()
				}
				continue
			}
			games[res.Index] = res.Game
			ar.logger.Debug().
				Int("index", res.Index).
				Str("game", res.Game.ID).
				Str("result", res.Game.Result().PGN()).
				Msg("game recorded")
		}
		return firstErr
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := ar.tally(games)
	ar.logger.Info().
		Int("games", len(report.Games)).
		Int("distinct", report.Distinct).
		Msg("match finished")
	return report, nil
}

// tally builds the score table and duplicate counts for finished games.
func (ar *Arena) tally(games []*game.Game) *Report {
	table := map[string]*Standing{
		ar.a.Name: {Name: ar.a.Name},
		ar.b.Name: {Name: ar.b.Name},
	}
	dups := hashing.NewDuplicateDetector()

	for i, g := range games {
		white, black := ar.pairing(i)
		wPts, bPts := g.Result().Points()
		record(table[white.Name], g.Result(), game.WhiteWin, wPts)
		record(table[black.Name], g.Result(), game.BlackWin, bPts)
		dups.CheckAndAdd(hashing.SignatureOf(g.Position(), g.Plies()))
	}

	return &Report{
		Games:      games,
		Standings:  sortStandings(table),
		Distinct:   dups.UniqueCount(),
		Duplicates: dups.DuplicateCount(),
	}
}

func record(s *Standing, r, win game.Result, points float64) {
	s.Played++
	s.Points += points
	switch r {
	case win:
		s.Wins++
	case game.Draw:
		s.Draws++
	case game.TimedOut:
		s.TimedOut++
	default:
		s.Losses++
	}
}

// sortStandings orders by points, then by name.
func sortStandings(table map[string]*Standing) []Standing {
	names := maps.Keys(table)
	slices.Sort(names)
	out := make([]Standing, 0, len(names))
	for _, name := range names {
		out = append(out, *table[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out
}
