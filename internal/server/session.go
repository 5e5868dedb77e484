package server

import (
	"sync"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/game"
	"github.com/lgbarn/chessticot-go/internal/player"
)

// GameState is the JSON view of a session's game.
type GameState struct {
	ID         string   `json:"id"`
	FEN        string   `json:"fen"`
	Moves      []string `json:"moves"`
	ToMove     string   `json:"toMove"`
	InCheck    bool     `json:"inCheck"`
	LegalMoves []string `json:"legalMoves"`
	Over       bool     `json:"over"`
	Result     string   `json:"result"`
	Reason     string   `json:"reason,omitempty"`
	EngineMove string   `json:"engineMove,omitempty"`
}

// Session is a game between a client and the engine. The client plays the
// side to move in the start position; the engine answers every move.
type Session struct {
	mu         sync.Mutex
	game       *game.Game
	engine     player.Player
	engineMove string
}

// Play applies the client's move and, unless that ends the game, the
// engine's reply.
func (s *Session) Play(uci string) (GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.game.MakeUCIMove(uci); err != nil {
		return GameState{}, err
	}
	s.engineMove = ""
	if !s.game.IsOver() {
		reply := s.engine.ChooseMove(s.game.Position())
		if err := s.game.MakeMove(reply); err != nil {
			errors.Invariantf("%s offered %v: %v", s.engine.Name(), reply, err)
		}
		s.engineMove = engine.ToUCI(reply)
	}
	return s.stateLocked(), nil
}

// State returns a snapshot of the game.
func (s *Session) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() GameState {
	g := s.game
	st := GameState{
		ID:         g.ID,
		FEN:        g.FEN(),
		Moves:      uciList(g.Moves()),
		ToMove:     g.ToMove().String(),
		InCheck:    g.InCheck(),
		LegalMoves: uciList(g.LegalMoves()),
		Over:       g.IsOver(),
		Result:     g.Result().PGN(),
		EngineMove: s.engineMove,
	}
	if g.IsOver() {
		st.Reason = g.Reason().String()
	}
	return st
}

// Store holds the live sessions. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Add registers a session under its game ID.
func (st *Store) Add(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.game.ID] = s
}

// Get returns the session for id or errors.ErrGameNotFound.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	return s, nil
}

// Len returns the number of sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func uciList(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = engine.ToUCI(m)
	}
	return out
}
