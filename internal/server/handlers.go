package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessticot-go/internal/chess"
	"github.com/lgbarn/chessticot-go/internal/engine"
	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/game"
	"github.com/lgbarn/chessticot-go/internal/player"
	"github.com/lgbarn/chessticot-go/internal/search"
)

type analyzeRequest struct {
	FEN   string `json:"fen"`
	Depth int    `json:"depth"`
}

type analyzeResponse struct {
	Move  string `json:"move,omitempty"`
	Score int    `json:"score"`
	Nodes uint64 `json:"nodes"`
	Mate  int    `json:"mate,omitempty"`
	Depth int    `json:"depth"`
}

type createGameRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"sessions": s.store.Len(),
	})
}

func (s *Server) analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.Depth < 0 || req.Depth > s.opts.MaxDepth {
		return fmt.Errorf("depth must be in 0..%d, got %d: %w", s.opts.MaxDepth, req.Depth, errors.ErrInvalidConfig)
	}
	pos, err := engine.ParseFEN(req.FEN)
	if err != nil {
		return err
	}

	opts := s.opts.Search
	if req.Depth > 0 {
		opts.Depth = req.Depth
	}
	planner := search.NewPlanner(opts)
	res := planner.BestMove(pos)

	resp := analyzeResponse{
		Score: res.Score,
		Nodes: res.Nodes,
		Depth: planner.Options().Depth,
	}
	if !res.Move.IsNull() {
		resp.Move = engine.ToUCI(res.Move)
	}
	if search.IsMate(res.Score) {
		resp.Mate = search.MateDistance(res.Score)
	}
	return c.JSON(resp)
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	start := chess.InitialPosition()
	if req.FEN != "" {
		pos, err := engine.ParseFEN(req.FEN)
		if err != nil {
			return err
		}
		start = pos
	}

	bot := player.NewPlanner(s.opts.Search)
	g := game.New(start, s.opts.Game)
	g.White, g.Black = "client", bot.Name()
	if start.ToMove == chess.Black {
		g.White, g.Black = g.Black, g.White
	}
	sess := &Session{game: g, engine: bot}
	s.store.Add(sess)

	s.logger.Info().Str("game", g.ID).Str("fen", g.FEN()).Msg("game created")
	return c.Status(fiber.StatusCreated).JSON(sess.State())
}

func (s *Server) getGame(c *fiber.Ctx) error {
	sess, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(sess.State())
}

func (s *Server) postMove(c *fiber.Ctx) error {
	sess, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	state, err := sess.Play(req.Move)
	if err != nil {
		return err
	}
	s.logger.Debug().
		Str("game", state.ID).
		Str("move", req.Move).
		Str("reply", state.EngineMove).
		Msg("move played")
	return c.JSON(state)
}
