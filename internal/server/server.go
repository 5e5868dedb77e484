// Package server exposes the engine over HTTP: position analysis, games
// against the engine and a WebSocket feed for live play.
package server

import (
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessticot-go/internal/errors"
	"github.com/lgbarn/chessticot-go/internal/game"
	"github.com/lgbarn/chessticot-go/internal/search"
)

// Options configures the server's engine.
type Options struct {
	Search search.Options
	Game   game.Options
	// MaxDepth bounds the depth a client may request from /api/analyze.
	// Zero means the configured search depth.
	MaxDepth int
}

// Server is the HTTP front end.
type Server struct {
	app    *fiber.App
	store  *Store
	opts   Options
	logger zerolog.Logger
}

// New creates a server with its routes registered.
func New(opts Options, logger zerolog.Logger) *Server {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = search.NewPlanner(opts.Search).Options().Depth
	}
	s := &Server{
		store:  NewStore(),
		opts:   opts,
		logger: logger,
	}
	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(s.requestLogger())

	api := s.app.Group("/api")
	api.Get("/health", s.health)
	api.Post("/analyze", s.analyze)
	api.Post("/games", s.createGame)
	api.Get("/games/:id", s.getGame)
	api.Post("/games/:id/moves", s.postMove)

	s.app.Use("/ws", requireUpgrade)
	s.app.Get("/ws/games/:id", websocket.New(s.streamGame))
	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("server listening")
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		s.logger.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case stderrors.As(err, &fe):
		return fe.Code
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrGameOver):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrInvalidFEN),
		stderrors.Is(err, errors.ErrInvalidUCI),
		stderrors.Is(err, errors.ErrInvalidConfig):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
