package server

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// requireUpgrade rejects plain HTTP requests to WebSocket routes.
func requireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

type wsError struct {
	Error string `json:"error"`
}

// streamGame sends the game state on connect, then answers every
// {"move": "..."} frame with the new state or an error frame.
func (s *Server) streamGame(conn *websocket.Conn) {
	id := conn.Params("id")
	log := s.logger.With().Str("game", id).Logger()
	defer conn.Close()

	sess, err := s.store.Get(id)
	if err != nil {
		_ = conn.WriteJSON(wsError{Error: err.Error()})
		return
	}
	if err := conn.WriteJSON(sess.State()); err != nil {
		return
	}
	log.Debug().Msg("websocket connected")

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Msg("websocket closed")
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var req moveRequest
		if err := json.Unmarshal(message, &req); err != nil {
			_ = conn.WriteJSON(wsError{Error: "malformed frame: " + err.Error()})
			continue
		}
		state, err := sess.Play(req.Move)
		if err != nil {
			_ = conn.WriteJSON(wsError{Error: err.Error()})
			continue
		}
		if err := conn.WriteJSON(state); err != nil {
			log.Warn().Err(err).Msg("websocket write failed")
			return
		}
	}
}
