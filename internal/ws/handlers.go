package ws

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/game"
	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/shared/logger"
)

var errMalformedEvent = errors.New("malformed-event")

// Origin filtering happens in the server's middleware before the upgrade.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func RegisterRoute(engine *gin.Engine, hub *Hub) {
	engine.GET("/ws", hub.serveWS)
}

func (h *Hub) serveWS(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Warningf("websocket upgrade failed: %v", err)
		return
	}

	client := newClient(h, conn)
	h.register(client)
	logger.Infof("client %s connected", client.id)

	go client.writePump()
	go client.readPump()
}

// handleEvent routes one decoded inbound event to the coordinator, forwards
// the resulting broadcast instructions to the hub and turns a rejected
// operation into a caller-directed error notification. No caller input is
// ever fatal.
func (c *Client) handleEvent(env Envelope) {
	coordinator := c.hub.coordinator

	var instructions []game.Broadcast
	var err error

	switch env.Event {
	case eventCreate:
		var sessionID string
		sessionID, instructions = coordinator.CreateSession(c.id)
		c.hub.Subscribe(sessionID, c.id)

	case eventJoin:
		var sessionID string
		if err = json.Unmarshal(env.Data, &sessionID); err != nil {
			err = errMalformedEvent
			break
		}
		if instructions, err = coordinator.JoinSession(c.id, sessionID); err == nil {
			// Subscribe before delivering so the joiner sees the updated
			// player list too.
			c.hub.Subscribe(sessionID, c.id)
		}

	case eventStartGame:
		var sessionID string
		if err = json.Unmarshal(env.Data, &sessionID); err != nil {
			err = errMalformedEvent
			break
		}
		instructions, err = coordinator.StartGame(c.id, sessionID)

	case eventCanvasUpdate:
		var req canvasUpdateRequest
		if err = json.Unmarshal(env.Data, &req); err != nil {
			err = errMalformedEvent
			break
		}
		instructions, err = coordinator.UpdateCanvas(c.id, req.ID, req.Canvas)

	case eventMakeGuess:
		var req guessRequest
		if err = json.Unmarshal(env.Data, &req); err != nil {
			err = errMalformedEvent
			break
		}
		instructions, err = coordinator.SubmitGuess(c.id, req.ID, req.Guess)

	default:
		logger.Debugf("client %s sent unknown event %q", c.id, env.Event)
		return
	}

	if err != nil {
		c.hub.deliverError(c.id, err)
		return
	}
	c.hub.Deliver(instructions...)
}
