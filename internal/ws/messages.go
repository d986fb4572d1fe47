package ws

import "encoding/json"

// Envelope frames every message in both directions: an event name plus an
// event-specific payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Inbound event names accepted from clients.
const (
	eventCreate       = "create"
	eventJoin         = "join"
	eventStartGame    = "start-game"
	eventCanvasUpdate = "canvas-update"
	eventMakeGuess    = "make-guess"
)

type canvasUpdateRequest struct {
	ID     string          `json:"ID"`
	Canvas json.RawMessage `json:"canvas"`
}

type guessRequest struct {
	ID    string `json:"ID"`
	Guess string `json:"guess"`
}
