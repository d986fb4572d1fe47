package game

// Outbound event names, delivered to clients inside the transport envelope.
const (
	EventGameCreated       = "game-created"
	EventPlayerList        = "player-list"
	EventGameStarted       = "game-started"
	EventNewRound          = "new-round"
	EventDraw              = "draw"
	EventCanvasUpdate      = "canvas-update"
	EventCorrectGuess      = "correct-guess"
	EventIncorrectGuess    = "incorrect-guess"
	EventGameEnded         = "game-ended"
	EventRequestSnapshot   = "request-canvas-snapshot"
	EventCanvasDescription = "canvas-description"
	EventError             = "error"
)

// Scope selects who a broadcast instruction is delivered to.
type Scope int

const (
	// ScopeConn delivers to the single connection named by Target.
	ScopeConn Scope = iota
	// ScopeRoom delivers to every connection subscribed to Room.
	ScopeRoom
)

// Broadcast is one delivery instruction produced by a coordinator operation
// or a timer fire. The transport layer executes it; delivery to a connection
// or room that no longer exists is a silent drop.
type Broadcast struct {
	Scope  Scope
	Room   string
	Target string
	Event  string
	Data   any
}

// Broadcaster is the transport-side sink for instructions that are not part
// of a request/response exchange, such as timer-driven round advances.
type Broadcaster interface {
	Deliver(instructions ...Broadcast)
}

func ToConn(target, event string, data any) Broadcast {
	return Broadcast{Scope: ScopeConn, Target: target, Event: event, Data: data}
}

func ToRoom(room, event string, data any) Broadcast {
	return Broadcast{Scope: ScopeRoom, Room: room, Event: event, Data: data}
}

// PlayerListData announces the room's full player list after a join.
type PlayerListData struct {
	List      []string `json:"list"`
	NewPlayer string   `json:"newPlayer"`
}

// IncorrectGuessData makes a wrong guess visible to the whole room, drawer
// included.
type IncorrectGuessData struct {
	Player string `json:"player"`
	Guess  string `json:"guess"`
}
