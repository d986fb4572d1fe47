package game

import (
	"encoding/json"
	"time"

	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/shared/logger"
)

// Coordinator is the public operation surface invoked by the transport
// layer. Every operation resolves the target session, validates the caller's
// permission under the session lock and returns the broadcast instructions
// for the transport to execute. Timer-driven round advances bypass the
// request path and push their instructions into the sink instead.
type Coordinator struct {
	registry      *Registry
	words         WordSource
	roundDuration time.Duration
	sink          Broadcaster
}

func NewCoordinator(registry *Registry, words WordSource, roundDuration time.Duration) *Coordinator {
	return &Coordinator{
		registry:      registry,
		words:         words,
		roundDuration: roundDuration,
	}
}

// SetSink attaches the transport sink used for timer-driven broadcasts.
func (c *Coordinator) SetSink(sink Broadcaster) {
	c.sink = sink
}

// CreateSession registers a new lobby session with the caller as host and
// sole player.
func (c *Coordinator) CreateSession(caller string) (string, []Broadcast) {
	session := c.registry.Create()
	session.locker.Lock()
	session.players = append(session.players, caller)
	session.scores[caller] = 0
	session.locker.Unlock()

	logger.Infof("[Session %s] created by %s", session.id, caller)
	return session.id, []Broadcast{ToConn(caller, EventGameCreated, session.id)}
}

// JoinSession appends the caller to the session's player list. Repeated
// joins are rejected, not merged.
func (c *Coordinator) JoinSession(caller, sessionID string) ([]Broadcast, error) {
	session, ok := c.registry.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.locker.Lock()
	defer session.locker.Unlock()

	if session.phase == PhaseEnded {
		return nil, ErrSessionNotFound
	}
	if session.hasPlayerLocked(caller) {
		return nil, ErrAlreadyJoined
	}

	session.players = append(session.players, caller)
	session.scores[caller] = 0

	list := make([]string, len(session.players))
	copy(list, session.players)

	logger.Infof("[Session %s] %s joined, %d players", session.id, caller, len(list))
	return []Broadcast{
		ToRoom(session.id, EventPlayerList, PlayerListData{List: list, NewPlayer: caller}),
	}, nil
}

// StartGame moves the session out of the lobby and kicks off the first
// round. Only the host may start, and only once.
func (c *Coordinator) StartGame(caller, sessionID string) ([]Broadcast, error) {
	session, ok := c.registry.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.locker.Lock()
	defer session.locker.Unlock()

	if session.phase == PhaseEnded {
		return nil, ErrSessionNotFound
	}
	if len(session.players) == 0 || session.players[0] != caller {
		return nil, ErrNotHost
	}
	if session.phase != PhaseLobby {
		return nil, ErrAlreadyStarted
	}

	logger.Infof("[Session %s] started by host %s", session.id, caller)
	instructions := []Broadcast{ToRoom(session.id, EventGameStarted, nil)}
	return append(instructions, c.advanceRoundLocked(session)...), nil
}

// UpdateCanvas stores the drawer's canvas payload and relays it verbatim to
// the whole room, drawer included, so every client converges on the same
// state. The payload is opaque to the coordinator.
func (c *Coordinator) UpdateCanvas(caller, sessionID string, payload json.RawMessage) ([]Broadcast, error) {
	session, ok := c.registry.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.locker.Lock()
	defer session.locker.Unlock()

	if session.phase == PhaseEnded {
		return nil, ErrSessionNotFound
	}
	if session.drawerLocked() != caller {
		return nil, ErrNotDrawer
	}

	session.canvas = payload
	return []Broadcast{ToRoom(session.id, EventCanvasUpdate, payload)}, nil
}

// SubmitGuess evaluates a guess against the current word. A correct guess
// scores 2 for the guesser and 1 for the drawer; an incorrect guess is
// announced to the whole room, drawer included. When the last non-drawer
// guesses correctly the round advances immediately instead of waiting out
// the timer.
func (c *Coordinator) SubmitGuess(caller, sessionID, rawGuess string) ([]Broadcast, error) {
	session, ok := c.registry.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.locker.Lock()
	defer session.locker.Unlock()

	if session.phase == PhaseEnded {
		return nil, ErrSessionNotFound
	}
	// Only members may guess: scores and the finished set track players
	// exactly.
	if !session.hasPlayerLocked(caller) {
		return nil, ErrNotInSession
	}
	drawer := session.drawerLocked()
	if drawer != "" && drawer == caller {
		return nil, ErrDrawerCannotGuess
	}
	if session.finished[caller] {
		return nil, ErrAlreadyGuessed
	}

	if !MatchesWord(session.word, rawGuess) {
		return []Broadcast{
			ToRoom(session.id, EventIncorrectGuess, IncorrectGuessData{
				Player: caller,
				Guess:  Normalize(rawGuess),
			}),
		}, nil
	}

	session.scores[caller] += 2
	session.scores[drawer]++
	session.finished[caller] = true

	logger.Infof("[Session %s] correct guess by %s", session.id, caller)
	instructions := []Broadcast{ToRoom(session.id, EventCorrectGuess, caller)}

	if len(session.finished) == len(session.players)-1 {
		instructions = append(instructions, c.advanceRoundLocked(session)...)
	}
	return instructions, nil
}
