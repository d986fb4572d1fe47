package ws

import (
	"encoding/json"
	"sync"

	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/game"
	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/shared/logger"
)

// Hub tracks live connections and their room subscriptions and executes the
// coordinator's broadcast instructions. Room membership here is purely a
// delivery concern: it outlives the session in the registry, so best-effort
// notifications (like a late canvas description) still reach subscribers of
// an already-ended game.
type Hub struct {
	coordinator *game.Coordinator
	eventRate   int
	eventBurst  int

	locker  sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]*Client
}

// NewHub builds the hub. eventRate and eventBurst bound the inbound events
// accepted per client, per second.
func NewHub(coordinator *game.Coordinator, eventRate, eventBurst int) *Hub {
	return &Hub{
		coordinator: coordinator,
		eventRate:   eventRate,
		eventBurst:  eventBurst,
		clients:     make(map[string]*Client),
		rooms:       make(map[string]map[string]*Client),
	}
}

func (h *Hub) register(c *Client) {
	h.locker.Lock()
	h.clients[c.id] = c
	h.locker.Unlock()
}

// unregister drops the client from the hub and from every room it was
// subscribed to, then releases its send channel.
func (h *Hub) unregister(c *Client) {
	h.locker.Lock()
	delete(h.clients, c.id)
	for roomID, members := range h.rooms {
		delete(members, c.id)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
	h.locker.Unlock()
	c.shutdown()
}

// Subscribe adds a connection to a room's delivery group.
func (h *Hub) Subscribe(roomID, connID string) {
	h.locker.Lock()
	defer h.locker.Unlock()
	client, ok := h.clients[connID]
	if !ok {
		return
	}
	members, ok := h.rooms[roomID]
	if !ok {
		members = make(map[string]*Client)
		h.rooms[roomID] = members
	}
	members[connID] = client
}

// Deliver executes broadcast instructions. Unknown targets and rooms are
// silent drops.
func (h *Hub) Deliver(instructions ...game.Broadcast) {
	for _, instr := range instructions {
		frame, err := encodeFrame(instr.Event, instr.Data)
		if err != nil {
			logger.Criticalf("failed to encode %s event: %v", instr.Event, err)
			continue
		}

		h.locker.RLock()
		switch instr.Scope {
		case game.ScopeConn:
			if client, ok := h.clients[instr.Target]; ok {
				client.enqueue(frame)
			}
		case game.ScopeRoom:
			for _, client := range h.rooms[instr.Room] {
				client.enqueue(frame)
			}
		}
		h.locker.RUnlock()
	}
}

func (h *Hub) deliverError(connID string, opErr error) {
	h.Deliver(game.ToConn(connID, game.EventError, opErr.Error()))
}

func encodeFrame(event string, data any) ([]byte, error) {
	env := Envelope{Event: event}
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		env.Data = payload
	}
	return json.Marshal(env)
}
