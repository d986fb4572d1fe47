package game

import (
	"encoding/json"
	"sync"
	"time"
)

// Phase is the explicit lifecycle state of a session. Legal operations are
// checked against it rather than inferred from drawerIndex or word presence.
type Phase int

const (
	PhaseLobby Phase = iota
	PhaseInRound
	PhaseEnded
)

// Session is one game room's complete state. The zero drawerIndex for a
// session that has not started is -1; players[0] is the host. All fields are
// guarded by locker, which every coordinator operation and every timer fire
// acquires before touching state.
type Session struct {
	id          string
	players     []string
	scores      map[string]int
	drawerIndex int
	word        string
	finished    map[string]bool
	canvas      json.RawMessage
	phase       Phase

	locker     sync.Mutex
	roundTimer *time.Timer
	timerGen   uint64
}

func newSession(id string) *Session {
	return &Session{
		id:          id,
		players:     make([]string, 0, 8),
		scores:      make(map[string]int),
		drawerIndex: -1,
		finished:    make(map[string]bool),
		phase:       PhaseLobby,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Players returns a copy of the join-ordered player list.
func (s *Session) Players() []string {
	s.locker.Lock()
	defer s.locker.Unlock()
	players := make([]string, len(s.players))
	copy(players, s.players)
	return players
}

func (s *Session) Phase() Phase {
	s.locker.Lock()
	defer s.locker.Unlock()
	return s.phase
}

func (s *Session) Score(player string) int {
	s.locker.Lock()
	defer s.locker.Unlock()
	return s.scores[player]
}

// drawerLocked returns the current drawer, or "" while no round is active.
// Callers must hold locker.
func (s *Session) drawerLocked() string {
	if s.drawerIndex < 0 || s.drawerIndex >= len(s.players) {
		return ""
	}
	return s.players[s.drawerIndex]
}

func (s *Session) hasPlayerLocked(id string) bool {
	for _, p := range s.players {
		if p == id {
			return true
		}
	}
	return false
}

// winnerLocked picks the player with the highest score. Ties go to the
// earliest-joined player among those tied for the maximum, so the result is
// deterministic for any fixed join order. Callers must hold locker.
func (s *Session) winnerLocked() string {
	winner := ""
	best := -1
	for _, p := range s.players {
		if s.scores[p] > best {
			winner = p
			best = s.scores[p]
		}
	}
	return winner
}
