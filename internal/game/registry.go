package game

import (
	"sync"

	"github.com/google/uuid"
)

// Registry owns the process-wide session map. Lookup is a short read-locked
// operation; all game logic happens under the individual session's lock, so
// traffic to one room never blocks another.
type Registry struct {
	locker   sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Create allocates a new session in the lobby phase under a fresh collision
// resistant id and registers it for lookup.
func (r *Registry) Create() *Session {
	session := newSession(uuid.NewString())
	r.locker.Lock()
	r.sessions[session.id] = session
	r.locker.Unlock()
	return session
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.locker.RLock()
	session, ok := r.sessions[id]
	r.locker.RUnlock()
	return session, ok
}

// Remove deletes the session. Idempotent: removing an unknown id is a no-op.
func (r *Registry) Remove(id string) {
	r.locker.Lock()
	delete(r.sessions, id)
	r.locker.Unlock()
}

func (r *Registry) Count() int {
	r.locker.RLock()
	defer r.locker.RUnlock()
	return len(r.sessions)
}
