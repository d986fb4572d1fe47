package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
)

// --- WordSource ---

type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) RandomWord() string {
	args := m.Called()
	return args.String(0)
}

// --- Broadcaster ---

// recordingSink collects timer-driven deliveries. Safe for concurrent use
// since timer fires come from their own goroutines.
type recordingSink struct {
	locker       sync.Mutex
	instructions []Broadcast
}

func (r *recordingSink) Deliver(instructions ...Broadcast) {
	r.locker.Lock()
	r.instructions = append(r.instructions, instructions...)
	r.locker.Unlock()
}

func (r *recordingSink) byEvent(event string) []Broadcast {
	r.locker.Lock()
	defer r.locker.Unlock()
	var out []Broadcast
	for _, b := range r.instructions {
		if b.Event == event {
			out = append(out, b)
		}
	}
	return out
}

func (r *recordingSink) count() int {
	r.locker.Lock()
	defer r.locker.Unlock()
	return len(r.instructions)
}

// --- broadcast helpers ---

func findBroadcast(t *testing.T, instructions []Broadcast, event string) Broadcast {
	t.Helper()
	for _, b := range instructions {
		if b.Event == event {
			return b
		}
	}
	t.Fatalf("no %q broadcast among %d instructions", event, len(instructions))
	return Broadcast{}
}

func hasEvent(instructions []Broadcast, event string) bool {
	for _, b := range instructions {
		if b.Event == event {
			return true
		}
	}
	return false
}
