package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateAndGet(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()

	first := registry.Create()
	second := registry.Create()

	require.NotEmpty(t, first.ID())
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, 2, registry.Count())

	got, ok := registry.Get(first.ID())
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, PhaseLobby, got.Phase())
	assert.Empty(t, got.Players())
}

func TestRegistry_GetUnknown(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	_, ok := registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_RemoveIsIdempotent(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	session := registry.Create()

	registry.Remove(session.ID())
	_, ok := registry.Get(session.ID())
	assert.False(t, ok)

	// Removing again must not panic or affect other sessions.
	other := registry.Create()
	registry.Remove(session.ID())
	_, ok = registry.Get(other.ID())
	assert.True(t, ok)
}
