package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterLookup(t *testing.T) {
	registry := NewRegistry()

	_, ok := registry.Lookup("redis")
	assert.False(t, ok, "lookup must not create entries")

	first := Wrap(fakeClient{}, nil)
	registry.Register("redis", first)

	got, ok := registry.Lookup("redis")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestRegistry_LastWriterWins(t *testing.T) {
	registry := NewRegistry()

	first := Wrap(fakeClient{}, nil)
	second := Wrap(fakeClient{}, nil)

	registry.Register("cache", first)
	registry.Register("cache", second)

	got, ok := registry.Lookup("cache")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.NotSame(t, first, got)
}

func TestRegistry_IndependentKeys(t *testing.T) {
	registry := NewRegistry()

	sessions := Wrap(fakeClient{}, nil)
	cache := Wrap(fakeClient{}, nil)

	registry.Register("sessions", sessions)
	registry.Register("cache", cache)

	got, ok := registry.Lookup("sessions")
	require.True(t, ok)
	assert.Same(t, sessions, got)

	got, ok = registry.Lookup("cache")
	require.True(t, ok)
	assert.Same(t, cache, got)
}
