package redis

import "sync"

// Registry stores initialized clients under an extension key, usually the
// lowercased configuration prefix. Registering under an existing key
// replaces the previous client without closing it; when two goroutines
// initialize the same key concurrently, the last writer wins.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*RedisClient
}

// DefaultRegistry is the process-wide registry used when no explicit one is
// supplied.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*RedisClient)}
}

// Register stores a client under the given key, replacing any previous one.
func (r *Registry) Register(key string, client *RedisClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[key] = client
}

// Lookup returns the client registered under the given key. There is no
// implicit creation on read.
func (r *Registry) Lookup(key string) (*RedisClient, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[key]
	return client, ok
}
