package artifacts

import (
	"fmt"
	"strings"
	"sync"

	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.StoreDirectory = (*Registry)(nil)

// Registry is the store directory: scheme -> artifact store, in
// registration order. It is populated once at startup and read-only
// afterwards; iteration order is the order stores were registered.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	stores map[string]driven.ArtifactStore
}

// NewRegistry creates an empty store directory.
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[string]driven.ArtifactStore),
	}
}

// Register adds a store for a scheme. Schemes are normalized to
// lowercase. Returns an error if the scheme is already registered.
func (r *Registry) Register(scheme string, store driven.ArtifactStore) error {
	scheme = strings.ToLower(scheme)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stores[scheme]; ok {
		return fmt.Errorf("scheme %q already has a registered store", scheme)
	}

	r.order = append(r.order, scheme)
	r.stores[scheme] = store
	return nil
}

// Get returns the store registered for a scheme.
func (r *Registry) Get(scheme string) (driven.ArtifactStore, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[strings.ToLower(scheme)]
	return store, ok
}

// Stores returns the (scheme, store) pairs in registration order.
func (r *Registry) Stores() []driven.StoreEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]driven.StoreEntry, 0, len(r.order))
	for _, scheme := range r.order {
		entries = append(entries, driven.StoreEntry{Scheme: scheme, Store: r.stores[scheme]})
	}
	return entries
}

// Schemes returns the registered schemes in registration order.
func (r *Registry) Schemes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schemes := make([]string, len(r.order))
	copy(schemes, r.order)
	return schemes
}
