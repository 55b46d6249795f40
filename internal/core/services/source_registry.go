package services

import (
	"fmt"
	"sync"

	"github.com/trovelabs/trove-cli/internal/core/domain"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// SourceRegistry is the dataset source resolution table: an ordered
// collection of source types consulted at resolution time. Order is
// insertion order and is significant — the first type whose predicate
// matches wins, so earlier entries shadow later ones.
//
// Registration happens once at startup; afterwards the table is
// read-only and safe for concurrent resolution.
type SourceRegistry struct {
	mu      sync.RWMutex
	ordered []driven.SourceType
	byName  map[string]driven.SourceType
	schemes map[string]bool
}

// NewSourceRegistry creates an empty resolution table.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		byName:  make(map[string]driven.SourceType),
		schemes: make(map[string]bool),
	}
}

// Register appends a source type to the table.
// Returns domain.ErrAlreadyExists if a type with the same name is
// already registered; the table is left unchanged in that case.
func (r *SourceRegistry) Register(st driven.SourceType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[st.Name()]; ok {
		return fmt.Errorf("dataset source type %q: %w", st.Name(), domain.ErrAlreadyExists)
	}

	r.ordered = append(r.ordered, st)
	r.byName[st.Name()] = st
	r.schemes[st.Scheme()] = true
	return nil
}

// HasScheme reports whether any registered source type serves the scheme.
// The empty scheme and "file" are the same claim.
func (r *SourceRegistry) HasScheme(scheme string) bool {
	if scheme == "" {
		scheme = "file"
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemes[scheme]
}

// Get returns the source type with the given name.
func (r *SourceRegistry) Get(name string) (driven.SourceType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("dataset source type %q: %w", name, domain.ErrUnsupportedType)
	}
	return st, nil
}

// List returns the registered source types in resolution order.
func (r *SourceRegistry) List() []driven.SourceType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]driven.SourceType, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Resolve walks the table in registration order and binds the raw
// reference to the first source type that recognises it.
// Returns domain.ErrNoMatchingSource if no type matches. A non-match is
// the normal "try the next entry" signal, never an error in itself.
func (r *SourceRegistry) Resolve(raw string) (*domain.DatasetSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, st := range r.ordered {
		if st.CanResolve(raw) {
			return st.Resolve(raw), nil
		}
	}
	return nil, fmt.Errorf("reference %q: %w", raw, domain.ErrNoMatchingSource)
}
