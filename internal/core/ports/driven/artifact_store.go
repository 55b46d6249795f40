package driven

import "context"

// ArtifactStore downloads dataset bytes for one URI scheme.
// Each store type (local, github, dropbox, etc.) implements this interface.
type ArtifactStore interface {
	// Name returns the store implementation name, e.g. "LocalArtifactStore".
	// Dataset source type names are derived from it.
	Name() string

	// Download materializes the artifact at uri under destDir and returns
	// the local path. If destDir is empty the store chooses a destination:
	// a fresh uniquely-named directory, or the existing local path when
	// the reference already lives on this filesystem.
	Download(ctx context.Context, uri string, destDir string) (string, error)
}

// StoreEntry pairs a URI scheme with the store that serves it.
type StoreEntry struct {
	// Scheme is the normalized lowercase scheme key. The empty scheme and
	// "file" both denote the local store.
	Scheme string

	// Store is the artifact store registered for the scheme.
	Store ArtifactStore
}

// StoreDirectory lists the registered artifact stores in registration order.
// The directory is populated once at startup and read-only afterwards.
type StoreDirectory interface {
	// Stores returns the (scheme, store) pairs in registration order.
	Stores() []StoreEntry

	// Get returns the store registered for a scheme.
	Get(scheme string) (ArtifactStore, bool)
}
