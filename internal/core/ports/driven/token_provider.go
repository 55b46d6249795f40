package driven

import "context"

// TokenProvider supplies an access token for an authenticated store.
// Implementations may read from config, the environment, or a keychain.
type TokenProvider interface {
	// GetToken returns a valid access token.
	// Returns domain.ErrAuthRequired if no token is configured.
	GetToken(ctx context.Context) (string, error)
}
