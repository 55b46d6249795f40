// Package auth provides token providers for authenticated artifact
// stores. Tokens are personal access tokens read from the config store;
// OAuth flows are out of scope.
package auth

import (
	"context"
	"fmt"

	"github.com/trovelabs/trove-cli/internal/core/domain"
	"github.com/trovelabs/trove-cli/internal/core/ports/driven"
)

// Ensure ConfigTokenProvider implements the interface.
var _ driven.TokenProvider = (*ConfigTokenProvider)(nil)

// ConfigTokenProvider reads a static access token from the config store.
type ConfigTokenProvider struct {
	cfg driven.ConfigStore
	key string
}

// NewConfigTokenProvider creates a provider reading the given config key.
func NewConfigTokenProvider(cfg driven.ConfigStore, key string) *ConfigTokenProvider {
	return &ConfigTokenProvider{cfg: cfg, key: key}
}

// GetToken returns the configured token.
// Returns domain.ErrAuthRequired if the key is unset or empty.
func (p *ConfigTokenProvider) GetToken(_ context.Context) (string, error) {
	token := p.cfg.GetString(p.key)
	if token == "" {
		return "", fmt.Errorf("config key %q is not set: %w", p.key, domain.ErrAuthRequired)
	}
	return token, nil
}

// StaticTokenProvider returns a fixed token. Useful for testing.
type StaticTokenProvider string

// GetToken returns the static token.
func (p StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p == "" {
		return "", domain.ErrAuthRequired
	}
	return string(p), nil
}
