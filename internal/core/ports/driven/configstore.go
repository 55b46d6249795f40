package driven

// ConfigStore persists user configuration: tokens, the tracking server
// URL, and the vault mount point.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value, or "" if unset.
	GetString(key string) string

	// Set stores a configuration value and persists immediately.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error
}
