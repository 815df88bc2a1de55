package driven

// ConfigStore holds report settings as dot-separated keys
// (e.g. "company.name"). Implementations handle persistence.
type ConfigStore interface {
	// Get retrieves a value by key and reports whether it exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value.
	// Returns empty string if the key doesn't exist or isn't a string.
	GetString(key string) string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Unset removes a key so its default applies again.
	Unset(key string) error

	// Keys returns the stored keys in sorted order.
	Keys() []string

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
