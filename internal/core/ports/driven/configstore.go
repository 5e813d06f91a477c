package driven

// ConfigStore holds settings as dot-notation keys ("output.format").
// Values are strings or bools; a missing or mistyped key reads as the
// zero value, and the settings service substitutes its defaults.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "".
	GetString(key string) string

	// GetBool returns the value as a bool, or false.
	GetBool(key string) bool

	// Set stores a value. File-backed stores persist it before returning.
	Set(key string, value any) error

	// Save writes all values to storage.
	Save() error

	// Load replaces all values with what storage holds.
	Load() error

	// Path returns where values are stored.
	Path() string
}
