package interfaces

// Settings holds the resolved configuration values. String fields are
// quote-stripped; absent keys resolve to zero values.
type Settings struct {
	AppBasePath    string
	AppName        string
	Source         string
	Target         string
	IgnoreIndexTSX bool
}

// ConfigManager handles configuration loading and precedence resolution
type ConfigManager interface {
	// Load loads the explicit config file, or discovers the default one in
	// discoveryDir unless skipDefault is set
	Load(explicitPath string, skipDefault bool, discoveryDir string) error

	// SetFlag records an explicit command-line value for a settings key
	SetFlag(key string, value string)

	// Resolve applies precedence rules (flags > env > config > defaults)
	Resolve() (*Settings, error)
}
