package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"reactdeploy-cli/internal/interfaces"
)

// DefaultConfigName is the config file discovered in the working directory
// when no explicit --config path is given.
const DefaultConfigName = "config-deploy.conf"

// recognizedKeys are the settings keys a config file may contribute. Keys are
// matched case-sensitively; anything else in the file is ignored.
var recognizedKeys = []string{"app_base_path", "app_name", "source", "target", "ignore_index_tsx"}

// Source describes where the file layer of the configuration came from.
type Source struct {
	Probed  string // path that was checked
	Loaded  string // path actually read, empty if none
	Default bool   // true when the probe was the discovered default
}

// Manager implements the ConfigManager interface on top of viper
type Manager struct {
	v      *viper.Viper
	flags  map[string]string // explicit command-line values, highest precedence
	source Source
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	v := viper.New()
	v.SetEnvPrefix("REACTDEPLOY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults(v)

	return &Manager{
		v:     v,
		flags: make(map[string]string),
	}
}

// setDefaults sets the built-in default values. Empty strings mean the value
// must come from a higher layer or an interactive prompt.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_base_path", "")
	v.SetDefault("app_name", "")
	v.SetDefault("source", "")
	v.SetDefault("target", "")
	v.SetDefault("ignore_index_tsx", "false")
}

// Load reads the configuration file layer. An explicit path must exist and
// fully replaces default discovery; otherwise the default config is probed in
// discoveryDir unless skipDefault is set. An absent or unreadable default
// contributes nothing and is never an error.
func (m *Manager) Load(explicitPath string, skipDefault bool, discoveryDir string) error {
	m.source = Source{}

	if explicitPath != "" {
		path := expandPath(explicitPath)
		m.source.Probed = path
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config file not found: %s", explicitPath)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config file not readable: %s: %w", explicitPath, err)
		}
		if err := m.mergeRaw(string(raw)); err != nil {
			return fmt.Errorf("config file not usable: %s: %w", explicitPath, err)
		}
		m.source.Loaded = path
		return nil
	}

	if skipDefault {
		return nil
	}

	path := filepath.Join(discoveryDir, DefaultConfigName)
	m.source.Probed = path
	m.source.Default = true
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	if err := m.mergeRaw(string(raw)); err != nil {
		return nil
	}
	m.source.Loaded = path
	return nil
}

// mergeRaw parses INI text and merges the recognized keys into viper
func (m *Manager) mergeRaw(raw string) error {
	parsed := ParseINI(raw)
	data := make(map[string]interface{})
	for _, key := range recognizedKeys {
		if value, ok := parsed[key]; ok {
			data[key] = value
		}
	}
	return m.v.MergeConfigMap(data)
}

// Source reports which config file, if any, supplied the file layer
func (m *Manager) Source() Source {
	return m.source
}

// InFile reports whether the loaded config file itself supplied the key
func (m *Manager) InFile(key string) bool {
	return m.source.Loaded != "" && m.v.InConfig(key)
}

// SetFlag records an explicit command-line value for precedence resolution
func (m *Manager) SetFlag(key string, value string) {
	m.flags[key] = value
}

// Resolve applies precedence rules (flags > env > config > defaults)
func (m *Manager) Resolve() (*interfaces.Settings, error) {
	settings := m.settingsFromViper()

	// Apply flag overrides (highest precedence)
	m.applyFlagOverrides(settings)

	return settings, nil
}

// settingsFromViper materializes the env > config > defaults layers. Values
// are quote-stripped exactly once, here, so file and environment layers get
// the same treatment.
func (m *Manager) settingsFromViper() *interfaces.Settings {
	return &interfaces.Settings{
		AppBasePath:    StripQuotes(m.v.GetString("app_base_path")),
		AppName:        StripQuotes(m.v.GetString("app_name")),
		Source:         StripQuotes(m.v.GetString("source")),
		Target:         StripQuotes(m.v.GetString("target")),
		IgnoreIndexTSX: TruthyBool(m.v.GetString("ignore_index_tsx")),
	}
}

// applyFlagOverrides applies non-empty flag values over the settings
func (m *Manager) applyFlagOverrides(settings *interfaces.Settings) {
	if val, exists := m.flags["app_base_path"]; exists && val != "" {
		settings.AppBasePath = StripQuotes(val)
	}
	if val, exists := m.flags["app_name"]; exists && val != "" {
		settings.AppName = StripQuotes(val)
	}
	if val, exists := m.flags["source"]; exists && val != "" {
		settings.Source = StripQuotes(val)
	}
	if val, exists := m.flags["target"]; exists && val != "" {
		settings.Target = StripQuotes(val)
	}
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path // Return original path if we can't get home dir
	}

	return filepath.Join(homeDir, path[2:])
}
