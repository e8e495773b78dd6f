package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}
	return path
}

func TestNewManager(t *testing.T) {
	manager := NewManager()
	if manager == nil {
		t.Fatal("NewManager() returned nil")
	}
	if manager.v == nil {
		t.Fatal("NewManager() created manager with nil viper instance")
	}
}

func TestManager_Resolve_Defaults(t *testing.T) {
	manager := NewManager()
	if err := manager.Load("", true, t.TempDir()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	settings, err := manager.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if settings.AppBasePath != "" {
		t.Errorf("Expected AppBasePath to be empty, got %q", settings.AppBasePath)
	}
	if settings.AppName != "" {
		t.Errorf("Expected AppName to be empty, got %q", settings.AppName)
	}
	if settings.Source != "" {
		t.Errorf("Expected Source to be empty, got %q", settings.Source)
	}
	if settings.Target != "" {
		t.Errorf("Expected Target to be empty, got %q", settings.Target)
	}
	if settings.IgnoreIndexTSX {
		t.Error("Expected IgnoreIndexTSX to be false by default")
	}
}

func TestManager_Load_ExplicitFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, "deploy.conf", `[DEFAULT]
app_base_path = "/user/repo/"
app_name = my-app
source = './exported'
ignore_index_tsx = yes
`)

	manager := NewManager()
	if err := manager.Load(configPath, false, tmpDir); err != nil {
		t.Fatalf("Load(%s) failed: %v", configPath, err)
	}

	settings, err := manager.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if settings.AppBasePath != "/user/repo/" {
		t.Errorf("Expected AppBasePath to be '/user/repo/', got %q", settings.AppBasePath)
	}
	if settings.AppName != "my-app" {
		t.Errorf("Expected AppName to be 'my-app', got %q", settings.AppName)
	}
	if settings.Source != "./exported" {
		t.Errorf("Expected Source to be './exported', got %q", settings.Source)
	}
	if !settings.IgnoreIndexTSX {
		t.Error("Expected IgnoreIndexTSX to be true")
	}

	src := manager.Source()
	if src.Loaded != configPath {
		t.Errorf("Expected Loaded to be %q, got %q", configPath, src.Loaded)
	}
	if src.Default {
		t.Error("Expected Default to be false for an explicit path")
	}
}

func TestManager_Load_ExplicitMissing(t *testing.T) {
	manager := NewManager()
	missing := filepath.Join(t.TempDir(), "nope.conf")

	err := manager.Load(missing, false, t.TempDir())
	if err == nil {
		t.Fatal("Expected error for missing explicit config file, got nil")
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("Expected 'config file not found' error, got %v", err)
	}
}

func TestManager_Load_DefaultDiscovery(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, DefaultConfigName, `[DEFAULT]
app_name = discovered
`)

	manager := NewManager()
	if err := manager.Load("", false, tmpDir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	settings, err := manager.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if settings.AppName != "discovered" {
		t.Errorf("Expected AppName to be 'discovered', got %q", settings.AppName)
	}

	src := manager.Source()
	if !src.Default {
		t.Error("Expected Default to be true for discovered config")
	}
	if src.Loaded != filepath.Join(tmpDir, DefaultConfigName) {
		t.Errorf("Expected Loaded to be the discovered path, got %q", src.Loaded)
	}
}

func TestManager_Load_DefaultAbsent(t *testing.T) {
	manager := NewManager()
	if err := manager.Load("", false, t.TempDir()); err != nil {
		t.Fatalf("An absent default config must not be an error, got: %v", err)
	}

	if src := manager.Source(); src.Loaded != "" {
		t.Errorf("Expected no loaded config, got %q", src.Loaded)
	}
}

func TestManager_Load_SkipDefault(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, DefaultConfigName, `[DEFAULT]
app_name = should-not-load
`)

	manager := NewManager()
	if err := manager.Load("", true, tmpDir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	settings, err := manager.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if settings.AppName != "" {
		t.Errorf("Expected AppName to be empty with skipDefault, got %q", settings.AppName)
	}
}

func TestManager_Load_ExplicitReplacesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, DefaultConfigName, `[DEFAULT]
app_name = from-default
app_base_path = /default/
`)
	explicit := writeConfig(t, tmpDir, "explicit.conf", `[DEFAULT]
app_name = from-explicit
`)

	manager := NewManager()
	if err := manager.Load(explicit, false, tmpDir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	settings, err := manager.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if settings.AppName != "from-explicit" {
		t.Errorf("Expected AppName to be 'from-explicit', got %q", settings.AppName)
	}
	// The discovered default contributes nothing once an explicit file is given.
	if settings.AppBasePath != "" {
		t.Errorf("Expected AppBasePath to be empty, got %q", settings.AppBasePath)
	}
}

func TestManager_FlagPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, "deploy.conf", `[DEFAULT]
app_base_path = /from/config/
app_name = config-name
`)

	manager := NewManager()
	if err := manager.Load(configPath, false, tmpDir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	manager.SetFlag("app_base_path", "/from/flag/")
	manager.SetFlag("app_name", "") // unset flags never override

	settings, err := manager.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if settings.AppBasePath != "/from/flag/" {
		t.Errorf("Expected flag to win, got %q", settings.AppBasePath)
	}
	if settings.AppName != "config-name" {
		t.Errorf("Expected config value to survive empty flag, got %q", settings.AppName)
	}
}

func TestManager_EnvPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, "deploy.conf", `[DEFAULT]
app_name = from-config
`)
	t.Setenv("REACTDEPLOY_APP_NAME", "from-env")

	manager := NewManager()
	if err := manager.Load(configPath, false, tmpDir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	settings, err := manager.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if settings.AppName != "from-env" {
		t.Errorf("Expected environment to beat config file, got %q", settings.AppName)
	}

	// An explicit flag still beats the environment.
	manager.SetFlag("app_name", "from-flag")
	settings, err = manager.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if settings.AppName != "from-flag" {
		t.Errorf("Expected flag to beat environment, got %q", settings.AppName)
	}
}

func TestManager_QuoteStripping(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, "deploy.conf", `[DEFAULT]
source = "/quoted/double"
target = '/quoted/single'
app_base_path = "/mismatched/'
`)

	manager := NewManager()
	if err := manager.Load(configPath, false, tmpDir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	manager.SetFlag("app_name", `"/flag/quoted"`)

	settings, err := manager.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if settings.Source != "/quoted/double" {
		t.Errorf("Expected double quotes stripped, got %q", settings.Source)
	}
	if settings.Target != "/quoted/single" {
		t.Errorf("Expected single quotes stripped, got %q", settings.Target)
	}
	if settings.AppBasePath != `"/mismatched/'` {
		t.Errorf("Expected mismatched quotes preserved, got %q", settings.AppBasePath)
	}
	if settings.AppName != "/flag/quoted" {
		t.Errorf("Expected flag value quote-stripped, got %q", settings.AppName)
	}
}

func TestManager_UnrecognizedKeysIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, tmpDir, "deploy.conf", `[DEFAULT]
app_name = real
App_Name = wrong-case
mystery_key = whatever
`)

	manager := NewManager()
	if err := manager.Load(configPath, false, tmpDir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	settings, err := manager.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if settings.AppName != "real" {
		t.Errorf("Expected AppName to be 'real', got %q", settings.AppName)
	}
	if manager.InFile("mystery_key") {
		t.Error("Expected unrecognized key to be ignored")
	}
}

func TestManager_InFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, DefaultConfigName, `[DEFAULT]
source = ./here
`)

	manager := NewManager()
	if err := manager.Load("", false, tmpDir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !manager.InFile("source") {
		t.Error("Expected InFile('source') to be true")
	}
	if manager.InFile("target") {
		t.Error("Expected InFile('target') to be false")
	}

	// Without a loaded file nothing is InFile.
	empty := NewManager()
	if err := empty.Load("", false, t.TempDir()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if empty.InFile("source") {
		t.Error("Expected InFile to be false when no file was loaded")
	}
}
