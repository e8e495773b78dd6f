package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"reactdeploy-cli/internal/config"
)

func main() {
	fmt.Println("Testing ReactDeploy CLI Configuration System")
	fmt.Println("============================================")

	// Create a test config file
	dir, err := os.MkdirTemp("", "reactdeploy-config")
	if err != nil {
		log.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	configPath := filepath.Join(dir, "config-deploy.conf")
	testConfig := `[DEFAULT]
app_base_path = "/user/repo/"
app_name = "demo-app"
source = "/var/www/source"
target = '/var/www/target'
ignore_index_tsx = true
`

	err = os.WriteFile(configPath, []byte(testConfig), 0644)
	if err != nil {
		log.Fatalf("Failed to create test config: %v", err)
	}

	// Test 1: Load config from file
	fmt.Println("\n1. Testing config file loading:")
	manager := config.NewManager()
	if err := manager.Load(configPath, false, dir); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	settings, err := manager.Resolve()
	if err != nil {
		log.Fatalf("Failed to resolve config: %v", err)
	}

	fmt.Printf("   App Base Path: %s\n", settings.AppBasePath)
	fmt.Printf("   App Name: %s\n", settings.AppName)
	fmt.Printf("   Source (quotes stripped): %s\n", settings.Source)
	fmt.Printf("   Target (quotes stripped): %s\n", settings.Target)
	fmt.Printf("   Ignore index.tsx: %v\n", settings.IgnoreIndexTSX)

	// Test 2: Environment variable precedence
	fmt.Println("\n2. Testing environment variable precedence:")
	os.Setenv("REACTDEPLOY_APP_NAME", "env-app")
	defer os.Unsetenv("REACTDEPLOY_APP_NAME")

	manager2 := config.NewManager()
	if err := manager2.Load(configPath, false, dir); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	settings2, err := manager2.Resolve()
	if err != nil {
		log.Fatalf("Failed to resolve config: %v", err)
	}

	fmt.Printf("   App Name (env override): %s\n", settings2.AppName)
	fmt.Printf("   App Base Path (from config): %s\n", settings2.AppBasePath)

	// Test 3: Flag precedence
	fmt.Println("\n3. Testing flag precedence:")
	manager3 := config.NewManager()
	if err := manager3.Load(configPath, false, dir); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	manager3.SetFlag("app_name", "flag-app")
	manager3.SetFlag("app_base_path", "/flag/repo/")

	settings3, err := manager3.Resolve()
	if err != nil {
		log.Fatalf("Failed to resolve config: %v", err)
	}

	fmt.Printf("   App Name (flag override): %s\n", settings3.AppName)
	fmt.Printf("   App Base Path (flag override): %s\n", settings3.AppBasePath)
	fmt.Printf("   Source (from config): %s\n", settings3.Source)

	// Test 4: Default discovery with no file present
	fmt.Println("\n4. Testing absent default config:")
	emptyDir, err := os.MkdirTemp("", "reactdeploy-empty")
	if err != nil {
		log.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(emptyDir)

	manager4 := config.NewManager()
	if err := manager4.Load("", false, emptyDir); err != nil {
		fmt.Printf("   ✗ Absent default config should not be an error: %v\n", err)
	} else {
		fmt.Printf("   ✓ Absent default config contributes nothing\n")
	}

	// Test 5: Explicit config file that does not exist
	fmt.Println("\n5. Testing missing explicit config file:")
	manager5 := config.NewManager()
	err = manager5.Load(filepath.Join(emptyDir, "nope.conf"), false, emptyDir)
	if err != nil {
		fmt.Printf("   ✓ Missing explicit config correctly rejected: %v\n", err)
	} else {
		fmt.Printf("   ✗ Missing explicit config should have failed\n")
	}

	fmt.Println("\n✓ Configuration system test completed successfully!")
}
