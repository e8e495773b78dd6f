package process

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reactdeploy-cli/internal/interfaces"
)

func TestRunner_DryRunNeverSpawns(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(true, false, "", &out)

	// An executable that cannot exist: spawning it would not return OK.
	res := r.Run([]string{"definitely-not-a-real-command-xyz", "--flag"})

	if res.State != interfaces.CommandOK {
		t.Errorf("Dry-run state = %v, expected CommandOK", res.State)
	}
	if res.Code != 0 {
		t.Errorf("Dry-run code = %d, expected 0", res.Code)
	}
	want := "[DRY RUN] Would execute: definitely-not-a-real-command-xyz --flag\n"
	if out.String() != want {
		t.Errorf("Dry-run output = %q, expected %q", out.String(), want)
	}
}

func TestRunner_Success(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(false, false, "", &out)

	res := r.Run([]string{"sh", "-c", "echo hello"})

	if res.State != interfaces.CommandOK {
		t.Fatalf("State = %v, expected CommandOK (err: %v)", res.State, res.Err)
	}
	if !strings.Contains(out.String(), "hello") {
		t.Errorf("Child stdout not streamed, got %q", out.String())
	}
}

func TestRunner_ExitCodePropagates(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(false, false, "", &out)

	res := r.Run([]string{"sh", "-c", "exit 3"})

	if res.State != interfaces.CommandExited {
		t.Errorf("State = %v, expected CommandExited", res.State)
	}
	if res.Code != 3 {
		t.Errorf("Code = %d, expected 3", res.Code)
	}
	if res.Err == nil {
		t.Error("Expected the underlying error to be attached")
	}
}

func TestRunner_ExecutableNotFound(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(false, false, "", &out)

	res := r.Run([]string{"definitely-not-a-real-command-xyz"})

	if res.State != interfaces.CommandNotFound {
		t.Errorf("State = %v, expected CommandNotFound", res.State)
	}
	if res.Code != 1 {
		t.Errorf("Code = %d, expected 1", res.Code)
	}
}

func TestRunner_Verbose(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(false, true, "", &out)

	res := r.Run([]string{"sh", "-c", "exit 0"})

	if res.State != interfaces.CommandOK {
		t.Fatalf("State = %v, expected CommandOK", res.State)
	}
	if !strings.Contains(out.String(), "Executing: sh -c exit 0") {
		t.Errorf("Expected verbose command line, got %q", out.String())
	}
}

func TestRunner_Dir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "marker.txt"), []byte("inside"), 0644); err != nil {
		t.Fatalf("Failed to create fixture: %v", err)
	}

	var out bytes.Buffer
	r := NewRunner(false, false, tmpDir, &out)

	res := r.Run([]string{"sh", "-c", "cat marker.txt"})

	if res.State != interfaces.CommandOK {
		t.Fatalf("State = %v, expected CommandOK (err: %v)", res.State, res.Err)
	}
	if !strings.Contains(out.String(), "inside") {
		t.Errorf("Command did not run in %s, got %q", tmpDir, out.String())
	}
}

func TestRunner_EmptyArgv(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(false, false, "", &out)

	res := r.Run(nil)

	if res.State != interfaces.CommandExited {
		t.Errorf("State = %v, expected CommandExited", res.State)
	}
	if res.Code != 1 {
		t.Errorf("Code = %d, expected 1", res.Code)
	}
}
