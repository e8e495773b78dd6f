// Package safefile performs guarded file creation and replacement. Writes go
// through a temp file in the target directory followed by a rename, so a
// crash mid-write never leaves a partially written target behind.
package safefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"reactdeploy-cli/internal/interfaces"
)

// Mutator implements guarded file mutation. With DryRun set the guards still
// apply but nothing is written; narration of skipped work is the caller's job.
type Mutator struct {
	DryRun bool
}

// New creates a mutator
func New(dryRun bool) *Mutator {
	return &Mutator{DryRun: dryRun}
}

// CreateNew writes content to path, failing if path already exists
func (m *Mutator) CreateNew(path string, content []byte) error {
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("%s: %w", path, interfaces.ErrExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if m.DryRun {
		return nil
	}
	return writeAtomic(path, content)
}

// ReplaceExisting overwrites path, failing if path does not exist. When
// backupPath is non-empty the current content is copied there first; a backup
// failure aborts before the target is touched.
func (m *Mutator) ReplaceExisting(path string, content []byte, backupPath string) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, interfaces.ErrNotExists)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if m.DryRun {
		return nil
	}

	if backupPath != "" {
		original, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s for backup: %w", path, err)
		}
		if err := writeAtomic(backupPath, original); err != nil {
			return fmt.Errorf("back up %s to %s: %w", path, backupPath, err)
		}
	}
	return writeAtomic(path, content)
}

// writeAtomic writes content to a temp file in the target directory and
// renames it over path
func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}
	return nil
}
