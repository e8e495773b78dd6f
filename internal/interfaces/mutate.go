package interfaces

import "errors"

// Guard failures implementations report, wrapped with the offending path.
var (
	ErrExists    = errors.New("file already exists")
	ErrNotExists = errors.New("file does not exist")
)

// FileMutator performs guarded file creation and replacement
type FileMutator interface {
	// CreateNew writes content to a path that must not already exist;
	// an existing target reports ErrExists
	CreateNew(path string, content []byte) error

	// ReplaceExisting overwrites a path that must already exist, first
	// copying its current bytes to backupPath when one is given; a
	// missing target reports ErrNotExists
	ReplaceExisting(path string, content []byte, backupPath string) error
}
