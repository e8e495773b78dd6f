package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"
)

// requireMarker checks that the marker file name exists in dir. A marker's
// presence certifies that the directory is a valid target for the action;
// absence is fatal with the action-specific hint appended.
func requireMarker(dir, name, hint string) error {
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		return NewPreconditionFailed(fmt.Sprintf("%s not found. %s", name, hint))
	}
	return nil
}

// requireAsset checks that a template or example file shipped alongside the
// tool is present. Its absence is fatal and deliberately distinct in message
// from a missing project marker.
func requireAsset(path string) error {
	if _, err := os.Stat(path); err != nil {
		return NewPreconditionFailed(fmt.Sprintf("%s not found. This action requires the template file.", path))
	}
	return nil
}
