package orchestrator

import (
	"fmt"
	"io"

	"reactdeploy-cli/internal/interfaces"
)

// All user-visible narration goes through these helpers so every line ends
// up on the injected writer; nothing in this package writes to the process
// streams directly.

// printf writes one user-facing progress line
func (d *Dispatcher) printf(format string, args ...interface{}) {
	fmt.Fprintf(d.out, format+"\n", args...)
}

// verbosef writes a progress line only when verbose narration is enabled
func (d *Dispatcher) verbosef(format string, args ...interface{}) {
	if d.verbose {
		d.printf(format, args...)
	}
}

// completeExternal maps the runner's result for an action's terminal command
// onto the action's outcome. operation names the step in user messages
// ("Build", "Deployment", ...); tool and displayName describe the delegated
// executable. A non-zero exit propagates the child's code; a missing
// executable is fatal with code 1.
func completeExternal(out io.Writer, dryRun bool, res interfaces.CommandResult, operation, tool, displayName string) error {
	switch res.State {
	case interfaces.CommandNotFound:
		return NewExecutableNotFound(tool, displayName, res.Err)
	case interfaces.CommandExited:
		return NewCommandFailed(operation, res.Code, res.Err)
	}
	if dryRun {
		fmt.Fprintf(out, "[DRY RUN] %s would be completed\n", operation)
	} else {
		fmt.Fprintf(out, "%s completed successfully.\n", operation)
	}
	return nil
}
