// Package process runs the external tools the deploy actions shell out to
// (vite, npm, rsync). Commands inherit the tool's stdin and stderr and stream
// stdout through the runner's writer; there is no timeout.
package process

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"reactdeploy-cli/internal/interfaces"
)

// Runner implements the CommandRunner interface. Dir, when non-empty, is the
// working directory commands run in.
type Runner struct {
	DryRun  bool
	Verbose bool
	Dir     string
	Out     io.Writer
}

// NewRunner creates a runner
func NewRunner(dryRun, verbose bool, dir string, out io.Writer) *Runner {
	return &Runner{DryRun: dryRun, Verbose: verbose, Dir: dir, Out: out}
}

// Run executes argv and classifies the outcome. Dry-run only reports the
// command line; the process is never spawned.
func (r *Runner) Run(argv []string) interfaces.CommandResult {
	if len(argv) == 0 {
		return interfaces.CommandResult{State: interfaces.CommandExited, Code: 1, Err: errors.New("empty command")}
	}
	command := strings.Join(argv, " ")

	if r.DryRun {
		fmt.Fprintf(r.Out, "[DRY RUN] Would execute: %s\n", command)
		return interfaces.CommandResult{State: interfaces.CommandOK}
	}
	if r.Verbose {
		fmt.Fprintf(r.Out, "Executing: %s\n", command)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Out
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return interfaces.CommandResult{State: interfaces.CommandOK}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return interfaces.CommandResult{State: interfaces.CommandExited, Code: exitErr.ExitCode(), Err: err}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return interfaces.CommandResult{State: interfaces.CommandNotFound, Code: 1, Err: err}
	}
	return interfaces.CommandResult{State: interfaces.CommandExited, Code: 1, Err: err}
}
