package interfaces

// CommandState classifies the outcome of an external command invocation
type CommandState int

const (
	// CommandOK means the command ran and exited zero (or was skipped by dry-run)
	CommandOK CommandState = iota

	// CommandNotFound means the executable could not be found on PATH
	CommandNotFound

	// CommandExited means the command ran and exited non-zero
	CommandExited
)

// String returns a human-readable name for the command state
func (s CommandState) String() string {
	switch s {
	case CommandOK:
		return "ok"
	case CommandNotFound:
		return "not-found"
	case CommandExited:
		return "exited"
	default:
		return "unknown"
	}
}

// CommandResult reports how an external command invocation ended
type CommandResult struct {
	State CommandState
	Code  int
	Err   error
}

// CommandRunner executes external commands on behalf of action handlers
type CommandRunner interface {
	// Run executes argv[0] with the remaining arguments, streaming output
	// through, and reports the outcome; dry-run reports without spawning
	Run(argv []string) CommandResult
}
