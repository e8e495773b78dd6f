package orchestrator

import (
	"errors"
	"fmt"
)

// Error kinds for the failure categories an action run can end in. Every
// fatal failure surfaces as exactly one human-readable line naming the
// offending path or command.
var (
	ErrConfigNotFound     = errors.New("config not found")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrAlreadyExists      = errors.New("already exists")
	ErrTargetMissing      = errors.New("target missing")
	ErrExecutableNotFound = errors.New("executable not found")
	ErrCommandFailed      = errors.New("command failed")
	ErrUserDeclined       = errors.New("user declined")
	ErrInterrupted        = errors.New("input interrupted")
)

// DeployError is a structured error carrying the failure kind, the single
// user-facing line, and the exit code to propagate when it is not the
// default of 1.
type DeployError struct {
	Kind    error
	Message string
	Code    int
	Cause   error
}

func (e *DeployError) Error() string {
	return e.Message
}

func (e *DeployError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's kind, so callers can use
// errors.Is(err, ErrAlreadyExists) and similar checks.
func (e *DeployError) Is(target error) bool {
	return target == e.Kind
}

// Error constructors

// NewConfigNotFound reports an explicitly requested config file that could
// not be read. An absent default config is never an error.
func NewConfigNotFound(path string, cause error) *DeployError {
	return &DeployError{
		Kind:    ErrConfigNotFound,
		Message: fmt.Sprintf("Config file not found: %s", path),
		Cause:   cause,
	}
}

// NewPreconditionFailed reports a structural check that makes the run
// meaningless, such as a missing marker file or a missing required value.
func NewPreconditionFailed(message string) *DeployError {
	return &DeployError{
		Kind:    ErrPreconditionFailed,
		Message: message,
	}
}

// NewAlreadyExists reports a guarded create whose target is already present.
func NewAlreadyExists(message string, cause error) *DeployError {
	return &DeployError{
		Kind:    ErrAlreadyExists,
		Message: message,
		Cause:   cause,
	}
}

// NewTargetMissing reports a guarded replace whose target does not exist.
func NewTargetMissing(message string, cause error) *DeployError {
	return &DeployError{
		Kind:    ErrTargetMissing,
		Message: message,
		Cause:   cause,
	}
}

// NewExecutableNotFound reports a delegated tool that is not on the search
// path. tool is the command name, displayName the way the tool's own docs
// spell it.
func NewExecutableNotFound(tool, displayName string, cause error) *DeployError {
	return &DeployError{
		Kind:    ErrExecutableNotFound,
		Message: fmt.Sprintf("'%s' command not found. Make sure %s is installed.", tool, displayName),
		Cause:   cause,
	}
}

// NewCommandFailed reports a delegated tool that ran and exited non-zero.
// The child's exit code becomes the process exit code.
func NewCommandFailed(operation string, code int, cause error) *DeployError {
	return &DeployError{
		Kind:    ErrCommandFailed,
		Message: fmt.Sprintf("%s failed with exit code %d.", operation, code),
		Code:    code,
		Cause:   cause,
	}
}

// NewInterrupted reports an interactive read that was interrupted. Whatever
// already committed stays committed.
func NewInterrupted(cause error) *DeployError {
	return &DeployError{
		Kind:    ErrInterrupted,
		Message: "input interrupted",
		Cause:   cause,
	}
}

// errDeclined marks a declined destructive confirmation inside an action
// handler. The dispatcher swallows it: declining is a cancellation, not an
// error, and the process exits 0.
var errDeclined = &DeployError{Kind: ErrUserDeclined, Message: "Update cancelled."}

// ExitCode maps an error returned by a run to the process exit status: nil
// is 0, a failed external command propagates its own exit code, and every
// other failure is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var derr *DeployError
	if errors.As(err, &derr) && derr.Code != 0 {
		return derr.Code
	}
	return 1
}
