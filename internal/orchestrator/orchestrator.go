// Package orchestrator drives one deploy action from selection to terminal
// state. The dispatcher resolves the requested action and its parameters,
// then composes the precondition checks, guarded file mutations, and
// external commands that make up the action's handler.
package orchestrator

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"reactdeploy-cli/internal/interfaces"
)

// Phase is the dispatcher's position in its state machine. Phases only move
// forward; one invocation processes exactly one action to a terminal state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActionSelected
	PhaseParamsResolved
	PhaseExecuting
	PhaseSucceeded
	PhaseFailed
)

// String returns a human-readable name for the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActionSelected:
		return "action-selected"
	case PhaseParamsResolved:
		return "params-resolved"
	case PhaseExecuting:
		return "executing"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ExecutionContext is the resolved state for one run. It is constructed once
// parameter resolution finishes and never mutated afterwards; handlers read
// all run state from it instead of from ambient process state.
type ExecutionContext struct {
	Action      Action
	BasePath    string
	AppName     string
	WorkDir     string
	TemplateDir string
	Verbose     bool
	DryRun      bool
}

// Deps carries the collaborators and run modes a Dispatcher is built from.
type Deps struct {
	Settings    *interfaces.Settings
	Asker       interfaces.Asker
	Files       interfaces.FileMutator
	Runner      interfaces.CommandRunner
	Out         io.Writer
	WorkDir     string
	TemplateDir string
	Verbose     bool
	DryRun      bool
}

// Dispatcher coordinates the components that execute a single deploy action
type Dispatcher struct {
	settings    *interfaces.Settings
	asker       interfaces.Asker
	files       interfaces.FileMutator
	runner      interfaces.CommandRunner
	out         io.Writer
	workDir     string
	templateDir string
	verbose     bool
	dryRun      bool

	phase Phase
	ctx   *ExecutionContext
}

// NewDispatcher creates a dispatcher in the idle phase
func NewDispatcher(deps Deps) *Dispatcher {
	return &Dispatcher{
		settings:    deps.Settings,
		asker:       deps.Asker,
		files:       deps.Files,
		runner:      deps.Runner,
		out:         deps.Out,
		workDir:     deps.WorkDir,
		templateDir: deps.TemplateDir,
		verbose:     deps.Verbose,
		dryRun:      deps.DryRun,
		phase:       PhaseIdle,
	}
}

// Phase reports the dispatcher's current phase
func (d *Dispatcher) Phase() Phase {
	return d.phase
}

// Context returns the resolved execution context, nil until parameters have
// been resolved
func (d *Dispatcher) Context() *ExecutionContext {
	return d.ctx
}

// Run processes exactly one action to a terminal state. actionName selects
// the action directly; when empty, an interactive menu is presented. A
// declined destructive confirmation ends in PhaseFailed but returns nil:
// cancelling is not an error and the process exits 0.
func (d *Dispatcher) Run(actionName string) error {
	action, err := d.selectAction(actionName)
	if err != nil {
		d.phase = PhaseFailed
		return err
	}
	d.phase = PhaseActionSelected

	ctx, err := d.resolveParams(action)
	if err != nil {
		d.phase = PhaseFailed
		return err
	}
	d.ctx = ctx
	d.phase = PhaseParamsResolved

	d.phase = PhaseExecuting
	if err := action.spec().run(d); err != nil {
		d.phase = PhaseFailed
		if errors.Is(err, ErrUserDeclined) {
			return nil
		}
		return err
	}
	d.phase = PhaseSucceeded
	return nil
}

// selectAction resolves the action from explicit input, or presents the
// numbered menu and re-prompts until the answer is a valid 1-based choice.
// An interrupted read is fatal.
func (d *Dispatcher) selectAction(actionName string) (Action, error) {
	if actionName != "" {
		action, ok := ActionFromName(actionName)
		if !ok {
			return 0, fmt.Errorf("unknown action %q (valid actions: %s)", actionName, ValidActions())
		}
		return action, nil
	}

	names := ActionNames()
	d.printf("Please select an action:")
	for i, name := range names {
		d.printf("%d. %s", i+1, name)
	}

	for {
		answer, err := d.asker.AskValue("Enter the number of your choice:")
		if err != nil {
			return 0, NewInterrupted(err)
		}
		choice, err := strconv.Atoi(answer)
		if err != nil {
			d.printf("Please enter a valid number")
			continue
		}
		if choice < 1 || choice > len(names) {
			d.printf("Please enter a number between 1 and %d", len(names))
			continue
		}
		return Action(choice - 1), nil
	}
}

// resolveParams materializes the execution context for the selected action.
// Each required parameter resolves through the precedence chain: explicit
// flag and config values arrive pre-merged in Settings; a prompt is the last
// resort. Parameter prompts still occur under dry-run; only destructive
// confirmations are suppressed.
func (d *Dispatcher) resolveParams(action Action) (*ExecutionContext, error) {
	ctx := &ExecutionContext{
		Action:      action,
		WorkDir:     d.workDir,
		TemplateDir: d.templateDir,
		Verbose:     d.verbose,
		DryRun:      d.dryRun,
	}

	spec := action.spec()
	if spec.needsBasePath {
		value := d.settings.AppBasePath
		if value == "" {
			answer, err := d.asker.AskValue("Enter the app base path (e.g., /user/repo/):")
			if err != nil {
				return nil, NewInterrupted(err)
			}
			value = answer
		}
		if value == "" {
			return nil, NewPreconditionFailed("app base path is required")
		}
		ctx.BasePath = value
	}

	if spec.needsAppName {
		value := d.settings.AppName
		if value == "" {
			fallback := filepath.Base(d.workDir)
			answer, err := d.asker.AskValue(fmt.Sprintf("Enter the app name (default: %s):", fallback))
			if err != nil {
				return nil, NewInterrupted(err)
			}
			if answer == "" {
				answer = fallback
			}
			value = answer
		}
		ctx.AppName = value
	}

	return ctx, nil
}

// confirm asks for a destructive-action confirmation, mapping an interrupted
// read to a fatal error
func (d *Dispatcher) confirm(message string) (bool, error) {
	ok, err := d.asker.Confirm(message)
	if err != nil {
		return false, NewInterrupted(err)
	}
	return ok, nil
}
