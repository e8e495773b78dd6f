package orchestrator

import "strings"

// Action identifies one of the closed set of operations the tool performs.
// The zero value is the first menu entry; ordinal order is menu order.
type Action int

const (
	ActionAddConfigGHPages Action = iota
	ActionAddConfigBundle
	ActionBuildGHPages
	ActionDeployGHPages
	ActionGenerateBundle
	ActionUpdateIndexTSX
	ActionGenerateConfig
	ActionDeployNextGHPages
)

// actionSpec declares an action's name, the parameters it must resolve
// before executing, and its handler. Whether a handler creates files,
// replaces files, or shells out is the handler's own composition of the
// shared components.
type actionSpec struct {
	name          string
	needsBasePath bool
	needsAppName  bool
	run           func(*Dispatcher) error
}

// actionTable is the single source of truth for the action enumeration.
// Table order is menu order.
var actionTable = []actionSpec{
	{name: "add-config-gh-pages", needsBasePath: true, run: (*Dispatcher).addConfigGHPages},
	{name: "add-config-bundle", needsAppName: true, run: (*Dispatcher).addConfigBundle},
	{name: "build-gh-pages", run: (*Dispatcher).buildGHPages},
	{name: "deploy-gh-pages", run: (*Dispatcher).deployGHPages},
	{name: "generate-bundle", run: (*Dispatcher).generateBundle},
	{name: "update-index-tsx", run: (*Dispatcher).updateIndexTSX},
	{name: "generate-config", run: (*Dispatcher).generateConfig},
	{name: "deploy-next-gh-pages", run: (*Dispatcher).deployNextGHPages},
}

// Name returns the action's selector name, e.g. "add-config-gh-pages".
func (a Action) Name() string {
	if a < 0 || int(a) >= len(actionTable) {
		return "unknown"
	}
	return actionTable[a].name
}

func (a Action) String() string {
	return a.Name()
}

func (a Action) spec() actionSpec {
	return actionTable[a]
}

// ActionNames lists the selector names in menu order.
func ActionNames() []string {
	names := make([]string, len(actionTable))
	for i, spec := range actionTable {
		names[i] = spec.name
	}
	return names
}

// ActionFromName resolves a selector name to its Action.
func ActionFromName(name string) (Action, bool) {
	for i, spec := range actionTable {
		if spec.name == name {
			return Action(i), true
		}
	}
	return 0, false
}

// ValidActions renders the selector names for error messages.
func ValidActions() string {
	return strings.Join(ActionNames(), ", ")
}
