package reconcile

import "fmt"

// Mode selects what a reconciliation pass does. Exactly one mode runs per
// pass; there is no combined create-and-delete mode.
type Mode string

const (
	// ModeCreate generates one derived material per valid template and
	// thread geometry.
	ModeCreate Mode = "create"
	// ModeDelete removes every derived material.
	ModeDelete Mode = "delete"
)

// Options configures one reconciliation pass.
type Options struct {
	// Mode is the pass mode.
	Mode Mode
	// Overwrite replaces existing derived materials in create mode. It has
	// no effect in delete mode.
	Overwrite bool
}

// Validate checks the option combination.
func (o Options) Validate() error {
	switch o.Mode {
	case ModeCreate, ModeDelete:
		return nil
	default:
		return fmt.Errorf("unknown reconciliation mode %q", o.Mode)
	}
}

// Decision is the answer of an interactive confirmation boundary.
type Decision string

const (
	// DecisionProceed confirms the pass.
	DecisionProceed Decision = "proceed"
	// DecisionCancel aborts before any mutation.
	DecisionCancel Decision = "cancel"
)

// Prompt is the interactive confirmation boundary. Implementations present
// the planned pass and return the user's decision; cancellation is only
// possible here, never once the pass has started.
type Prompt interface {
	Confirm(opts Options, c Counters) (Decision, error)
}
