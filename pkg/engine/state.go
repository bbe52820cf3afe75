package engine

import (
	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/types"
)

// State is a state of the proposal loop
type State int

const (
	// StatePropose shows the plan and waits for a selection
	StatePropose State = iota
	// StateExecuted is terminal: the plan was applied
	StateExecuted
	// StateAborted is terminal: nothing was changed
	StateAborted
)

// String returns the state name for logs
func (s State) String() string {
	switch s {
	case StatePropose:
		return "propose"
	case StateExecuted:
		return "executed"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Seed says which lines the editor is reopened with
type Seed int

const (
	// SeedNone means the editor is not reopened
	SeedNone Seed = iota
	// SeedEdited reopens the editor on the last edited lines
	SeedEdited
	// SeedOriginal reopens the editor on the original lines
	SeedOriginal
)

// Transition maps a selection made in StatePropose to the next state and,
// when that state is StatePropose again, to the editor seed.
func Transition(sel types.Selection) (State, Seed, error) {
	switch sel {
	case types.SelectionYes:
		return StateExecuted, SeedNone, nil
	case types.SelectionNo:
		return StateAborted, SeedNone, nil
	case types.SelectionEdit:
		return StatePropose, SeedEdited, nil
	case types.SelectionReset:
		return StatePropose, SeedOriginal, nil
	}
	return StateAborted, SeedNone, errors.Newf(errors.ErrInternal, "unknown selection %q", sel)
}

// Menu returns the selections offered for a proposal. A proposal that
// would overwrite files cannot be accepted as-is.
func Menu(blocked bool) []types.Selection {
	if blocked {
		return types.ConflictMenu
	}
	return types.FullMenu
}
