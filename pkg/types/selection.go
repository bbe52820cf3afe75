package types

import "strings"

// Selection is a choice in the interactive menu shown before renames run
type Selection string

const (
	// SelectionYes applies the plan
	SelectionYes Selection = "Yes"

	// SelectionNo aborts without touching the filesystem
	SelectionNo Selection = "No"

	// SelectionEdit reopens the editor on the current edited lines
	SelectionEdit Selection = "Edit"

	// SelectionReset reopens the editor on the original lines
	SelectionReset Selection = "Reset"
)

// FullMenu is offered when the plan can be applied as-is
var FullMenu = []Selection{SelectionYes, SelectionNo, SelectionEdit, SelectionReset}

// ConflictMenu is offered when the plan would overwrite existing files
var ConflictMenu = []Selection{SelectionEdit, SelectionReset, SelectionNo}

// UndoMenu is offered when replaying an undo record, which has no editor lines
var UndoMenu = []Selection{SelectionYes, SelectionNo}

// ParseSelection maps user input (full word or its first letter, any case)
// to a Selection. The boolean is false when the input matches nothing.
func ParseSelection(s string) (Selection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return SelectionYes, true
	case "n", "no":
		return SelectionNo, true
	case "e", "edit":
		return SelectionEdit, true
	case "r", "reset":
		return SelectionReset, true
	}
	return "", false
}

// Contains reports whether sel is one of options
func Contains(options []Selection, sel Selection) bool {
	for _, o := range options {
		if o == sel {
			return true
		}
	}
	return false
}
