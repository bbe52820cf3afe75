package types

import (
	"fmt"
	"path/filepath"
)

// Rename is one pending filesystem move.
type Rename struct {
	// Original must denote an existing path at validation time
	Original string `toml:"original"`

	// New is the destination, with a leading ~/ already expanded
	New string `toml:"new"`
}

// String renders the rename the way it is listed to the user
func (r Rename) String() string {
	return fmt.Sprintf("%s -> %s", r.Original, r.New)
}

// Inverse swaps original and new.
func (r Rename) Inverse() Rename {
	return Rename{Original: r.New, New: r.Original}
}

// Plan is the ordered sequence of renames for one edit cycle.
//
// A plan produced by the plan builder never contains an entry whose
// Original equals its New, and its New values are pairwise distinct.
type Plan []Rename

// Originals returns the source paths in plan order
func (p Plan) Originals() []string {
	out := make([]string, len(p))
	for i, r := range p {
		out[i] = r.Original
	}
	return out
}

// News returns the destination paths in plan order
func (p Plan) News() []string {
	out := make([]string, len(p))
	for i, r := range p {
		out[i] = r.New
	}
	return out
}

// Inverse returns the plan that restores the state before p was applied.
// Both sides are made absolute so the result does not depend on the
// working directory it is later executed from.
func (p Plan) Inverse() (Plan, error) {
	inv := make(Plan, 0, len(p))
	for _, r := range p {
		orig, err := filepath.Abs(r.Original)
		if err != nil {
			return nil, err
		}
		dest, err := filepath.Abs(r.New)
		if err != nil {
			return nil, err
		}
		inv = append(inv, Rename{Original: dest, New: orig})
	}
	return inv, nil
}
