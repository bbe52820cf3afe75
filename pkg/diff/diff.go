// Package diff computes the character-level change preview shown for each
// rename when pretty diffs are enabled. It never influences which renames
// are performed.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Kind tags a Segment
type Kind int

const (
	// Removed text exists only in the original string
	Removed Kind = iota
	// Unchanged text exists in both strings
	Unchanged
	// New text exists only in the edited string
	New
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Removed:
		return "Removed"
	case Unchanged:
		return "Unchanged"
	case New:
		return "New"
	default:
		return "Unknown"
	}
}

// Segment is a maximal run of characters sharing one Kind
type Segment struct {
	Kind Kind
	Text string
}

// Compute aligns a and b character by character and returns the coalesced
// runs in document order. Within a contiguous change region the Removed
// run, if any, precedes the New run.
func Compute(a, b string) []Segment {
	dmp := diffmatchpatch.New()
	// No deadline: the result must depend on the inputs only
	dmp.DiffTimeout = 0

	diffs := dmp.DiffMain(a, b, false)

	segments := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		kind := kindOf(d.Type)
		if n := len(segments); n > 0 && kind == Unchanged && segments[n-1].Kind == Unchanged {
			segments[n-1].Text += d.Text
			continue
		}
		segments = append(segments, Segment{Kind: kind, Text: d.Text})
	}
	return orderChanges(segments)
}

func kindOf(op diffmatchpatch.Operation) Kind {
	switch op {
	case diffmatchpatch.DiffDelete:
		return Removed
	case diffmatchpatch.DiffInsert:
		return New
	default:
		return Unchanged
	}
}

// orderChanges rewrites every region between two Unchanged runs as at most
// one Removed run followed by at most one New run.
func orderChanges(segments []Segment) []Segment {
	out := make([]Segment, 0, len(segments))
	var removed, added strings.Builder

	flush := func() {
		if removed.Len() > 0 {
			out = append(out, Segment{Kind: Removed, Text: removed.String()})
			removed.Reset()
		}
		if added.Len() > 0 {
			out = append(out, Segment{Kind: New, Text: added.String()})
			added.Reset()
		}
	}

	for _, s := range segments {
		switch s.Kind {
		case Removed:
			removed.WriteString(s.Text)
		case New:
			added.WriteString(s.Text)
		default:
			flush()
			out = append(out, s)
		}
	}
	flush()
	return out
}

// Source reconstructs the original string from Removed and Unchanged runs
func Source(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Kind != New {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// Target reconstructs the edited string from New and Unchanged runs
func Target(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Kind != Removed {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
