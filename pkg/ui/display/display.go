// Package display renders rename plans, conflicts and diffs for the user.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/renamer/pkg/diff"
	"github.com/arthur-debert/renamer/pkg/output/styles"
	"github.com/arthur-debert/renamer/pkg/types"
)

const (
	// HeaderFound introduces the renames about to be applied
	HeaderFound = "The following replacements were found"

	// HeaderConflicts introduces renames whose destination already exists
	HeaderConflicts = "The following replacements overwrite existing files:"

	// HeaderUndo introduces the renames an undo would apply
	HeaderUndo = "The following renames will be undone"

	conflictMarker = "! "
	arrow          = " -> "
)

// Options configures a TextRenderer
type Options struct {
	// Color enables styled output; see ColorEnabled
	Color bool

	// PrettyDiff renders each rename as a character diff
	PrettyDiff bool

	// Styles overrides the embedded style sheet
	Styles *styles.Registry
}

// TextRenderer writes plan listings to a writer
type TextRenderer struct {
	writer io.Writer
	color  bool
	pretty bool
	styles *styles.Registry
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer, opts Options) *TextRenderer {
	reg := opts.Styles
	if reg == nil {
		reg = styles.Default(lipgloss.NewRenderer(w))
	}
	return &TextRenderer{
		writer: w,
		color:  opts.Color,
		pretty: opts.PrettyDiff,
		styles: reg,
	}
}

// ColorEnabled reports whether styled output should be written to f:
// NO_COLOR is unset, f is a terminal and the terminal supports color.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// ShowPlan lists plan. Entries also present in conflicts are listed first
// under their own header and flagged.
func (r *TextRenderer) ShowPlan(plan, conflicts types.Plan) error {
	conflicting := make(map[types.Rename]bool, len(conflicts))
	for _, c := range conflicts {
		conflicting[c] = true
	}

	var rest types.Plan
	for _, rn := range plan {
		if !conflicting[rn] {
			rest = append(rest, rn)
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	if len(conflicts) > 0 {
		b.WriteString(r.paint("ConflictHeader", HeaderConflicts))
		b.WriteString("\n\n")
		for _, c := range conflicts {
			b.WriteString(r.paint("Conflict", conflictMarker))
			b.WriteString(r.renameLine(c, "Conflict"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(rest) > 0 {
		b.WriteString(r.paint("Header", HeaderFound))
		b.WriteString("\n\n")
		for _, rn := range rest {
			b.WriteString(r.renameLine(rn, "Rename"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.writer, b.String())
	return err
}

// ShowUndo lists the renames an undo record would apply
func (r *TextRenderer) ShowUndo(plan types.Plan) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.paint("Header", HeaderUndo))
	b.WriteString("\n\n")
	for _, rn := range plan {
		b.WriteString(r.renameLine(rn, "Rename"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(r.writer, b.String())
	return err
}

// Message prints a plain status line such as "Aborting."
func (r *TextRenderer) Message(msg string) error {
	_, err := fmt.Fprintln(r.writer, r.paint("Muted", msg))
	return err
}

// Summary reports how many renames were applied
func (r *TextRenderer) Summary(applied int) error {
	_, err := fmt.Fprintln(r.writer, r.paint("Success", fmt.Sprintf("Renamed %d file(s).", applied)))
	return err
}

func (r *TextRenderer) renameLine(rn types.Rename, style string) string {
	if r.pretty {
		return r.diffLine(rn)
	}
	return r.paint(style, rn.Original) + r.paint("Arrow", arrow) + r.paint(style, rn.New)
}

// diffLine renders one rename as inline diff segments. Without color,
// removed text is wrapped in [- -] and added text in {+ +}.
func (r *TextRenderer) diffLine(rn types.Rename) string {
	var b strings.Builder
	for _, seg := range diff.Compute(rn.Original, rn.New) {
		switch seg.Kind {
		case diff.Removed:
			if r.color {
				b.WriteString(r.styles.Render("Removed", seg.Text))
			} else {
				b.WriteString("[-" + seg.Text + "-]")
			}
		case diff.New:
			if r.color {
				b.WriteString(r.styles.Render("Added", seg.Text))
			} else {
				b.WriteString("{+" + seg.Text + "+}")
			}
		default:
			b.WriteString(r.paint("Unchanged", seg.Text))
		}
	}
	return b.String()
}

func (r *TextRenderer) paint(style, s string) string {
	if !r.color {
		return s
	}
	return r.styles.Render(style, s)
}
