// Package plan turns the lines given to the editor and the lines read back
// from it into a RenamePlan, enforcing the structural invariants that do
// not depend on the filesystem.
package plan

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/paths"
	"github.com/arthur-debert/renamer/pkg/types"
)

// Options controls how edited lines are turned into destinations
type Options struct {
	// FilenamesOnly means edited lines are bare filenames that must be put
	// back under the parent directory of the matching original line
	FilenamesOnly bool

	// Home replaces a leading ~ in destinations; empty disables expansion
	Home string
}

// Builder builds rename plans
type Builder struct {
	opts   Options
	logger zerolog.Logger
}

// NewBuilder creates a plan builder
func NewBuilder(opts Options) *Builder {
	return &Builder{
		opts:   opts,
		logger: logging.GetLogger("plan.Builder"),
	}
}

// EditorLines returns what the editor should be seeded with for original
func (b *Builder) EditorLines(original []string) []string {
	if b.opts.FilenamesOnly {
		return paths.BaseNames(original)
	}
	return append([]string(nil), original...)
}

// Build pairs original and edited lines positionally and returns the
// renames for every pair that changed, in input order.
func (b *Builder) Build(original, edited []string) (types.Plan, error) {
	if len(original) != len(edited) {
		return nil, errors.New(errors.ErrUnequalLines, "Unequal number of files").
			WithDetail("original", len(original)).
			WithDetail("edited", len(edited))
	}

	shown := b.EditorLines(original)

	plan := make(types.Plan, 0, len(original))
	for i := range original {
		if shown[i] == edited[i] {
			continue
		}
		dest := b.destination(original[i], edited[i])
		if dest == original[i] {
			continue
		}
		plan = append(plan, types.Rename{Original: original[i], New: dest})
	}

	if len(plan) == 0 {
		return nil, errors.New(errors.ErrNoReplacementsFound, "No replacements found")
	}

	if dups := duplicateDestinations(plan); len(dups) > 0 {
		return nil, errors.WithPaths(errors.ErrDuplicateOutput,
			"Multiple files would be renamed to the same path", dups)
	}

	b.logger.Debug().
		Int("lines", len(original)).
		Int("renames", len(plan)).
		Bool("filenamesOnly", b.opts.FilenamesOnly).
		Msg("Built rename plan")

	return plan, nil
}

func (b *Builder) destination(original, edited string) string {
	dest := edited
	if b.opts.FilenamesOnly {
		dest = paths.ReattachParent(original, edited)
	}
	return paths.ExpandHome(dest, b.opts.Home)
}

// duplicateDestinations lists every destination shared by two or more
// renames, once each, in order of first appearance. Relative and absolute
// spellings of one path count as the same destination.
func duplicateDestinations(plan types.Plan) []string {
	counts := make(map[string]int, len(plan))
	for _, r := range plan {
		counts[paths.Canonical(r.New)]++
	}

	var dups []string
	seen := make(map[string]bool)
	for _, r := range plan {
		key := paths.Canonical(r.New)
		if counts[key] > 1 && !seen[key] {
			seen[key] = true
			dups = append(dups, r.New)
		}
	}
	return dups
}
