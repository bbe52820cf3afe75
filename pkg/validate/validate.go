// Package validate checks a rename plan against the live filesystem.
//
// These checks are kept apart from the plan builder because their outcome
// depends on the environment rather than on the edited lines: a file can
// appear or disappear between two invocations. Every check reports all
// offending paths at once.
package validate

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/paths"
	"github.com/arthur-debert/renamer/pkg/types"
)

// Validator runs the environmental checks
type Validator struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a validator operating on fs
func New(fs afero.Fs) *Validator {
	return &Validator{
		fs:     fs,
		logger: logging.GetLogger("validate"),
	}
}

// Exists reports whether path is present. Broken symlinks count as present
// when the filesystem can lstat, since renaming them works.
func (v *Validator) Exists(path string) bool {
	return paths.Exists(v.fs, path)
}

// CheckInputFiles fails when a source path does not exist or is listed
// more than once.
func (v *Validator) CheckInputFiles(originals []string) error {
	var missing []string
	for _, p := range originals {
		if !v.Exists(p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		v.logger.Debug().Strs("paths", missing).Msg("Input files missing")
		return errors.WithPaths(errors.ErrNonexistentInputFiles,
			"The following input files do not exist", missing)
	}

	if dups := duplicates(originals); len(dups) > 0 {
		v.logger.Debug().Strs("paths", dups).Msg("Duplicate input files")
		return errors.WithPaths(errors.ErrDuplicateInputFiles,
			"The following input files are listed more than once", dups)
	}
	return nil
}

// Conflicts returns the renames whose destination already exists
func (v *Validator) Conflicts(plan types.Plan) types.Plan {
	var conflicts types.Plan
	for _, r := range plan {
		if v.Exists(r.New) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}

// CheckOverwrites fails when any destination already exists, unless force
// is set, in which case nothing is checked.
func (v *Validator) CheckOverwrites(plan types.Plan, force bool) error {
	if force {
		return nil
	}
	conflicts := v.Conflicts(plan)
	if len(conflicts) == 0 {
		return nil
	}
	return OverwriteError(conflicts)
}

// OverwriteError builds the error listing every conflicting destination
func OverwriteError(conflicts types.Plan) error {
	return errors.WithPaths(errors.ErrOverwriteConflict,
		"Refusing to overwrite existing files", conflicts.News())
}

func duplicates(list []string) []string {
	counts := make(map[string]int, len(list))
	for _, p := range list {
		counts[paths.Canonical(p)]++
	}

	var dups []string
	seen := make(map[string]bool)
	for _, p := range list {
		key := paths.Canonical(p)
		if counts[key] > 1 && !seen[key] {
			seen[key] = true
			dups = append(dups, p)
		}
	}
	return dups
}
