// Package undo persists the inverse of the last executed rename plan so a
// later invocation can restore the previous names.
//
// Exactly one generation is kept at a fixed path: writing overwrites it and
// a successful load removes it. The file is not locked; two concurrent
// invocations can race on it.
package undo

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/paths"
	"github.com/arthur-debert/renamer/pkg/types"
)

// record is the on-disk layout of the undo file
type record struct {
	Renames []types.Rename `toml:"renames"`
}

// Log reads and writes the undo file at a single path
type Log struct {
	fs     afero.Fs
	path   string
	logger zerolog.Logger
}

// NewLog creates an undo log backed by path on fs
func NewLog(fs afero.Fs, path string) *Log {
	return &Log{
		fs:     fs,
		path:   path,
		logger: logging.GetLogger("undo"),
	}
}

// Path returns the location of the undo file
func (l *Log) Path() string {
	return l.path
}

// Write stores the already inverted plan, replacing any previous record
func (l *Log) Write(inverse types.Plan) error {
	data, err := toml.Marshal(record{Renames: inverse})
	if err != nil {
		return errors.Wrap(err, errors.ErrUndoWrite, "could not encode undo record")
	}
	if err := afero.WriteFile(l.fs, l.path, data, 0600); err != nil {
		return errors.Wrapf(err, errors.ErrUndoWrite, "could not write undo file %s", l.path)
	}

	l.logger.Debug().
		Str("path", l.path).
		Int("renames", len(inverse)).
		Msg("Wrote undo record")
	return nil
}

// Read returns the recorded plan without consuming it. It fails when no
// record exists or when a path that has to be renamed back is gone. A
// broken symlink is still there and can be renamed back.
func (l *Log) Read() (types.Plan, error) {
	data, err := afero.ReadFile(l.fs, l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrUndoNotFound, "No undo information found").
				WithDetail("path", l.path)
		}
		return nil, errors.Wrapf(err, errors.ErrUndoNotFound, "could not read undo file %s", l.path)
	}

	var rec record
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "undo file %s is corrupt", l.path)
	}

	var missing []string
	for _, r := range rec.Renames {
		if !paths.Exists(l.fs, r.Original) {
			missing = append(missing, r.Original)
		}
	}
	if len(missing) > 0 {
		return nil, errors.WithPaths(errors.ErrUndoTargetMissing,
			"Cannot undo, files no longer exist", missing)
	}
	return types.Plan(rec.Renames), nil
}

// Load is Read followed by removal of the undo file, so a record can be
// consumed only once.
func (l *Log) Load() (types.Plan, error) {
	plan, err := l.Read()
	if err != nil {
		return nil, err
	}

	if err := l.fs.Remove(l.path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrUndoWrite, "could not remove undo file %s", l.path)
	}

	l.logger.Debug().
		Str("path", l.path).
		Int("renames", len(plan)).
		Msg("Loaded and removed undo record")
	return plan, nil
}
