package executor

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/paths"
	"github.com/arthur-debert/renamer/pkg/types"
)

// CommandRunner runs a shell command line and waits for it to exit
type CommandRunner interface {
	Run(ctx context.Context, commandLine string) error
}

// ShellRunner runs command lines through /bin/sh with the terminal attached
type ShellRunner struct{}

// Run implements CommandRunner
func (ShellRunner) Run(ctx context.Context, commandLine string) error {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", commandLine)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Options contains configuration for the executor
type Options struct {
	// FS is used for direct renames; defaults to the OS filesystem
	FS afero.Fs

	// RenameCommand, when set, replaces direct renames. The original and
	// new paths are appended to it as two shell-escaped arguments.
	RenameCommand string

	// Runner runs RenameCommand; defaults to ShellRunner
	Runner CommandRunner

	// Logger defaults to the executor component logger
	Logger *zerolog.Logger
}

// Executor applies rename plans
type Executor struct {
	fs            afero.Fs
	renameCommand string
	runner        CommandRunner
	logger        zerolog.Logger
}

// Result describes what an Execute call changed
type Result struct {
	// Applied holds the renames that completed, in plan order
	Applied types.Plan
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	runner := opts.Runner
	if runner == nil {
		runner = ShellRunner{}
	}

	return &Executor{
		fs:            fs,
		renameCommand: opts.RenameCommand,
		runner:        runner,
		logger:        logger,
	}
}

// Execute applies every rename of plan in order. On error, Result.Applied
// lists the renames that were performed before the failing one.
func (e *Executor) Execute(ctx context.Context, plan types.Plan) (Result, error) {
	done := logging.LogOperationStart(e.logger, "execute")
	defer done()

	result := Result{Applied: make(types.Plan, 0, len(plan))}
	for i, r := range plan {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, errors.ErrRenameIOFailure, "rename interrupted")
		}

		var err error
		if e.renameCommand != "" {
			err = e.runCommand(ctx, r)
		} else {
			err = e.rename(r)
		}
		if err != nil {
			e.logger.Error().
				Err(err).
				Str("original", r.Original).
				Str("new", r.New).
				Int("applied", len(result.Applied)).
				Int("remaining", len(plan)-i).
				Msg("Rename failed, stopping")
			return result, errors.Wrapf(err, errors.ErrRenameIOFailure,
				"could not rename %s to %s", r.Original, r.New).
				WithDetail(errors.DetailPaths, []string{r.Original, r.New}).
				WithDetail("applied", len(result.Applied))
		}

		e.logger.Debug().
			Str("original", r.Original).
			Str("new", r.New).
			Msg("Renamed")
		result.Applied = append(result.Applied, r)
	}
	return result, nil
}

func (e *Executor) rename(r types.Rename) error {
	err := e.fs.Rename(r.Original, r.New)
	if err == nil || !e.parentMissing(r.New) || !paths.Exists(e.fs, r.Original) {
		return err
	}

	parent := filepath.Dir(r.New)
	e.logger.Debug().
		Str("dir", parent).
		Msg("Destination directory missing, creating it and retrying")
	if mkErr := e.fs.MkdirAll(parent, 0755); mkErr != nil {
		return mkErr
	}
	return e.fs.Rename(r.Original, r.New)
}

func (e *Executor) parentMissing(path string) bool {
	_, err := e.fs.Stat(filepath.Dir(path))
	return os.IsNotExist(err)
}

func (e *Executor) runCommand(ctx context.Context, r types.Rename) error {
	line := e.renameCommand + " " + shellquote.Join(r.Original, r.New)
	logging.LogCommand(e.logger, e.renameCommand, []string{r.Original, r.New})
	return e.runner.Run(ctx, line)
}
