// Package editor seeds a temporary file with one path per line, opens it
// in the user's editor and reads the edited lines back.
package editor

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
)

const tempPattern = "renamer-*.txt"

// ProcessRunner launches an editor process and waits for it to exit
type ProcessRunner interface {
	Run(ctx context.Context, argv []string) error
}

// TerminalRunner runs the editor attached to the controlling terminal.
// When stdin is piped (file list on stdin), /dev/tty is used instead.
type TerminalRunner struct{}

// Run implements ProcessRunner
func (TerminalRunner) Run(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
			defer func() { _ = tty.Close() }()
			cmd.Stdin = tty
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				cmd.Stdout = tty
			}
		}
	}
	return cmd.Run()
}

// Options configures an Editor
type Options struct {
	// Command is the editor command line, e.g. "code --wait"
	Command string

	// FS holds the temporary file; defaults to the OS filesystem
	FS afero.Fs

	// TempDir defaults to the system temp directory
	TempDir string

	// Runner defaults to TerminalRunner
	Runner ProcessRunner

	Logger *zerolog.Logger
}

// Editor opens lines of text in an external editor
type Editor struct {
	command string
	fs      afero.Fs
	tempDir string
	runner  ProcessRunner
	logger  zerolog.Logger
}

// New creates an Editor
func New(opts Options) *Editor {
	logger := logging.GetLogger("editor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	runner := opts.Runner
	if runner == nil {
		runner = TerminalRunner{}
	}
	return &Editor{
		command: opts.Command,
		fs:      fs,
		tempDir: opts.TempDir,
		runner:  runner,
		logger:  logger,
	}
}

// Edit writes lines to a temporary file, runs the editor on it and returns
// the file's lines once the editor exits. The file is removed afterwards.
func (e *Editor) Edit(ctx context.Context, lines []string) ([]string, error) {
	argv, err := shellquote.Split(e.command)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEditorFailed, "invalid editor command %q", e.command)
	}
	if len(argv) == 0 {
		return nil, errors.New(errors.ErrEditorFailed, "no editor configured")
	}

	f, err := afero.TempFile(e.fs, e.tempDir, tempPattern)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrEditorFailed, "could not create temporary file")
	}
	path := f.Name()
	defer func() {
		if rmErr := e.fs.Remove(path); rmErr != nil {
			e.logger.Debug().Err(rmErr).Str("path", path).Msg("Failed to remove temporary file")
		}
	}()

	_, err = f.WriteString(JoinLines(lines))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrEditorFailed, "could not write temporary file")
	}

	argv = append(argv, path)
	logging.LogCommand(e.logger, argv[0], argv[1:])
	if err := e.runner.Run(ctx, argv); err != nil {
		return nil, errors.Wrapf(err, errors.ErrEditorFailed, "editor %q failed", argv[0])
	}

	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrEditorFailed, "could not read edited file")
	}

	edited := SplitLines(string(data))
	e.logger.Debug().
		Int("seeded", len(lines)).
		Int("returned", len(edited)).
		Msg("Editor session finished")
	return edited, nil
}

// JoinLines renders lines one per line with a final newline
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// SplitLines splits text on "\n" or "\r\n". A trailing line terminator does
// not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
