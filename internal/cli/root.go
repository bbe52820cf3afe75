// Package cli wires renamer's collaborators behind a cobra root command.
package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/renamer/internal/version"
	"github.com/arthur-debert/renamer/pkg/cobrax/topics"
	"github.com/arthur-debert/renamer/pkg/config"
	"github.com/arthur-debert/renamer/pkg/editor"
	"github.com/arthur-debert/renamer/pkg/engine"
	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/executor"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/output/styles"
	"github.com/arthur-debert/renamer/pkg/paths"
	"github.com/arthur-debert/renamer/pkg/plan"
	"github.com/arthur-debert/renamer/pkg/ui/display"
	"github.com/arthur-debert/renamer/pkg/ui/prompt"
	"github.com/arthur-debert/renamer/pkg/undo"
	"github.com/arthur-debert/renamer/pkg/validate"
)

//go:embed topics/*.md
var topicFiles embed.FS

// configFlags are the flags that override configuration keys
var configFlags = map[string]string{
	FlagRenameCommand: config.KeyRenameCommand,
	FlagEditor:        config.KeyEditor,
	FlagPrettyDiff:    config.KeyPrettyDiff,
	FlagYes:           config.KeyYes,
	FlagForce:         config.KeyForce,
	FlagFilenamesOnly: config.KeyFilenamesOnly,
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		undoMode   bool
		topic      string
		configFile string
		tm         *topics.TopicManager
	)

	rootCmd := &cobra.Command{
		Use:     MsgUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			logging.LogCommand(log.Logger, cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic != "" {
				return tm.Run(cmd.OutOrStdout(), topic, cmd.Root().Name())
			}

			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: configFile,
				Flags:      changedFlags(cmd.Flags()),
			})
			if err != nil {
				return err
			}

			if undoMode {
				if len(args) > 0 {
					return errors.New(errors.ErrInvalidInput, "--undo takes no paths")
				}
				eng, release, err := newEngine(cmd, cfg, false)
				if err != nil {
					return err
				}
				defer release()
				_, err = eng.Undo(cmd.Context())
				return err
			}

			originals, fromStdin, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			eng, release, err := newEngine(cmd, cfg, fromStdin)
			if err != nil {
				return err
			}
			defer release()
			_, err = eng.Run(cmd.Context(), originals)
			return err
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().CountVarP(&verbosity, FlagVerbose, "v", MsgFlagVerbose)
	flags.StringP(FlagRenameCommand, "c", "", MsgFlagRenameCommand)
	flags.StringP(FlagEditor, "e", "", MsgFlagEditor)
	flags.BoolP(FlagPrettyDiff, "p", false, MsgFlagPrettyDiff)
	flags.BoolP(FlagYes, "y", false, MsgFlagYes)
	flags.BoolP(FlagForce, "f", false, MsgFlagForce)
	flags.BoolP(FlagFilenamesOnly, "n", false, MsgFlagFilenamesOnly)
	flags.BoolVarP(&undoMode, FlagUndo, "u", false, MsgFlagUndo)
	flags.StringVar(&topic, FlagTopic, "", MsgFlagTopic)
	flags.StringVar(&configFile, FlagConfig, "", MsgFlagConfig)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(MsgVersionTemplate)

	sub, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		tm, err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
			FlagName: FlagTopic,
		})
	}
	if err != nil || tm == nil {
		tm = topics.New(nil)
	}

	return rootCmd
}

// changedFlags returns the explicitly set flags keyed like the config
func changedFlags(flags *pflag.FlagSet) map[string]interface{} {
	out := make(map[string]interface{})
	flags.Visit(func(f *pflag.Flag) {
		key, ok := configFlags[f.Name]
		if !ok {
			return
		}
		switch f.Value.Type() {
		case "bool":
			out[key] = f.Value.String() == "true"
		default:
			out[key] = f.Value.String()
		}
	})
	return out
}

// readInput returns the paths to edit: the arguments, with a lone "." or
// ".." expanded, or else the non-blank lines of in.
func readInput(in io.Reader, args []string) ([]string, bool, error) {
	if len(args) > 0 {
		expanded, err := paths.ExpandDirArgs(afero.NewOsFs(), args)
		return expanded, false, err
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, true, errors.Wrap(err, errors.ErrInvalidInput, "could not read standard input")
	}
	var lines []string
	for _, line := range editor.SplitLines(string(data)) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, true, errors.New(errors.ErrNoInput, "No input files on stdin or as args. Aborting.")
	}
	return lines, true, nil
}

// newEngine builds the engine for one invocation. release closes what the
// collaborators opened and must be called once the engine is done.
func newEngine(cmd *cobra.Command, cfg *config.Config, stdinUsed bool) (*engine.Engine, func(), error) {
	out := cmd.OutOrStdout()
	fsys := afero.NewOsFs()
	home, _ := paths.HomeDir()

	color := false
	if f, ok := out.(*os.File); ok {
		color = display.ColorEnabled(f)
	}
	var sheet *styles.Registry
	if cfg.StylesFile != "" {
		var err error
		sheet, err = styles.LoadFile(paths.ExpandHome(cfg.StylesFile, home), lipgloss.NewRenderer(out))
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrConfigLoad, "could not load styles")
		}
	}

	prompter, release := newPrompter(cmd.InOrStdin(), out, stdinUsed)
	return engine.New(engine.Deps{
		Editor:    editor.New(editor.Options{Command: cfg.EditorCommand(os.Getenv), FS: fsys}),
		Prompter:  prompter,
		Renderer:  display.NewTextRenderer(out, display.Options{Color: color, PrettyDiff: cfg.PrettyDiff, Styles: sheet}),
		Applier:   executor.New(executor.Options{FS: fsys, RenameCommand: cfg.RenameCommand}),
		Undo:      undo.NewLog(fsys, cfg.UndoFile),
		Validator: validate.New(fsys),
	}, engine.Options{
		Force: cfg.Force,
		Yes:   cfg.Yes,
		Plan: plan.Options{
			FilenamesOnly: cfg.FilenamesOnly,
			Home:          home,
		},
	}), release, nil
}

// newPrompter picks the arrow-key menu when both ends are terminals. When
// the file list was piped in, answers are read from the controlling
// terminal instead, and release closes it.
func newPrompter(in io.Reader, out io.Writer, stdinUsed bool) (engine.Prompter, func()) {
	release := func() {}
	if f, ok := in.(*os.File); ok {
		if !stdinUsed && isatty.IsTerminal(f.Fd()) && stdoutIsTerminal() {
			return prompt.NewInteractive(), release
		}
		if stdinUsed {
			if tty, err := os.Open("/dev/tty"); err == nil {
				return prompt.NewLine(tty, out), func() { _ = tty.Close() }
			}
		}
	}
	return prompt.NewLine(in, out), release
}

// Execute runs the root command with os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

// FormatError renders err for the terminal, in the error style when
// stderr supports color
func FormatError(err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	if !display.ColorEnabled(os.Stderr) {
		return msg
	}
	return styles.Default(lipgloss.NewRenderer(os.Stderr)).Render("Error", msg)
}
