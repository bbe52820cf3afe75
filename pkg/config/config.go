// Package config loads renamer's settings from layered sources.
//
// Sources, lowest precedence first:
//
//  1. the embedded defaults.toml
//  2. the user file renamer/config.toml in the XDG config directories
//  3. RENAMER_* environment variables (RENAMER_RENAME_COMMAND -> rename_command)
//  4. command line flags that were explicitly set
package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	rerrors "github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/paths"
)

//go:embed defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "RENAMER_"

// DefaultEditor is used when neither configuration nor environment name one
const DefaultEditor = "vim"

// Config keys, shared with the command line flag names
const (
	KeyEditor        = "editor"
	KeyRenameCommand = "rename_command"
	KeyPrettyDiff    = "pretty_diff"
	KeyYes           = "yes"
	KeyForce         = "force"
	KeyFilenamesOnly = "filenames_only"
	KeyUndoFile      = "undo_file"
	KeyStylesFile    = "styles_file"
)

// Config holds the resolved settings of one invocation
type Config struct {
	Editor        string `koanf:"editor"`
	RenameCommand string `koanf:"rename_command"`
	PrettyDiff    bool   `koanf:"pretty_diff"`
	Yes           bool   `koanf:"yes"`
	Force         bool   `koanf:"force"`
	FilenamesOnly bool   `koanf:"filenames_only"`
	UndoFile      string `koanf:"undo_file"`
	StylesFile    string `koanf:"styles_file"`
}

// LoadOptions selects the sources Load reads
type LoadOptions struct {
	// ConfigFile overrides the XDG lookup of the user file. A missing
	// file is an error when set explicitly.
	ConfigFile string

	// Flags holds explicitly set command line flags, keyed like Config
	Flags map[string]interface{}
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load merges every configuration source and decodes the result
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	userFile := opts.ConfigFile
	if userFile == "" {
		userFile = paths.ConfigFile()
	} else if _, err := os.Stat(userFile); err != nil {
		return nil, rerrors.Wrapf(err, rerrors.ErrConfigLoad, "config file %s not readable", userFile)
	}
	if userFile != "" {
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return nil, rerrors.Wrapf(err, rerrors.ErrConfigLoad, "failed to load config from %s", userFile)
		}
		logger.Debug().Str("path", userFile).Msg("Loaded user config")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flags
	if len(opts.Flags) > 0 {
		if err := k.Load(confmap.Provider(opts.Flags, "."), nil); err != nil {
			return nil, rerrors.Wrap(err, rerrors.ErrConfigLoad, "failed to load flags")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrConfigLoad, "failed to decode configuration")
	}

	if cfg.UndoFile == "" {
		cfg.UndoFile = paths.DefaultUndoFile()
	}

	logger.Debug().
		Str("renameCommand", cfg.RenameCommand).
		Bool("force", cfg.Force).
		Bool("yes", cfg.Yes).
		Bool("filenamesOnly", cfg.FilenamesOnly).
		Str("undoFile", cfg.UndoFile).
		Msg("Configuration loaded")
	return &cfg, nil
}

// EditorCommand returns the editor command line: the configured one, then
// $VISUAL, then $EDITOR, then DefaultEditor.
func (c *Config) EditorCommand(getenv func(string) string) string {
	if strings.TrimSpace(c.Editor) != "" {
		return c.Editor
	}
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return v
		}
	}
	return DefaultEditor
}
