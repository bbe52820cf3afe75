package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Rename files and directories in your text editor"
	MsgUse       = "renamer [flags] [paths...]"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRenameCommand = "Command used instead of a direct rename, e.g. \"git mv\""
	MsgFlagEditor        = "Editor command (default: $VISUAL, $EDITOR, vim)"
	MsgFlagPrettyDiff    = "Show each rename as a character diff"
	MsgFlagYes           = "Apply without asking; existing destinations become an error"
	MsgFlagForce         = "Allow renames that overwrite existing files"
	MsgFlagFilenamesOnly = "Edit only the last path component of each entry"
	MsgFlagUndo          = "Revert the last successful batch of renames"
	MsgFlagTopic         = "Show a help topic ('--topic topics' lists them)"
	MsgFlagConfig        = "Read configuration from this file"

	MsgVersionTemplate = "renamer version {{.Version}}\n"
)

// Flag names
const (
	FlagVerbose       = "verbose"
	FlagRenameCommand = "rename-command"
	FlagEditor        = "editor"
	FlagPrettyDiff    = "pretty-diff"
	FlagYes           = "yes"
	FlagForce         = "force"
	FlagFilenamesOnly = "filenames-only"
	FlagUndo          = "undo"
	FlagTopic         = "topic"
	FlagConfig        = "config"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimRight(msgExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
