// Package paths provides the path handling renamer applies in front of and
// around the plan builder.
//
// It handles:
//
//   - Home directory expansion of edited destinations (~/ prefix)
//   - Filename-only editing: stripping parents before the editor runs and
//     reattaching them to the edited names afterwards
//   - Expansion of a single "." or ".." argument into a directory listing
//   - The default location of the undo file and the user config file
//
// # Environment Variables
//
//   - HOME: used for ~ expansion when os.UserHomeDir fails
//   - TMPDIR: decides where the undo file lives by default
//   - XDG_CONFIG_HOME: searched for renamer/config.toml
package paths
