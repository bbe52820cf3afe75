package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"github.com/arthur-debert/renamer/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default files
const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "renamer"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// UndoFileName is the name of the undo file in the temp directory
	UndoFileName = "renamer-undo.toml"
)

// HomeDir resolves the user's home directory. The boolean is false when
// neither os.UserHomeDir nor $HOME yield one.
func HomeDir() (string, bool) {
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return home, true
	}
	home = os.Getenv(EnvHome)
	return home, home != ""
}

// ExpandHome replaces a leading "~" with home when path starts with "~/".
// Only the first occurrence is replaced; anything else is returned as-is.
func ExpandHome(path, home string) string {
	if home == "" || !strings.HasPrefix(path, "~/") {
		return path
	}
	return home + path[1:]
}

// BaseNames returns the final element of each path, which is what the
// editor shows in filename-only mode. A trailing separator is ignored, so
// "photos/2019/" shows as "2019".
func BaseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(filepath.Clean(p))
	}
	return names
}

// ReattachParent rebuilds a full destination from an edited filename by
// putting it back under the parent directory of original.
//
// An unchanged name returns original verbatim, so "./a.txt" stays equal to
// itself. Names that are already absolute or start with ~/ are taken as
// full destinations and returned untouched.
//
// The parent is taken from the cleaned original, so a directory given as
// "photos/2019/" is renamed next to itself and not into itself.
func ReattachParent(original, name string) string {
	cleaned := filepath.Clean(original)
	if name == filepath.Base(cleaned) {
		return original
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "~/") {
		return name
	}
	return filepath.Join(filepath.Dir(cleaned), name)
}

// ExpandDirArgs turns a single "." or ".." argument into the sorted listing
// of that directory. Any other argument list is returned unchanged.
func ExpandDirArgs(fs afero.Fs, args []string) ([]string, error) {
	if len(args) != 1 || (args[0] != "." && args[0] != "..") {
		return args, nil
	}

	dir := args[0]
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "could not list directory %s", dir)
	}

	expanded := make([]string, 0, len(entries))
	for _, entry := range entries {
		expanded = append(expanded, filepath.Join(dir, entry.Name()))
	}
	return expanded, nil
}

// Exists reports whether path is present on fs without following a final
// symlink, so a broken link still counts. Filesystems that cannot lstat
// fall back to Stat.
func Exists(fs afero.Fs, path string) bool {
	if lstater, ok := fs.(afero.Lstater); ok {
		_, _, err := lstater.LstatIfPossible(path)
		return err == nil
	}
	_, err := fs.Stat(path)
	return err == nil
}

// Canonical returns the absolute, cleaned form of p, used to decide whether
// two spellings name the same file. It falls back to filepath.Clean when the
// working directory cannot be resolved.
func Canonical(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// DefaultUndoFile is the fixed, well-known location of the undo record
func DefaultUndoFile() string {
	return filepath.Join(os.TempDir(), UndoFileName)
}

// ConfigFile returns the path of an existing user config file, or "" when
// none is present under the XDG config directories.
func ConfigFile() string {
	xdg.Reload()
	path, err := xdg.SearchConfigFile(filepath.Join(AppDirName, ConfigFileName))
	if err != nil {
		return ""
	}
	return path
}
