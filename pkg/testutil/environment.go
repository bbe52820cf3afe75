// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate isolated filesystems for rename tests

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a working directory plus the locations renamer
// reads and writes outside of it
type TestEnvironment struct {
	// Dir holds the files being renamed
	Dir string

	HomeDir  string
	UndoFile string
	FS       afero.Fs
	Type     EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. For EnvIsolated, HOME
// and the XDG base directories are pointed inside it so nothing leaks to
// the real user.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.FS = afero.NewMemMapFs()
		env.Dir = "/work"
		env.HomeDir = "/home/user"
		env.UndoFile = "/tmp/renamer-undo.toml"
		env.mkdir(env.Dir)
		env.mkdir(env.HomeDir)
		env.mkdir("/tmp")
	case EnvIsolated:
		root := t.TempDir()
		env.FS = afero.NewOsFs()
		env.Dir = filepath.Join(root, "work")
		env.HomeDir = filepath.Join(root, "home")
		env.UndoFile = filepath.Join(root, "tmp", "renamer-undo.toml")
		env.mkdir(env.Dir)
		env.mkdir(env.HomeDir)
		env.mkdir(filepath.Dir(env.UndoFile))

		t.Setenv("HOME", env.HomeDir)
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
		t.Setenv("XDG_CONFIG_DIRS", filepath.Join(root, "etc"))
		t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	}
	return env
}

// Path returns the absolute path of name inside Dir
func (e *TestEnvironment) Path(name string) string {
	return filepath.Join(e.Dir, filepath.FromSlash(name))
}

// Paths maps Path over names
func (e *TestEnvironment) Paths(names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = e.Path(n)
	}
	return out
}

// WriteFile creates name (and its parents) inside Dir with content
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.t.Helper()
	path := e.Path(name)
	e.mkdir(filepath.Dir(path))
	if err := afero.WriteFile(e.FS, path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of name inside Dir
func (e *TestEnvironment) ReadFile(name string) string {
	e.t.Helper()
	data, err := afero.ReadFile(e.FS, e.Path(name))
	if err != nil {
		e.t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}

// Exists reports whether name exists inside Dir
func (e *TestEnvironment) Exists(name string) bool {
	_, err := e.FS.Stat(e.Path(name))
	return err == nil
}

// UndoExists reports whether an undo record is present
func (e *TestEnvironment) UndoExists() bool {
	_, err := e.FS.Stat(e.UndoFile)
	return err == nil
}

func (e *TestEnvironment) mkdir(dir string) {
	e.t.Helper()
	if err := e.FS.MkdirAll(dir, 0755); err != nil && !os.IsExist(err) {
		e.t.Fatalf("Failed to create %s: %v", dir, err)
	}
}
