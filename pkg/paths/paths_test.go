package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/paths"
)

func TestExpandHome(t *testing.T) {
	tests := []struct {
		name string
		path string
		home string
		want string
	}{
		{"tilde slash", "~/docs/a.txt", "/home/u", "/home/u/docs/a.txt"},
		{"only first tilde", "~/~/a", "/home/u", "/home/u/~/a"},
		{"bare tilde untouched", "~", "/home/u", "~"},
		{"tilde user untouched", "~bob/a", "/home/u", "~bob/a"},
		{"tilde in middle", "a/~/b", "/home/u", "a/~/b"},
		{"no home", "~/a", "", "~/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandHome(tt.path, tt.home))
		})
	}
}

func TestHomeDir_FallsBackToEnv(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	home, ok := paths.HomeDir()
	assert.True(t, ok)
	assert.Equal(t, "/home/tester", home)
}

func TestBaseNames(t *testing.T) {
	assert.Equal(t,
		[]string{"a.txt", "b", "c.md", "2019"},
		paths.BaseNames([]string{"dir/a.txt", "b", "/x/y/c.md", "photos/2019/"}))
}

func TestReattachParent(t *testing.T) {
	tests := []struct {
		name     string
		original string
		edited   string
		want     string
	}{
		{"unchanged keeps literal", "./a.txt", "a.txt", "./a.txt"},
		{"renamed in subdir", "dir/sub/a.txt", "b.txt", filepath.Join("dir", "sub", "b.txt")},
		{"renamed at top level", "a.txt", "b.txt", "b.txt"},
		{"absolute destination", "dir/a.txt", "/tmp/b.txt", "/tmp/b.txt"},
		{"home destination", "dir/a.txt", "~/b.txt", "~/b.txt"},
		{"moved into new subdir", "dir/a.txt", "new/a.txt", filepath.Join("dir", "new", "a.txt")},
		{"directory with trailing slash", "photos/2019/", "2020", filepath.Join("photos", "2020")},
		{"directory with trailing slash unchanged", "photos/2019/", "2019", "photos/2019/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ReattachParent(tt.original, tt.edited))
		})
	}
}

func TestExpandDirArgs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	t.Run("dot expands to sorted listing", func(t *testing.T) {
		got, err := paths.ExpandDirArgs(fs, []string{"."})
		require.NoError(t, err)
		assert.Equal(t, []string{".hidden", "a.txt", "b.txt", "sub"}, got)
	})

	t.Run("other args pass through", func(t *testing.T) {
		args := []string{".", "a.txt"}
		got, err := paths.ExpandDirArgs(fs, args)
		require.NoError(t, err)
		assert.Equal(t, args, got)
	})

	t.Run("unreadable directory", func(t *testing.T) {
		// .. escapes the base path and cannot be listed
		_, err := paths.ExpandDirArgs(fs, []string{".."})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestDefaultUndoFile(t *testing.T) {
	t.Setenv("TMPDIR", "/var/tmp/x")
	assert.Equal(t, filepath.Join("/var/tmp/x", "renamer-undo.toml"), paths.DefaultUndoFile())
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "none"))

	assert.Equal(t, "", paths.ConfigFile())

	cfg := filepath.Join(dir, "renamer", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg), 0755))
	require.NoError(t, os.WriteFile(cfg, []byte("editor = \"nano\"\n"), 0644))

	assert.Equal(t, cfg, paths.ConfigFile())
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), link))

	osFs := afero.NewOsFs()
	assert.True(t, paths.Exists(osFs, link))
	assert.False(t, paths.Exists(osFs, filepath.Join(dir, "nowhere")))

	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/a.txt", nil, 0644))
	assert.True(t, paths.Exists(mem, "/a.txt"))
	assert.False(t, paths.Exists(mem, "/b.txt"))
}

func TestCanonical(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, "x"), paths.Canonical("x"))
	assert.Equal(t, filepath.Join(wd, "x"), paths.Canonical("./dir/../x"))
	assert.Equal(t, "/tmp/x", paths.Canonical("/tmp//x"))
}
