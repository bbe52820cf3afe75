package validate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/types"
	"github.com/arthur-debert/renamer/pkg/validate"
)

func memFS(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte(f), 0644))
	}
	return fs
}

func TestCheckInputFiles(t *testing.T) {
	fs := memFS(t, "/w/a.txt", "/w/b.txt")
	v := validate.New(fs)

	t.Run("all present", func(t *testing.T) {
		assert.NoError(t, v.CheckInputFiles([]string{"/w/a.txt", "/w/b.txt"}))
	})

	t.Run("missing files are all listed", func(t *testing.T) {
		err := v.CheckInputFiles([]string{"/w/a.txt", "/w/x", "/w/y"})
		require.Error(t, err)
		assert.Equal(t, errors.ErrNonexistentInputFiles, errors.GetErrorCode(err))
		assert.Equal(t, []string{"/w/x", "/w/y"}, errors.GetPaths(err))
	})

	t.Run("duplicate sources", func(t *testing.T) {
		err := v.CheckInputFiles([]string{"/w/a.txt", "/w/b.txt", "/w/a.txt", "/w/./b.txt"})
		require.Error(t, err)
		assert.Equal(t, errors.ErrDuplicateInputFiles, errors.GetErrorCode(err))
		assert.Equal(t, []string{"/w/a.txt", "/w/b.txt"}, errors.GetPaths(err))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.NoError(t, v.CheckInputFiles(nil))
	})
}

func TestCheckOverwrites(t *testing.T) {
	fs := memFS(t, "/w/a.txt", "/w/b.txt", "/w/c.txt", "/w/d.txt")
	v := validate.New(fs)

	plan := types.Plan{
		{Original: "/w/a.txt", New: "/w/new.txt"},
		{Original: "/w/b.txt", New: "/w/c.txt"},
		{Original: "/w/x.txt", New: "/w/d.txt"},
	}

	t.Run("conflicts listed", func(t *testing.T) {
		err := v.CheckOverwrites(plan, false)
		require.Error(t, err)
		assert.Equal(t, errors.ErrOverwriteConflict, errors.GetErrorCode(err))
		assert.Equal(t, []string{"/w/c.txt", "/w/d.txt"}, errors.GetPaths(err))
		assert.Contains(t, err.Error(), "Refusing to overwrite existing files")
	})

	t.Run("force skips the check", func(t *testing.T) {
		assert.NoError(t, v.CheckOverwrites(plan, true))
	})

	t.Run("no conflicts", func(t *testing.T) {
		assert.NoError(t, v.CheckOverwrites(plan[:1], false))
		assert.Empty(t, v.Conflicts(plan[:1]))
	})

	t.Run("conflicts keep plan order", func(t *testing.T) {
		assert.Equal(t, types.Plan{plan[1], plan[2]}, v.Conflicts(plan))
	})
}

func TestExists_BrokenSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), link))

	v := validate.New(afero.NewOsFs())
	assert.True(t, v.Exists(link))
	assert.False(t, v.Exists(filepath.Join(dir, "nowhere")))
}
