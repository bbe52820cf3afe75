package testutil_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renamer/pkg/testutil"
	"github.com/arthur-debert/renamer/pkg/types"
)

func TestEnvironment_Isolated(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	path := env.WriteFile("sub/a.txt", "hello")
	assert.Equal(t, env.Path("sub/a.txt"), path)
	assert.True(t, env.Exists("sub/a.txt"))
	assert.Equal(t, "hello", env.ReadFile("sub/a.txt"))
	assert.Equal(t, env.HomeDir, os.Getenv("HOME"))
	assert.False(t, env.UndoExists())

	_, err := os.Stat(path)
	assert.NoError(t, err, "isolated environments use the real filesystem")
}

func TestEnvironment_MemoryOnly(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	env.WriteFile("a.txt", "x")
	assert.True(t, env.Exists("a.txt"))
	assert.Equal(t, []string{"/work/a.txt", "/work/b.txt"}, env.Paths("a.txt", "b.txt"))
}

func TestScriptedDoubles(t *testing.T) {
	ed := &testutil.ScriptedEditor{Results: [][]string{{"b"}}}
	got, err := ed.Edit(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got)
	assert.Equal(t, [][]string{{"a"}}, ed.Seeds)

	_, err = ed.Edit(context.Background(), []string{"a"})
	assert.Error(t, err, "calls past the script fail")

	p := &testutil.ScriptedPrompter{Answers: []types.Selection{types.SelectionNo}}
	sel, err := p.Select(context.Background(), "q?", types.FullMenu)
	require.NoError(t, err)
	assert.Equal(t, types.SelectionNo, sel)
	assert.Equal(t, []string{"q?"}, p.Questions)
}
