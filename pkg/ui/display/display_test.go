package display_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renamer/pkg/output/styles"
	"github.com/arthur-debert/renamer/pkg/types"
	"github.com/arthur-debert/renamer/pkg/ui/display"
)

func TestShowPlan_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := display.NewTextRenderer(&buf, display.Options{})

	plan := types.Plan{{Original: "a.txt", New: "b.txt"}, {Original: "c", New: "d"}}
	require.NoError(t, r.ShowPlan(plan, nil))

	expected := "\n" +
		"The following replacements were found\n\n" +
		"a.txt -> b.txt\n" +
		"c -> d\n\n"
	assert.Equal(t, expected, buf.String())
}

func TestShowPlan_ConflictsFirstAndFlagged(t *testing.T) {
	var buf bytes.Buffer
	r := display.NewTextRenderer(&buf, display.Options{})

	plan := types.Plan{
		{Original: "a.txt", New: "x.txt"},
		{Original: "b.txt", New: "c.txt"},
	}
	conflicts := types.Plan{{Original: "b.txt", New: "c.txt"}}
	require.NoError(t, r.ShowPlan(plan, conflicts))

	expected := "\n" +
		"The following replacements overwrite existing files:\n\n" +
		"! b.txt -> c.txt\n\n" +
		"The following replacements were found\n\n" +
		"a.txt -> x.txt\n\n"
	assert.Equal(t, expected, buf.String())
}

func TestShowPlan_OnlyConflicts(t *testing.T) {
	var buf bytes.Buffer
	r := display.NewTextRenderer(&buf, display.Options{})

	conflicts := types.Plan{{Original: "b.txt", New: "c.txt"}}
	require.NoError(t, r.ShowPlan(conflicts, conflicts))

	assert.NotContains(t, buf.String(), display.HeaderFound)
	assert.Contains(t, buf.String(), "! b.txt -> c.txt")
}

func TestShowPlan_PrettyDiffPlain(t *testing.T) {
	var buf bytes.Buffer
	r := display.NewTextRenderer(&buf, display.Options{PrettyDiff: true})

	require.NoError(t, r.ShowPlan(types.Plan{{Original: "a.txt", New: "b.txt"}}, nil))
	assert.Contains(t, buf.String(), "[-a-]{+b+}.txt\n")
}

func TestShowPlan_Colored(t *testing.T) {
	var buf bytes.Buffer
	lr := lipgloss.NewRenderer(&buf)
	lr.SetColorProfile(termenv.TrueColor)

	r := display.NewTextRenderer(&buf, display.Options{Color: true, PrettyDiff: true, Styles: styles.Default(lr)})
	require.NoError(t, r.ShowPlan(types.Plan{{Original: "a.txt", New: "b.txt"}}, nil))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "[-", "colored diff does not use text markers")
	assert.Contains(t, out, ".txt")
}

func TestShowUndo(t *testing.T) {
	var buf bytes.Buffer
	r := display.NewTextRenderer(&buf, display.Options{})

	require.NoError(t, r.ShowUndo(types.Plan{{Original: "/tmp/c.txt", New: "/tmp/b.txt"}}))
	assert.Equal(t, "\n"+display.HeaderUndo+"\n\n/tmp/c.txt -> /tmp/b.txt\n\n", buf.String())
}

func TestMessageAndSummary(t *testing.T) {
	var buf bytes.Buffer
	r := display.NewTextRenderer(&buf, display.Options{})

	require.NoError(t, r.Message("Aborting."))
	require.NoError(t, r.Summary(2))
	assert.Equal(t, "Aborting.\nRenamed 2 file(s).\n", buf.String())
}

func TestColorEnabled_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.False(t, display.ColorEnabled(f))
}

func TestColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, display.ColorEnabled(os.Stdout))
}
