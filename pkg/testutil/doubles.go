// pkg/testutil/doubles.go
// DEPENDENCIES: pkg/types
// PURPOSE: Scripted editor and prompter for session tests

package testutil

import (
	"context"
	"fmt"

	"github.com/arthur-debert/renamer/pkg/types"
)

// ScriptedEditor returns one scripted result per Edit call and records the
// lines each call was seeded with
type ScriptedEditor struct {
	Results [][]string
	Err     error
	Seeds   [][]string

	// OnEdit runs before a result is returned, e.g. to change files
	// while the editor is "open"
	OnEdit func(call int)
}

// Edit implements the engine editor
func (e *ScriptedEditor) Edit(_ context.Context, lines []string) ([]string, error) {
	call := len(e.Seeds)
	e.Seeds = append(e.Seeds, append([]string(nil), lines...))
	if e.OnEdit != nil {
		e.OnEdit(call)
	}
	if e.Err != nil {
		return nil, e.Err
	}
	if call >= len(e.Results) {
		return nil, fmt.Errorf("unexpected editor call %d", call+1)
	}
	return e.Results[call], nil
}

// ScriptedPrompter answers with one scripted selection per call and
// records the question and menu of each call
type ScriptedPrompter struct {
	Answers   []types.Selection
	Questions []string
	Menus     [][]types.Selection
}

// Select implements the engine prompter
func (p *ScriptedPrompter) Select(_ context.Context, question string, menu []types.Selection) (types.Selection, error) {
	call := len(p.Menus)
	p.Questions = append(p.Questions, question)
	p.Menus = append(p.Menus, menu)
	if call >= len(p.Answers) {
		return "", fmt.Errorf("unexpected prompt %d: %s", call+1, question)
	}
	return p.Answers[call], nil
}
