// Package prompt asks the user to pick one entry of a selection menu.
//
// Two implementations are provided: Interactive renders an arrow-key menu
// with pterm and needs a terminal on stdin, Line reads a typed answer from
// any reader and is used when stdin carries the file list.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/types"
)

// Interactive shows an arrow-key driven menu
type Interactive struct{}

// NewInteractive creates an interactive prompter
func NewInteractive() *Interactive {
	return &Interactive{}
}

// Select implements the engine prompter
func (p *Interactive) Select(_ context.Context, question string, menu []types.Selection) (types.Selection, error) {
	options := make([]string, len(menu))
	for i, s := range menu {
		options[i] = string(s)
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(options[0]).
		Show(question)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPromptFailed, "could not read selection")
	}

	sel := types.Selection(choice)
	if !types.Contains(menu, sel) {
		return "", errors.Newf(errors.ErrPromptFailed, "unexpected selection %q", choice)
	}
	return sel, nil
}

// Line reads answers such as "y" or "edit" line by line
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a line prompter reading from in and writing to out
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// Select implements the engine prompter. An empty answer picks No when the
// menu offers it; anything unrecognised asks again.
func (p *Line) Select(ctx context.Context, question string, menu []types.Selection) (types.Selection, error) {
	hint := menuHint(menu)
	for {
		if err := ctx.Err(); err != nil {
			return "", errors.Wrap(err, errors.ErrPromptFailed, "prompt interrupted")
		}

		_, _ = fmt.Fprintf(p.out, "%s %s: ", question, hint)
		answer, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || answer == "") {
			_, _ = fmt.Fprintln(p.out)
			return "", errors.Wrap(err, errors.ErrPromptFailed, "could not read selection")
		}

		if strings.TrimSpace(answer) == "" && types.Contains(menu, types.SelectionNo) {
			return types.SelectionNo, nil
		}
		if sel, ok := types.ParseSelection(answer); ok && types.Contains(menu, sel) {
			return sel, nil
		}
		_, _ = fmt.Fprintf(p.out, "Please answer one of: %s\n", hint)
	}
}

// menuHint renders a menu as "[y]es/[n]o/[e]dit"
func menuHint(menu []types.Selection) string {
	parts := make([]string, len(menu))
	for i, s := range menu {
		word := strings.ToLower(string(s))
		parts[i] = "[" + word[:1] + "]" + word[1:]
	}
	return strings.Join(parts, "/")
}
