// Package engine drives one rename session: it seeds the editor, builds and
// validates the plan, proposes it to the user and applies it once accepted.
package engine

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/executor"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/plan"
	"github.com/arthur-debert/renamer/pkg/types"
	"github.com/arthur-debert/renamer/pkg/validate"
)

const (
	// QuestionExecute is asked before a plan is applied
	QuestionExecute = "Execute these renames?"
	// QuestionUndo is asked before an undo record is applied
	QuestionUndo = "Undo these renames?"
	// MessageAborted is shown when the user declines
	MessageAborted = "Aborting."
)

// Editor lets the user rewrite a list of lines
type Editor interface {
	Edit(ctx context.Context, lines []string) ([]string, error)
}

// Prompter asks the user to pick one selection of menu
type Prompter interface {
	Select(ctx context.Context, question string, menu []types.Selection) (types.Selection, error)
}

// Renderer shows plans and status lines
type Renderer interface {
	ShowPlan(plan, conflicts types.Plan) error
	ShowUndo(plan types.Plan) error
	Message(msg string) error
	Summary(applied int) error
}

// Applier performs the renames of a plan
type Applier interface {
	Execute(ctx context.Context, plan types.Plan) (executor.Result, error)
}

// UndoStore keeps the inverse of the last applied plan
type UndoStore interface {
	Write(inverse types.Plan) error
	Read() (types.Plan, error)
	Load() (types.Plan, error)
}

// Options are the session switches
type Options struct {
	// Force allows destinations that already exist
	Force bool

	// Yes accepts the first proposal without prompting. Unresolved
	// overwrite conflicts become a hard failure.
	Yes bool

	// Plan configures how edited lines become destinations
	Plan plan.Options
}

// Deps are the collaborators of an Engine
type Deps struct {
	Editor    Editor
	Prompter  Prompter
	Renderer  Renderer
	Applier   Applier
	Undo      UndoStore
	Validator *validate.Validator
	Logger    *zerolog.Logger
}

// Outcome reports how a session ended
type Outcome struct {
	State   State
	Applied types.Plan
}

// Engine runs rename and undo sessions
type Engine struct {
	deps    Deps
	opts    Options
	builder *plan.Builder
	logger  zerolog.Logger
}

// New creates an Engine
func New(deps Deps, opts Options) *Engine {
	logger := logging.GetLogger("engine")
	if deps.Logger != nil {
		logger = *deps.Logger
	}
	return &Engine{
		deps:    deps,
		opts:    opts,
		builder: plan.NewBuilder(opts.Plan),
		logger:  logger,
	}
}

// Run edits, proposes and applies renames for the original paths. Every
// validation failure is returned before the filesystem is touched.
func (e *Engine) Run(ctx context.Context, original []string) (Outcome, error) {
	done := logging.LogOperationStart(e.logger, "rename")
	defer done()

	if len(original) == 0 {
		return Outcome{State: StateAborted}, errors.New(errors.ErrNoInput,
			"No input files on stdin or as args. Aborting.")
	}
	if err := e.deps.Validator.CheckInputFiles(original); err != nil {
		return Outcome{State: StateAborted}, err
	}

	shown := e.builder.EditorLines(original)
	seed := shown
	for round := 1; ; round++ {
		edited, err := e.deps.Editor.Edit(ctx, seed)
		if err != nil {
			return Outcome{State: StateAborted}, err
		}

		p, err := e.builder.Build(original, edited)
		if err != nil {
			return Outcome{State: StateAborted}, err
		}
		// files can disappear while the editor is open
		if err := e.deps.Validator.CheckInputFiles(p.Originals()); err != nil {
			return Outcome{State: StateAborted}, err
		}

		conflicts := e.deps.Validator.Conflicts(p)
		blocked := len(conflicts) > 0 && !e.opts.Force
		e.logger.Debug().
			Int("round", round).
			Int("renames", len(p)).
			Int("conflicts", len(conflicts)).
			Bool("blocked", blocked).
			Msg("Proposing plan")

		if err := e.deps.Renderer.ShowPlan(p, conflicts); err != nil {
			return Outcome{State: StateAborted}, errors.Wrap(err, errors.ErrInternal, "could not show plan")
		}

		if e.opts.Yes {
			if err := e.deps.Validator.CheckOverwrites(p, e.opts.Force); err != nil {
				return Outcome{State: StateAborted}, err
			}
			return e.apply(ctx, p, true)
		}

		sel, err := e.deps.Prompter.Select(ctx, QuestionExecute, Menu(blocked))
		if err != nil {
			return Outcome{State: StateAborted}, err
		}
		next, reseed, err := Transition(sel)
		if err != nil {
			return Outcome{State: StateAborted}, err
		}
		e.logger.Debug().
			Str("selection", string(sel)).
			Str("next", next.String()).
			Msg("Selection made")

		switch next {
		case StateExecuted:
			if blocked {
				// the restricted menu never offers Yes
				return Outcome{State: StateAborted}, validate.OverwriteError(conflicts)
			}
			return e.apply(ctx, p, true)
		case StateAborted:
			if blocked {
				return Outcome{State: StateAborted}, validate.OverwriteError(conflicts)
			}
			return Outcome{State: StateAborted}, e.abort()
		}

		if reseed == SeedOriginal {
			seed = shown
		} else {
			seed = edited
		}
	}
}

// Undo replays the undo record. Declining keeps the record; accepting
// consumes it before the renames are applied. No new record is written.
func (e *Engine) Undo(ctx context.Context) (Outcome, error) {
	done := logging.LogOperationStart(e.logger, "undo")
	defer done()

	p, err := e.deps.Undo.Read()
	if err != nil {
		return Outcome{State: StateAborted}, err
	}
	if err := e.deps.Renderer.ShowUndo(p); err != nil {
		return Outcome{State: StateAborted}, errors.Wrap(err, errors.ErrInternal, "could not show undo plan")
	}

	if !e.opts.Yes {
		sel, err := e.deps.Prompter.Select(ctx, QuestionUndo, types.UndoMenu)
		if err != nil {
			return Outcome{State: StateAborted}, err
		}
		next, _, err := Transition(sel)
		if err != nil {
			return Outcome{State: StateAborted}, err
		}
		if next != StateExecuted {
			return Outcome{State: StateAborted}, e.abort()
		}
	}

	p, err = e.deps.Undo.Load()
	if err != nil {
		return Outcome{State: StateAborted}, err
	}
	return e.apply(ctx, p, false)
}

func (e *Engine) apply(ctx context.Context, p types.Plan, record bool) (Outcome, error) {
	result, err := e.deps.Applier.Execute(ctx, p)
	if err != nil {
		return Outcome{State: StateExecuted, Applied: result.Applied}, err
	}

	if record && len(p) > 0 {
		inverse, err := p.Inverse()
		if err != nil {
			return Outcome{State: StateExecuted, Applied: result.Applied},
				errors.Wrap(err, errors.ErrUndoWrite, "could not resolve absolute paths for undo")
		}
		if err := e.deps.Undo.Write(inverse); err != nil {
			return Outcome{State: StateExecuted, Applied: result.Applied}, err
		}
	}

	e.logger.Info().Int("renamed", len(result.Applied)).Msg("Renames applied")
	if err := e.deps.Renderer.Summary(len(result.Applied)); err != nil {
		return Outcome{State: StateExecuted, Applied: result.Applied},
			errors.Wrap(err, errors.ErrInternal, "could not show summary")
	}
	return Outcome{State: StateExecuted, Applied: result.Applied}, nil
}

func (e *Engine) abort() error {
	e.logger.Info().Msg("Aborted by user")
	if err := e.deps.Renderer.Message(MessageAborted); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "could not show message")
	}
	return nil
}
