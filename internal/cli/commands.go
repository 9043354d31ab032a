package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/saikaranam22/VA-Demo/internal/common"
	"github.com/saikaranam22/VA-Demo/internal/eligibility"
	"github.com/saikaranam22/VA-Demo/internal/wizard"
)

// Start leaves the landing screen for the first question step.
func (a *App) Start(ctx context.Context) error {
	if a.session.Current() != wizard.Landing {
		fmt.Fprintln(a.out, "Already started. Type 'restart' from the summary to begin again.")
		return nil
	}
	return a.Next(ctx)
}

// Show prints the answers of the current step, edited and committed.
func (a *App) Show(ctx context.Context) error {
	step := a.session.Current()
	if _, ok := step.Category(); !ok {
		a.renderStep(ctx)
		return nil
	}
	fmt.Fprintf(a.out, "Step %d: %s\n", step.Number(), step.Title())
	fmt.Fprintln(a.out, "Current answers:")
	a.renderAnswers(step, a.session.Draft())
	fmt.Fprintln(a.out, "Saved answers:")
	a.renderAnswers(step, a.session.State())
	return nil
}

// Options lists the questions of the current step and their allowed answers.
func (a *App) Options(ctx context.Context) error {
	a.renderOptions(a.session.Current())
	return nil
}

// Set records one answer: set <field> <value...>. The value may contain spaces.
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: set <field> <value>")
	}
	value := strings.Join(args[1:], " ")
	if err := a.session.Set(ctx, args[0], value); err != nil {
		return err
	}
	c, _ := a.session.Current().Category()
	f, _ := eligibility.LookupField(c, args[0])
	fmt.Fprintf(a.out, "%s: %s\n", f.Title, f.Value(a.session.Draft()))
	return nil
}

// Ask walks through every question of the current step. An empty answer
// keeps the current one; an invalid answer asks again.
func (a *App) Ask(ctx context.Context) error {
	c, ok := a.session.Current().Category()
	if !ok {
		return errors.Wrapf(common.ErrNoInput, "%s", a.session.Current().Title())
	}

	for _, f := range eligibility.Fields(c) {
		for {
			answer, err := GetSimpleText(a.reader, a.question(f), a.out)
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)
				return nil
			}
			if err != nil {
				return err
			}
			if answer == "" {
				break
			}
			if err := a.session.Set(ctx, f.Name, answer); err != nil {
				if !errors.Is(err, common.ErrInvalidValue) {
					return err
				}
				fmt.Fprintln(a.out, "Error:", err)
				continue
			}
			break
		}
	}
	a.renderAnswers(a.session.Current(), a.session.Draft())
	fmt.Fprintln(a.out, "Type 'next' to continue.")
	return nil
}

func (a *App) question(f eligibility.Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s", f.Title, f.Question)
	if f.Kind == eligibility.KindFlag {
		b.WriteString(" [yes/no]")
	} else {
		values := make([]string, 0, len(f.Options))
		for _, o := range f.Options {
			values = append(values, o.Value)
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(values, ", "))
	}
	if cur := f.Value(a.session.Draft()); cur != "" {
		fmt.Fprintf(&b, " (current: %s)", cur)
	}
	return b.String()
}

// Next commits the current step and shows the following one. Validation
// errors are printed in question order and the user stays on the step.
func (a *App) Next(ctx context.Context) error {
	step := a.session.Current()
	if step == wizard.Summary {
		fmt.Fprintln(a.out, "This is the last step. Type 'back' to review or 'restart' to start over.")
		return nil
	}

	res, err := a.session.Next(ctx)
	if err != nil {
		return err
	}
	if !res.OK {
		a.renderErrors(step, res.Errors)
		return nil
	}
	a.renderStep(ctx)
	return nil
}

// Back returns to the previous step. Unsaved edits of the current step are dropped.
func (a *App) Back(ctx context.Context) error {
	moved, err := a.session.Back(ctx)
	if err != nil {
		return err
	}
	if !moved {
		fmt.Fprintln(a.out, "Already at the start.")
		return nil
	}
	a.renderStep(ctx)
	return nil
}

// Summary prints the eligibility verdict. It is only available on the summary step.
func (a *App) Summary(ctx context.Context) error {
	if a.session.Current() != wizard.Summary {
		return errors.Newf("the summary is shown after step %d, you are on step %d",
			wizard.SpecialStatus.Number(), a.session.Current().Number())
	}
	a.renderSummary(ctx)
	return nil
}

// JSON prints the session snapshot as JSON.
func (a *App) JSON(ctx context.Context) error {
	a.renderJSON(ctx)
	return nil
}

// Restart clears every answer and returns to the landing screen.
func (a *App) Restart(ctx context.Context) error {
	if err := a.session.StartOver(ctx); err != nil {
		if errors.Is(err, common.ErrNotAtSummary) {
			return errors.New("restart is available from the summary")
		}
		return err
	}
	fmt.Fprintln(a.out, "All answers cleared.")
	a.renderStep(ctx)
	return nil
}
