package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/saikaranam22/VA-Demo/internal/config"
	"github.com/saikaranam22/VA-Demo/internal/logging"
	"github.com/saikaranam22/VA-Demo/internal/session"
	"github.com/saikaranam22/VA-Demo/internal/wizard"
)

type App struct {
	config      *config.Config
	session     *session.Session
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewApp wires a session to an input and an output stream. Prompts are only
// printed when in is a terminal.
func NewApp(c *config.Config, s *session.Session, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:      c,
		session:     s,
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: interactive(in),
	}
}

// Run shows the landing screen and serves commands until the user leaves.
// A non-nil error means the session hit a contract violation.
func (a *App) Run(ctx context.Context) error {
	a.log.Info(ctx, "session started")
	fmt.Fprintln(a.out, "VA Benefits Eligibility Check (type 'help' for commands)")
	a.renderStep(ctx)

	if err := runREPL(ctx, a, a.prompt, a.reader, a.out); err != nil {
		a.log.Error(ctx, "session aborted", "error", err)
		return err
	}
	a.log.Info(ctx, "session ended", "step", a.session.Current().String())
	return nil
}

func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}
	return fmt.Sprintf("va %s> ", a.status())
}

func (a *App) status() string {
	step := a.session.Current()
	if step == wizard.Landing {
		return "[start]"
	}
	return fmt.Sprintf("[%s %d/%d]", step, step.Number(), wizard.ProgressSteps)
}

func (a *App) help() string {
	switch step := a.session.Current(); {
	case step == wizard.Landing:
		return "Available commands: start, help, exit"
	case step == wizard.Summary:
		return "Available commands: summary, json, back, restart, help, exit"
	default:
		return "Available commands: show, options, set <field> <value>, ask, next, back, json, help, exit"
	}
}
