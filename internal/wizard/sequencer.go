package wizard

import (
	"github.com/cockroachdb/errors"

	"github.com/saikaranam22/VA-Demo/internal/common"
	"github.com/saikaranam22/VA-Demo/internal/eligibility"
)

// Sequencer walks one user through the steps.
//
// On entering a step it copies the stored answers into a draft. Edits go to
// the draft only; the draft's category is written back to the store when the
// user moves forward past a valid step. Moving back never validates and never
// touches the store, so answers already committed survive.
type Sequencer struct {
	store *eligibility.Store
	step  Step
	draft eligibility.State
}

func NewSequencer(store *eligibility.Store) *Sequencer {
	s := &Sequencer{store: store}
	s.enter(Landing)
	return s
}

func (s *Sequencer) enter(step Step) {
	s.step = step
	s.Sync()
}

// Sync reloads the draft from the store, dropping uncommitted edits.
func (s *Sequencer) Sync() {
	s.draft = s.store.State()
}

// SyncCategory reloads only category c of the draft from the store. Edits
// to the other categories are kept.
func (s *Sequencer) SyncCategory(c eligibility.Category) error {
	a, err := eligibility.Replace(c, s.store.State())
	if err != nil {
		return err
	}
	s.draft = eligibility.Reduce(s.draft, a)
	return nil
}

// Current returns the step the user is on.
func (s *Sequencer) Current() Step {
	return s.step
}

// Draft returns the uncommitted answers of the current step.
func (s *Sequencer) Draft() eligibility.State {
	return s.draft
}

// Set records one answer in the draft of the current step.
func (s *Sequencer) Set(field, raw string) error {
	c, ok := s.step.Category()
	if !ok {
		return errors.Wrapf(common.ErrNoInput, "%s", s.step.Title())
	}
	a, err := eligibility.FieldAction(c, field, raw)
	if err != nil {
		return err
	}
	s.draft = eligibility.Reduce(s.draft, a)
	return nil
}

// CanAdvance validates the draft of the current step.
func (s *Sequencer) CanAdvance() Result {
	return Check(s.step, s.draft)
}

// Next moves forward when the current step validates. The draft is committed
// to the store before the move. A blocked move returns the failing result
// and leaves the step and the draft as they were.
func (s *Sequencer) Next() (Result, error) {
	res := s.CanAdvance()
	if !res.OK {
		return res, nil
	}

	if c, ok := s.step.Category(); ok {
		a, err := eligibility.Replace(c, s.draft)
		if err != nil {
			return Result{}, err
		}
		if err := s.store.UpdateCategory(c, a); err != nil {
			return Result{}, err
		}
	}

	next, _ := s.step.Next()
	s.enter(next)
	return res, nil
}

// Back moves to the previous step. It returns false on the landing step.
func (s *Sequencer) Back() bool {
	prev, ok := s.step.Prev()
	if !ok {
		return false
	}
	s.enter(prev)
	return true
}

// StartOver clears every answer and returns to the landing step. It is only
// offered on the summary.
func (s *Sequencer) StartOver() error {
	if s.step != Summary {
		return errors.Wrapf(common.ErrNotAtSummary, "on %s", s.step)
	}
	s.store.Reset()
	s.enter(Landing)
	return nil
}
