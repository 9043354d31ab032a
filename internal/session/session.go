// Package session ties one user's answers, step position and logger together.
//
// A Session is created once per interactive run and handed explicitly to the
// presentation layer; nothing is looked up globally. Sessions share nothing,
// so any number of them may exist side by side, but a single session must
// only be driven by one goroutine at a time.
//
// Methods that change the session return an error, and a nil *Session yields
// common.ErrNoSession marked as a contract violation. Read-only accessors
// panic with that same error instead, since there is nothing sensible to
// return.
package session

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/saikaranam22/VA-Demo/internal/common"
	"github.com/saikaranam22/VA-Demo/internal/eligibility"
	"github.com/saikaranam22/VA-Demo/internal/logging"
	"github.com/saikaranam22/VA-Demo/internal/wizard"
)

type Session struct {
	id    uuid.UUID
	store *eligibility.Store
	seq   *wizard.Sequencer
	log   logging.Logger
}

// New starts a session on the landing step with empty answers.
func New(log logging.Logger) *Session {
	id := uuid.New()
	store := eligibility.NewStore()
	return &Session{
		id:    id,
		store: store,
		seq:   wizard.NewSequencer(store),
		log:   log.With("session_id", id.String()),
	}
}

func noSession(op string) error {
	return common.ContractViolation(common.ErrNoSession, "%s", op)
}

func (s *Session) must(op string) {
	if s == nil {
		panic(noSession(op))
	}
}

func (s *Session) ID() uuid.UUID {
	s.must("id")
	return s.id
}

// State returns a copy of the committed answers.
func (s *Session) State() eligibility.State {
	s.must("state")
	return s.store.State()
}

// Draft returns the uncommitted answers of the current step.
func (s *Session) Draft() eligibility.State {
	s.must("draft")
	return s.seq.Draft()
}

func (s *Session) Current() wizard.Step {
	s.must("current")
	return s.seq.Current()
}

// Evaluate computes the verdict for the committed answers.
func (s *Session) Evaluate(ctx context.Context) eligibility.Verdict {
	s.must("evaluate")
	v := eligibility.Evaluate(s.store.State())
	s.log.Debug(ctx, "verdict evaluated",
		"eligible", v.IsEligible, "priority", v.Priority.String(), "reasons", len(v.Reasons))
	return v
}

// UpdateCategory merges answers given as field name to text into the named
// category. All fields are parsed before anything is stored, so a bad field
// leaves the answers untouched. If the category belongs to the current step,
// that part of the draft is reloaded; unsaved edits elsewhere are kept.
func (s *Session) UpdateCategory(ctx context.Context, name string, fields map[string]string) error {
	if s == nil {
		return noSession("update category")
	}
	c, err := eligibility.ParseCategory(name)
	if err != nil {
		s.log.Error(ctx, "update for unknown category", "category", name, "error", err)
		return err
	}

	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)

	var merged eligibility.Action
	for _, f := range names {
		a, err := eligibility.FieldAction(c, f, fields[f])
		if err != nil {
			return err
		}
		if merged, err = eligibility.Merge(merged, a); err != nil {
			return err
		}
	}
	if merged == nil {
		return nil
	}

	if err := s.store.UpdateCategory(c, merged); err != nil {
		return err
	}
	if cur, ok := s.seq.Current().Category(); ok && cur == c {
		if err := s.seq.SyncCategory(c); err != nil {
			return err
		}
	}
	s.log.Info(ctx, "category updated", "category", string(c), "fields", len(names))
	return nil
}

// Reset discards every answer. The current step is kept.
func (s *Session) Reset(ctx context.Context) error {
	if s == nil {
		return noSession("reset")
	}
	s.store.Reset()
	s.seq.Sync()
	s.log.Info(ctx, "answers reset")
	return nil
}

// CanAdvance reports whether step's answers pass its validation gate. The
// current step is checked against its draft, any other step against the
// committed answers.
func (s *Session) CanAdvance(step wizard.Step) (wizard.Result, error) {
	if s == nil {
		return wizard.Result{}, noSession("can advance")
	}
	if step == s.seq.Current() {
		return s.seq.CanAdvance(), nil
	}
	return wizard.Check(step, s.store.State()), nil
}

// Set records one answer in the current step's draft.
func (s *Session) Set(ctx context.Context, field, value string) error {
	if s == nil {
		return noSession("set")
	}
	if err := s.seq.Set(field, value); err != nil {
		s.log.Debug(ctx, "answer rejected", "step", s.seq.Current().String(), "field", field, "error", err)
		return err
	}
	s.log.Debug(ctx, "answer recorded", "step", s.seq.Current().String(), "field", field)
	return nil
}

// Next commits the current step and moves forward when it validates.
func (s *Session) Next(ctx context.Context) (wizard.Result, error) {
	if s == nil {
		return wizard.Result{}, noSession("next")
	}
	from := s.seq.Current()
	res, err := s.seq.Next()
	if err != nil {
		s.log.Error(ctx, "commit failed", "step", from.String(), "error", err)
		return res, err
	}
	if !res.OK {
		s.log.Info(ctx, "step blocked", "step", from.String(), "errors", len(res.Errors))
		return res, nil
	}
	s.log.Info(ctx, "step completed", "from", from.String(), "to", s.seq.Current().String())
	return res, nil
}

// Back moves to the previous step without validating. It reports false on
// the landing step.
func (s *Session) Back(ctx context.Context) (bool, error) {
	if s == nil {
		return false, noSession("back")
	}
	from := s.seq.Current()
	if !s.seq.Back() {
		return false, nil
	}
	s.log.Info(ctx, "stepped back", "from", from.String(), "to", s.seq.Current().String())
	return true, nil
}

// StartOver clears the answers and returns to the landing step. Only
// allowed from the summary.
func (s *Session) StartOver(ctx context.Context) error {
	if s == nil {
		return noSession("start over")
	}
	if err := s.seq.StartOver(); err != nil {
		return err
	}
	s.log.Info(ctx, "started over")
	return nil
}

// Snapshot is a read-only view of a session, suitable for JSON output.
type Snapshot struct {
	ID      string              `json:"sessionId"`
	Step    wizard.Step         `json:"step"`
	State   eligibility.State   `json:"state"`
	Verdict eligibility.Verdict `json:"verdict"`
}

func (s *Session) Snapshot(ctx context.Context) Snapshot {
	s.must("snapshot")
	return Snapshot{
		ID:      s.id.String(),
		Step:    s.seq.Current(),
		State:   s.store.State(),
		Verdict: s.Evaluate(ctx),
	}
}
