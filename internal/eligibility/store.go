package eligibility

import (
	"github.com/saikaranam22/VA-Demo/internal/common"
)

// Store owns the answers of one session. It does no I/O and no locking:
// a store is only ever driven by its session's single user.
type Store struct {
	state State
}

// NewStore returns a store holding the default answers.
func NewStore() *Store {
	return &Store{state: Default()}
}

// State returns a copy of the current answers.
func (s *Store) State() State {
	return s.state
}

// Dispatch applies a to the stored answers.
func (s *Store) Dispatch(a Action) {
	s.state = Reduce(s.state, a)
}

// UpdateCategory merges a partial update into category c. The update must
// belong to c; anything else is a caller bug.
func (s *Store) UpdateCategory(c Category, a Action) error {
	if _, err := ParseCategory(string(c)); err != nil {
		return err
	}
	if got := CategoryOf(a); got != c {
		return common.ContractViolation(common.ErrInvalidCategory, "update for %q sent to %q", got, c)
	}
	s.Dispatch(a)
	return nil
}

// Reset restores the default answers.
func (s *Store) Reset() {
	s.Dispatch(Reset{})
}
