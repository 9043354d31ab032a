package wizard

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saikaranam22/VA-Demo/internal/common"
	"github.com/saikaranam22/VA-Demo/internal/eligibility"
)

func advance(t *testing.T, s *Sequencer) {
	t.Helper()
	res, err := s.Next()
	require.NoError(t, err)
	require.True(t, res.OK, "blocked on %s: %v", s.Current(), res.Errors)
}

func fillServiceHistory(t *testing.T, s *Sequencer) {
	t.Helper()
	require.NoError(t, s.Set("branch", "army"))
	require.NoError(t, s.Set("yearsServed", "6-10"))
	require.NoError(t, s.Set("activeDutyStatus", "veteran"))
}

func TestSequencer_StartsOnLanding(t *testing.T) {
	s := NewSequencer(eligibility.NewStore())
	assert.Equal(t, Landing, s.Current())
	assert.True(t, s.CanAdvance().OK)

	err := s.Set("branch", "army")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoInput))

	assert.False(t, s.Back())
	assert.Equal(t, Landing, s.Current())
}

func TestSequencer_ServiceHistoryGate(t *testing.T) {
	store := eligibility.NewStore()
	s := NewSequencer(store)
	advance(t, s)
	require.Equal(t, ServiceHistory, s.Current())

	res, err := s.Next()
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Len(t, res.Errors, 3)
	assert.Equal(t, ServiceHistory, s.Current())

	require.NoError(t, s.Set("yearsServed", "3-5"))
	require.NoError(t, s.Set("activeDutyStatus", "retired"))

	res = s.CanAdvance()
	assert.False(t, res.OK)
	assert.Equal(t, eligibility.FieldErrors{"branch": "Please select your branch of service"}, res.Errors)

	// nothing is committed while blocked
	res, err = s.Next()
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, eligibility.Default(), store.State())

	require.NoError(t, s.Set("branch", "Coast Guard"))
	advance(t, s)
	assert.Equal(t, HealthDisability, s.Current())
	assert.Equal(t, eligibility.ServiceHistory{
		Branch:           eligibility.BranchCoastGuard,
		YearsServed:      eligibility.Years3To5,
		ActiveDutyStatus: eligibility.DutyRetired,
	}, store.State().ServiceHistory)
}

func TestSequencer_SetRejectsOtherCategories(t *testing.T) {
	s := NewSequencer(eligibility.NewStore())
	advance(t, s)

	err := s.Set("hasPTSD", "yes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnknownField))

	err = s.Set("branch", "starfleet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidValue))
}

func TestSequencer_BackIsNonDestructive(t *testing.T) {
	store := eligibility.NewStore()
	s := NewSequencer(store)
	advance(t, s)
	fillServiceHistory(t, s)
	advance(t, s)

	require.NoError(t, s.Set("hasInjury", "yes"))
	advance(t, s)
	require.Equal(t, SpecialStatus, s.Current())

	// an uncommitted edit is dropped on back, committed answers stay
	require.NoError(t, s.Set("isFormerPOW", "yes"))
	require.True(t, s.Back())
	require.Equal(t, HealthDisability, s.Current())
	assert.True(t, s.Draft().HealthDisability.HasInjury)
	assert.False(t, store.State().SpecialStatus.IsFormerPOW)

	// back from an invalid step is still allowed
	require.True(t, s.Back())
	require.NoError(t, s.Set("branch", ""))
	assert.False(t, s.CanAdvance().OK)
	require.True(t, s.Back())
	assert.Equal(t, Landing, s.Current())
	assert.Equal(t, eligibility.BranchArmy, store.State().ServiceHistory.Branch)

	// the draft is reloaded from the store on entry
	advance(t, s)
	assert.Equal(t, eligibility.BranchArmy, s.Draft().ServiceHistory.Branch)
}

func TestSequencer_FullRunThenStartOver(t *testing.T) {
	store := eligibility.NewStore()
	s := NewSequencer(store)

	advance(t, s)
	fillServiceHistory(t, s)
	advance(t, s)
	require.NoError(t, s.Set("hasServiceConnectedDisability", "yes"))
	advance(t, s)
	require.NoError(t, s.Set("hasPurpleHeart", "yes"))
	advance(t, s)
	require.Equal(t, Summary, s.Current())

	v := eligibility.Evaluate(store.State())
	assert.True(t, v.IsEligible)
	assert.Equal(t, eligibility.HighestPriority, v.Priority)

	res, err := s.Next()
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, Summary, s.Current())

	require.NoError(t, s.StartOver())
	assert.Equal(t, Landing, s.Current())
	assert.Equal(t, eligibility.Default(), store.State())
	assert.Equal(t, eligibility.Default(), s.Draft())
}

func TestSequencer_StartOverOnlyFromSummary(t *testing.T) {
	store := eligibility.NewStore()
	s := NewSequencer(store)
	advance(t, s)
	fillServiceHistory(t, s)
	advance(t, s)

	err := s.StartOver()
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotAtSummary))
	assert.Equal(t, HealthDisability, s.Current())
	assert.Equal(t, eligibility.BranchArmy, store.State().ServiceHistory.Branch)
}

func TestSequencer_SyncCategory(t *testing.T) {
	store := eligibility.NewStore()
	s := NewSequencer(store)
	advance(t, s)
	fillServiceHistory(t, s)
	advance(t, s)
	require.NoError(t, s.Set("hasPTSD", "yes"))

	store.Dispatch(eligibility.UpdateSpecialStatus{IsFormerPOW: eligibility.Ptr(true)})
	store.Dispatch(eligibility.UpdateServiceHistory{Branch: eligibility.Ptr(eligibility.BranchNavy)})

	require.NoError(t, s.SyncCategory(eligibility.CategorySpecialStatus))
	assert.True(t, s.Draft().SpecialStatus.IsFormerPOW)
	assert.True(t, s.Draft().HealthDisability.HasPTSD)
	assert.Equal(t, eligibility.BranchArmy, s.Draft().ServiceHistory.Branch, "other slices are left alone")

	err := s.SyncCategory("contact")
	require.Error(t, err)
	assert.True(t, common.IsContractViolation(err))
}
