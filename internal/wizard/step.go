package wizard

import (
	"github.com/cockroachdb/errors"

	"github.com/saikaranam22/VA-Demo/internal/eligibility"
)

// Step is a screen of the questionnaire.
type Step int

const (
	Landing Step = iota
	ServiceHistory
	HealthDisability
	SpecialStatus
	Summary
)

// ProgressSteps is the number of numbered steps after the landing screen.
const ProgressSteps = int(Summary)

type stepInfo struct {
	slug     string
	title    string
	category eligibility.Category
}

var steps = [...]stepInfo{
	Landing:          {slug: "landing", title: "Welcome"},
	ServiceHistory:   {slug: "service-history", title: "Service History", category: eligibility.CategoryServiceHistory},
	HealthDisability: {slug: "health-disability", title: "Health & Disability", category: eligibility.CategoryHealthDisability},
	SpecialStatus:    {slug: "special-status", title: "Special Status", category: eligibility.CategorySpecialStatus},
	Summary:          {slug: "eligibility-summary", title: "Eligibility Summary"},
}

// Steps returns the whole journey in order.
func Steps() []Step {
	return []Step{Landing, ServiceHistory, HealthDisability, SpecialStatus, Summary}
}

func (s Step) valid() bool {
	return s >= Landing && s <= Summary
}

func (s Step) String() string {
	if !s.valid() {
		return "unknown"
	}
	return steps[s].slug
}

// Title is the human-readable name of the step.
func (s Step) Title() string {
	if !s.valid() {
		return ""
	}
	return steps[s].title
}

// Number is the 1-based position shown in the progress indicator; the
// landing screen is 0.
func (s Step) Number() int {
	return int(s)
}

// Category returns the answers a step collects. Landing and Summary collect none.
func (s Step) Category() (eligibility.Category, bool) {
	if !s.valid() || steps[s].category == "" {
		return "", false
	}
	return steps[s].category, true
}

// Next returns the step after s. Summary has no next step.
func (s Step) Next() (Step, bool) {
	if !s.valid() || s == Summary {
		return s, false
	}
	return s + 1, true
}

// Prev returns the step before s. Landing has no previous step.
func (s Step) Prev() (Step, bool) {
	if !s.valid() || s == Landing {
		return s, false
	}
	return s - 1, true
}

// ParseStep finds a step by its slug.
func ParseStep(slug string) (Step, bool) {
	for _, s := range Steps() {
		if steps[s].slug == slug {
			return s, true
		}
	}
	return Landing, false
}

// MarshalText writes the step as its slug.
func (s Step) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, errors.Newf("unknown step %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(b []byte) error {
	step, ok := ParseStep(string(b))
	if !ok {
		return errors.Newf("unknown step %q", string(b))
	}
	*s = step
	return nil
}
