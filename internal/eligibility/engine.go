package eligibility

import (
	"github.com/cockroachdb/errors"
)

// Priority is the enrollment priority tier of a verdict. Higher values win.
type Priority int

const (
	Standard Priority = iota
	HighPriority
	HighestPriority
)

var priorityNames = map[Priority]string{
	Standard:        "Standard",
	HighPriority:    "High Priority",
	HighestPriority: "Highest Priority",
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "Unknown"
}

func (p Priority) MarshalText() ([]byte, error) {
	if _, ok := priorityNames[p]; !ok {
		return nil, errors.Newf("unknown priority %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(b []byte) error {
	for v, name := range priorityNames {
		if name == string(b) {
			*p = v
			return nil
		}
	}
	return errors.Newf("unknown priority %q", string(b))
}

// Verdict is the estimated outcome for a set of answers. It is derived on
// every request and never stored.
type Verdict struct {
	IsEligible bool     `json:"isEligible"`
	Reasons    []string `json:"reasons"`
	Priority   Priority `json:"priorityLevel"`
}

// Headline is the one-line summary shown above the verdict details.
func (v Verdict) Headline() string {
	if v.IsEligible {
		return "You're Likely Eligible for VA Benefits!"
	}
	return "You May Be Eligible for VA Benefits"
}

const (
	ReasonQualifiedService   = "Qualified military service"
	ReasonServiceDisability  = "Service-connected disability"
	ReasonCombatDecoration   = "Combat decoration recipient"
	ReasonFormerPOW          = "Former Prisoner of War"
	ReasonHealthCondition    = "Service-related health condition"
	ReasonCombatZoneDeployed = "Combat zone deployment"
)

type rule struct {
	reason   string
	priority Priority
	applies  func(State) bool
}

// rules run in this order and the reasons are reported in this order.
// A rule can only raise the priority of the verdict.
var rules = []rule{
	{
		reason:   ReasonQualifiedService,
		priority: Standard,
		applies: func(s State) bool {
			switch s.ServiceHistory.ActiveDutyStatus {
			case DutyVeteran, DutyRetired, DutyActive:
				return true
			}
			return false
		},
	},
	{
		reason:   ReasonServiceDisability,
		priority: HighPriority,
		applies: func(s State) bool {
			return s.HealthDisability.HasServiceConnectedDisability
		},
	},
	{
		reason:   ReasonCombatDecoration,
		priority: HighestPriority,
		applies: func(s State) bool {
			return s.SpecialStatus.HasPurpleHeart || s.SpecialStatus.HasMedalOfHonor
		},
	},
	{
		reason:   ReasonFormerPOW,
		priority: HighestPriority,
		applies: func(s State) bool {
			return s.SpecialStatus.IsFormerPOW
		},
	},
	{
		reason:   ReasonHealthCondition,
		priority: Standard,
		applies: func(s State) bool {
			return s.HealthDisability.HasInjury || s.HealthDisability.HasPTSD
		},
	},
	{
		reason:   ReasonCombatZoneDeployed,
		priority: Standard,
		applies: func(s State) bool {
			return s.SpecialStatus.HasCombatZoneDeployment
		},
	},
}

// Evaluate derives the verdict for s. It has no side effects and always
// returns a verdict.
func Evaluate(s State) Verdict {
	v := Verdict{
		Reasons:  make([]string, 0, len(rules)),
		Priority: Standard,
	}
	for _, r := range rules {
		if !r.applies(s) {
			continue
		}
		v.IsEligible = true
		v.Reasons = append(v.Reasons, r.reason)
		if r.priority > v.Priority {
			v.Priority = r.priority
		}
	}
	return v
}
