package eligibility

import (
	"github.com/saikaranam22/VA-Demo/internal/common"
)

// Branch is a branch of service. The zero value means the question is unanswered.
type Branch string

const (
	BranchArmy          Branch = "army"
	BranchNavy          Branch = "navy"
	BranchAirForce      Branch = "air-force"
	BranchMarines       Branch = "marines"
	BranchCoastGuard    Branch = "coast-guard"
	BranchSpaceForce    Branch = "space-force"
	BranchNationalGuard Branch = "national-guard"
	BranchReserves      Branch = "reserves"
)

// YearsServed is a service-duration bucket.
type YearsServed string

const (
	YearsLessThan1  YearsServed = "less-than-1"
	Years1To2       YearsServed = "1-2"
	Years3To5       YearsServed = "3-5"
	Years6To10      YearsServed = "6-10"
	Years11To20     YearsServed = "11-20"
	YearsMoreThan20 YearsServed = "more-than-20"
)

// DutyStatus is the current service status.
type DutyStatus string

const (
	DutyActive        DutyStatus = "active-duty"
	DutyVeteran       DutyStatus = "veteran"
	DutyNationalGuard DutyStatus = "national-guard"
	DutyReserves      DutyStatus = "reserves"
	DutyRetired       DutyStatus = "retired"
)

type ServiceHistory struct {
	Branch           Branch      `json:"branch" validate:"required,oneof=army navy air-force marines coast-guard space-force national-guard reserves"`
	YearsServed      YearsServed `json:"yearsServed" validate:"required,oneof=less-than-1 1-2 3-5 6-10 11-20 more-than-20"`
	ActiveDutyStatus DutyStatus  `json:"activeDutyStatus" validate:"required,oneof=active-duty veteran national-guard reserves retired"`
}

type HealthDisability struct {
	HasInjury                     bool `json:"hasInjury"`
	HasPTSD                       bool `json:"hasPTSD"`
	HasServiceConnectedDisability bool `json:"hasServiceConnectedDisability"`
}

type SpecialStatus struct {
	HasPurpleHeart          bool `json:"hasPurpleHeart"`
	HasMedalOfHonor         bool `json:"hasMedalOfHonor"`
	IsFormerPOW             bool `json:"isFormerPOW"`
	HasCombatZoneDeployment bool `json:"hasCombatZoneDeployment"`
}

// State is the full set of answers collected in one session.
//
// Every field is a value type: assigning a State copies it completely, so a
// copy handed out by Store.State can never alias the store's own data.
type State struct {
	ServiceHistory   ServiceHistory   `json:"serviceHistory"`
	HealthDisability HealthDisability `json:"healthDisability"`
	SpecialStatus    SpecialStatus    `json:"specialStatus"`
}

// Default returns the state a new session starts with.
func Default() State {
	return State{}
}

// Category names one of the three groups of questions.
type Category string

const (
	CategoryServiceHistory   Category = "serviceHistory"
	CategoryHealthDisability Category = "healthDisability"
	CategorySpecialStatus    Category = "specialStatus"
)

// Categories returns the categories in questionnaire order.
func Categories() []Category {
	return []Category{CategoryServiceHistory, CategoryHealthDisability, CategorySpecialStatus}
}

// ParseCategory checks a category name received from outside the core.
// An unknown name is a contract violation, not a user error.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", common.ContractViolation(common.ErrInvalidCategory, "category %q", name)
}
