package eligibility

import "strings"

// FieldKind tells the presentation layer how to ask a question.
type FieldKind int

const (
	KindChoice FieldKind = iota
	KindFlag
)

// Option is one allowed answer of a choice field.
type Option struct {
	Value string
	Label string
}

// Field describes a single question. Name is the JSON key of the answer.
type Field struct {
	Category Category
	Name     string
	Title    string
	Question string
	Kind     FieldKind
	Options  []Option
	// Required is the message shown when a required choice is left empty.
	Required string
}

var fields = []Field{
	{
		Category: CategoryServiceHistory,
		Name:     "branch",
		Title:    "Branch of Service",
		Question: "Which branch did you serve in?",
		Kind:     KindChoice,
		Options: []Option{
			{string(BranchArmy), "Army"},
			{string(BranchNavy), "Navy"},
			{string(BranchAirForce), "Air Force"},
			{string(BranchMarines), "Marines"},
			{string(BranchCoastGuard), "Coast Guard"},
			{string(BranchSpaceForce), "Space Force"},
			{string(BranchNationalGuard), "National Guard"},
			{string(BranchReserves), "Reserves"},
		},
		Required: "Please select your branch of service",
	},
	{
		Category: CategoryServiceHistory,
		Name:     "yearsServed",
		Title:    "Years of Service",
		Question: "How long did you serve?",
		Kind:     KindChoice,
		Options: []Option{
			{string(YearsLessThan1), "Less than 1 year"},
			{string(Years1To2), "1-2 years"},
			{string(Years3To5), "3-5 years"},
			{string(Years6To10), "6-10 years"},
			{string(Years11To20), "11-20 years"},
			{string(YearsMoreThan20), "More than 20 years"},
		},
		Required: "Please select your years of service",
	},
	{
		Category: CategoryServiceHistory,
		Name:     "activeDutyStatus",
		Title:    "Current Status",
		Question: "What is your current duty status?",
		Kind:     KindChoice,
		Options: []Option{
			{string(DutyActive), "Active Duty"},
			{string(DutyVeteran), "Veteran (Discharged)"},
			{string(DutyNationalGuard), "National Guard"},
			{string(DutyReserves), "Reserves"},
			{string(DutyRetired), "Military Retired"},
		},
		Required: "Please select your duty status",
	},
	{
		Category: CategoryHealthDisability,
		Name:     "hasInjury",
		Title:    "Service-Related Injury or Illness",
		Question: "Do you have any injuries or illnesses that were caused or made worse by your military service?",
		Kind:     KindFlag,
	},
	{
		Category: CategoryHealthDisability,
		Name:     "hasPTSD",
		Title:    "PTSD or Mental Health Conditions",
		Question: "Do you have PTSD or other mental health conditions related to your military service?",
		Kind:     KindFlag,
	},
	{
		Category: CategoryHealthDisability,
		Name:     "hasServiceConnectedDisability",
		Title:    "VA Disability Rating",
		Question: "Do you currently have a VA disability rating for any condition?",
		Kind:     KindFlag,
	},
	{
		Category: CategorySpecialStatus,
		Name:     "hasPurpleHeart",
		Title:    "Purple Heart Recipient",
		Question: "Have you been awarded the Purple Heart medal?",
		Kind:     KindFlag,
	},
	{
		Category: CategorySpecialStatus,
		Name:     "hasMedalOfHonor",
		Title:    "Medal of Honor Recipient",
		Question: "Have you been awarded the Medal of Honor?",
		Kind:     KindFlag,
	},
	{
		Category: CategorySpecialStatus,
		Name:     "isFormerPOW",
		Title:    "Former Prisoner of War",
		Question: "Were you ever held as a prisoner of war during your military service?",
		Kind:     KindFlag,
	},
	{
		Category: CategorySpecialStatus,
		Name:     "hasCombatZoneDeployment",
		Title:    "Combat Zone Deployment",
		Question: "Have you been deployed to a combat zone or served in hostile territory?",
		Kind:     KindFlag,
	},
}

// Fields returns the questions of a category in display order.
func Fields(c Category) []Field {
	var out []Field
	for _, f := range fields {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

// LookupField finds a field of category c by name, ignoring case.
func LookupField(c Category, name string) (Field, bool) {
	for _, f := range fields {
		if f.Category == c && strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// Label returns the display label for a choice value, or the value itself.
func (f Field) Label(value string) string {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// Value returns the current answer to f in s, formatted for display.
func (f Field) Value(s State) string {
	switch f.Name {
	case "branch":
		return f.Label(string(s.ServiceHistory.Branch))
	case "yearsServed":
		return f.Label(string(s.ServiceHistory.YearsServed))
	case "activeDutyStatus":
		return f.Label(string(s.ServiceHistory.ActiveDutyStatus))
	case "hasInjury":
		return yesNo(s.HealthDisability.HasInjury)
	case "hasPTSD":
		return yesNo(s.HealthDisability.HasPTSD)
	case "hasServiceConnectedDisability":
		return yesNo(s.HealthDisability.HasServiceConnectedDisability)
	case "hasPurpleHeart":
		return yesNo(s.SpecialStatus.HasPurpleHeart)
	case "hasMedalOfHonor":
		return yesNo(s.SpecialStatus.HasMedalOfHonor)
	case "isFormerPOW":
		return yesNo(s.SpecialStatus.IsFormerPOW)
	case "hasCombatZoneDeployment":
		return yesNo(s.SpecialStatus.HasCombatZoneDeployment)
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
