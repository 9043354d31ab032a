package eligibility

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/saikaranam22/VA-Demo/internal/common"
)

// Action is a state transition request. The set of actions is closed:
// UpdateServiceHistory, UpdateHealthDisability, UpdateSpecialStatus and Reset.
// Actions are passed by value.
type Action interface {
	category() Category
}

// UpdateServiceHistory sets the service history fields that are non-nil.
type UpdateServiceHistory struct {
	Branch           *Branch
	YearsServed      *YearsServed
	ActiveDutyStatus *DutyStatus
}

// UpdateHealthDisability sets the health flags that are non-nil.
type UpdateHealthDisability struct {
	HasInjury                     *bool
	HasPTSD                       *bool
	HasServiceConnectedDisability *bool
}

// UpdateSpecialStatus sets the special status flags that are non-nil.
type UpdateSpecialStatus struct {
	HasPurpleHeart          *bool
	HasMedalOfHonor         *bool
	IsFormerPOW             *bool
	HasCombatZoneDeployment *bool
}

// Reset discards every answer.
type Reset struct{}

func (UpdateServiceHistory) category() Category   { return CategoryServiceHistory }
func (UpdateHealthDisability) category() Category { return CategoryHealthDisability }
func (UpdateSpecialStatus) category() Category    { return CategorySpecialStatus }
func (Reset) category() Category                  { return "" }

// CategoryOf returns the category an action updates, or "" for Reset and nil.
func CategoryOf(a Action) Category {
	if a == nil {
		return ""
	}
	return a.category()
}

// Ptr returns a pointer to v, for building partial updates.
func Ptr[T any](v T) *T {
	return &v
}

// Reduce applies a to s and returns the new state. Only the keys provided by
// an update are replaced; everything else in s is carried over unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case UpdateServiceHistory:
		setIf(&s.ServiceHistory.Branch, a.Branch)
		setIf(&s.ServiceHistory.YearsServed, a.YearsServed)
		setIf(&s.ServiceHistory.ActiveDutyStatus, a.ActiveDutyStatus)
	case UpdateHealthDisability:
		setIf(&s.HealthDisability.HasInjury, a.HasInjury)
		setIf(&s.HealthDisability.HasPTSD, a.HasPTSD)
		setIf(&s.HealthDisability.HasServiceConnectedDisability, a.HasServiceConnectedDisability)
	case UpdateSpecialStatus:
		setIf(&s.SpecialStatus.HasPurpleHeart, a.HasPurpleHeart)
		setIf(&s.SpecialStatus.HasMedalOfHonor, a.HasMedalOfHonor)
		setIf(&s.SpecialStatus.IsFormerPOW, a.IsFormerPOW)
		setIf(&s.SpecialStatus.HasCombatZoneDeployment, a.HasCombatZoneDeployment)
	case Reset:
		return Default()
	}
	return s
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Replace builds an update that copies every field of category c from s.
func Replace(c Category, s State) (Action, error) {
	switch c {
	case CategoryServiceHistory:
		sh := s.ServiceHistory
		return UpdateServiceHistory{
			Branch:           &sh.Branch,
			YearsServed:      &sh.YearsServed,
			ActiveDutyStatus: &sh.ActiveDutyStatus,
		}, nil
	case CategoryHealthDisability:
		hd := s.HealthDisability
		return UpdateHealthDisability{
			HasInjury:                     &hd.HasInjury,
			HasPTSD:                       &hd.HasPTSD,
			HasServiceConnectedDisability: &hd.HasServiceConnectedDisability,
		}, nil
	case CategorySpecialStatus:
		ss := s.SpecialStatus
		return UpdateSpecialStatus{
			HasPurpleHeart:          &ss.HasPurpleHeart,
			HasMedalOfHonor:         &ss.HasMedalOfHonor,
			IsFormerPOW:             &ss.IsFormerPOW,
			HasCombatZoneDeployment: &ss.HasCombatZoneDeployment,
		}, nil
	}
	return nil, common.ContractViolation(common.ErrInvalidCategory, "category %q", c)
}

// Merge combines two updates of the same category. Keys provided by b win.
// A nil a yields b.
func Merge(a, b Action) (Action, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}

	switch x := a.(type) {
	case UpdateServiceHistory:
		if y, ok := b.(UpdateServiceHistory); ok {
			pick(&x.Branch, y.Branch)
			pick(&x.YearsServed, y.YearsServed)
			pick(&x.ActiveDutyStatus, y.ActiveDutyStatus)
			return x, nil
		}
	case UpdateHealthDisability:
		if y, ok := b.(UpdateHealthDisability); ok {
			pick(&x.HasInjury, y.HasInjury)
			pick(&x.HasPTSD, y.HasPTSD)
			pick(&x.HasServiceConnectedDisability, y.HasServiceConnectedDisability)
			return x, nil
		}
	case UpdateSpecialStatus:
		if y, ok := b.(UpdateSpecialStatus); ok {
			pick(&x.HasPurpleHeart, y.HasPurpleHeart)
			pick(&x.HasMedalOfHonor, y.HasMedalOfHonor)
			pick(&x.IsFormerPOW, y.IsFormerPOW)
			pick(&x.HasCombatZoneDeployment, y.HasCombatZoneDeployment)
			return x, nil
		}
	}
	return nil, common.ContractViolation(common.ErrInvalidCategory, "cannot merge %T into %T", b, a)
}

func pick[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

// FieldAction parses one answer given as text into a single-field update.
//
// Flags accept yes/no, y/n, on/off and anything strconv.ParseBool accepts.
// Choices accept either the option value or its label, ignoring case; an
// empty answer clears the choice.
func FieldAction(c Category, name, raw string) (Action, error) {
	if _, err := ParseCategory(string(c)); err != nil {
		return nil, err
	}
	f, ok := LookupField(c, name)
	if !ok {
		return nil, errors.Wrapf(common.ErrUnknownField, "%s has no question %q", c, name)
	}

	switch f.Kind {
	case KindFlag:
		v, err := parseFlag(raw)
		if err != nil {
			return nil, errors.Wrapf(common.ErrInvalidValue, "%s: %q is not a yes/no answer", f.Name, raw)
		}
		return flagAction(f.Name, v), nil
	default:
		v, err := f.parseChoice(raw)
		if err != nil {
			return nil, err
		}
		return choiceAction(f.Name, v), nil
	}
}

func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(raw))
}

func (f Field) parseChoice(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	for _, o := range f.Options {
		if strings.EqualFold(o.Value, raw) || strings.EqualFold(o.Label, raw) {
			return o.Value, nil
		}
	}
	values := make([]string, 0, len(f.Options))
	for _, o := range f.Options {
		values = append(values, o.Value)
	}
	return "", errors.Wrapf(common.ErrInvalidValue, "%s must be one of %s", f.Name, strings.Join(values, ", "))
}

func flagAction(name string, v bool) Action {
	switch name {
	case "hasInjury":
		return UpdateHealthDisability{HasInjury: &v}
	case "hasPTSD":
		return UpdateHealthDisability{HasPTSD: &v}
	case "hasServiceConnectedDisability":
		return UpdateHealthDisability{HasServiceConnectedDisability: &v}
	case "hasPurpleHeart":
		return UpdateSpecialStatus{HasPurpleHeart: &v}
	case "hasMedalOfHonor":
		return UpdateSpecialStatus{HasMedalOfHonor: &v}
	case "isFormerPOW":
		return UpdateSpecialStatus{IsFormerPOW: &v}
	case "hasCombatZoneDeployment":
		return UpdateSpecialStatus{HasCombatZoneDeployment: &v}
	}
	return nil
}

func choiceAction(name, v string) Action {
	switch name {
	case "branch":
		return UpdateServiceHistory{Branch: Ptr(Branch(v))}
	case "yearsServed":
		return UpdateServiceHistory{YearsServed: Ptr(YearsServed(v))}
	case "activeDutyStatus":
		return UpdateServiceHistory{ActiveDutyStatus: Ptr(DutyStatus(v))}
	}
	return nil
}
