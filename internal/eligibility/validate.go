package eligibility

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/saikaranam22/VA-Demo/internal/common"
)

// FieldErrors maps a field name to the message shown next to it.
type FieldErrors map[string]string

// Err returns nil when there are no errors, and otherwise an error matching
// common.ErrValidation that lists every field.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, fe[name]))
	}
	return errors.Wrap(common.ErrValidation, strings.Join(parts, "; "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(fieldNameFromTag)
	return v
}

func fieldNameFromTag(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// ValidateServiceHistory checks every service history question in one pass
// and reports all of the problems at once.
func ValidateServiceHistory(sh ServiceHistory) FieldErrors {
	errs := FieldErrors{}

	err := validate.Struct(sh)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// only reachable on a programming error such as a nil struct
		panic(err)
	}
	for _, fe := range verrs {
		errs[fe.Field()] = fieldMessage(fe)
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	f, _ := LookupField(CategoryServiceHistory, fe.Field())

	switch fe.ActualTag() {
	case "required":
		if f.Required != "" {
			return f.Required
		}
		return "is required"
	case "oneof":
		opts := strings.Split(fe.Param(), " ")
		return fmt.Sprintf("must be one of %s", strings.Join(opts, ", "))
	}
	return "is invalid"
}
