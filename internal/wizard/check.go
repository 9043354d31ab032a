package wizard

import (
	"github.com/saikaranam22/VA-Demo/internal/eligibility"
)

// Result is the outcome of a validation gate. Errors is keyed by field name.
type Result struct {
	OK     bool
	Errors eligibility.FieldErrors
}

// Check reports whether the answers in s allow leaving step forward. Only the
// service history step has required questions. Summary is the last step and
// never passes; every other step always does.
func Check(step Step, s eligibility.State) Result {
	switch step {
	case ServiceHistory:
		errs := eligibility.ValidateServiceHistory(s.ServiceHistory)
		return Result{OK: len(errs) == 0, Errors: errs}
	case Summary:
		return Result{OK: false, Errors: eligibility.FieldErrors{}}
	}
	return Result{OK: true, Errors: eligibility.FieldErrors{}}
}
