// Package common defines shared sentinel errors used across the eligibility
// core, the wizard and the CLI. Callers should use errors.Is to match these
// values.
package common

import (
	"github.com/cockroachdb/errors"
)

var (
	// Contract violations. These indicate a bug in the caller and are never
	// shown to the user as something to fix.
	ErrInvalidCategory = errors.New("invalid category")
	ErrNoSession       = errors.New("no active session")

	// Answer parsing errors.
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")

	// Step-scoped validation.
	ErrValidation = errors.New("validation error")

	// Navigation errors.
	ErrNotAtSummary = errors.New("start over is only available from the summary")
	ErrNoInput      = errors.New("step takes no answers")
)

// ContractViolation marks err as an assertion failure, so that it escapes
// the user-facing error paths and stops the session.
func ContractViolation(err error, format string, args ...any) error {
	return errors.WithAssertionFailure(errors.Wrapf(err, format, args...))
}

// IsContractViolation reports whether err was produced by ContractViolation.
func IsContractViolation(err error) bool {
	return errors.HasAssertionFailure(err)
}
