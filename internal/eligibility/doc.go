// Package eligibility is the core of the benefits questionnaire.
//
// It holds three pieces:
//
//   - the answer model (State and its three categories) together with the
//     closed set of actions that change it, applied by the pure Reduce;
//   - Store, which owns the answers of a single session;
//   - Evaluate, a pure rule evaluator that turns answers into a Verdict.
//
// The package performs no I/O. Category names and answers coming from a
// presentation layer are checked by ParseCategory and FieldAction; an unknown
// category is reported as a contract violation (see common.IsContractViolation).
package eligibility
