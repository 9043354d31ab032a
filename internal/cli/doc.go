// Package cli provides the interactive command-line front end of the VA
// benefits eligibility check.
//
// It renders whatever the session exposes and turns typed commands into
// session calls. Typical flow: start on the landing screen, answer the
// service history, health and special status questions with set or ask,
// move with next and back, and read the estimate on the summary.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// the session reports a contract violation. See App and runREPL for details.
package cli
