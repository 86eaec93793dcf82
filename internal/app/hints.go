package app

import (
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const (
	hintVerifyPackage  = "Verify the package name exists in the sfdx-project.json file."
	hintProjectDir     = "Run the command from inside an sfdx project or pass --project-dir."
	hintTargetUsername = "Pass --targetusername or set a default org with `sfdx force:config:set defaultusername=<alias>`."
	hintAuthorizeOrg   = "Authorize the org with `sfdx force:auth:web:login -a <alias>` and retry."
	hintCycle          = "Remove one of the dependencies listed in the cycle from sfdx-project.json."
	hintSaveSources    = "Re-run with --savesources to keep the converted sources for inspection."
)

// ActionableError carries remediation steps alongside the underlying error.
type ActionableError struct {
	Err     error
	Actions []string
}

func (e *ActionableError) Error() string {
	return e.Err.Error()
}

func (e *ActionableError) Unwrap() error {
	return e.Err
}

func withActions(err error, actions ...string) error {
	if err == nil {
		return nil
	}
	var existing *ActionableError
	if errors.As(err, &existing) {
		existing.Actions = append(existing.Actions, actions...)
		return existing
	}
	return &ActionableError{Err: err, Actions: actions}
}

// Actions returns the remediation steps attached to err, if any.
func Actions(err error) []string {
	var actionable *ActionableError
	if errors.As(err, &actionable) {
		return actionable.Actions
	}
	return nil
}

// Cause strips the ActionableError wrapper so the coded error underneath is
// visible to errbuilder.CodeOf.
func Cause(err error) error {
	var actionable *ActionableError
	if errors.As(err, &actionable) {
		return actionable.Err
	}
	return err
}

// Message returns the short message of a coded error, or its full text.
func Message(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

// FormatError renders err as log lines: the message, the full error when it
// adds detail, then any remediation steps.
func FormatError(err error) []string {
	if err == nil {
		return nil
	}
	cause := Cause(err)
	message := Message(cause)
	lines := []string{message}
	if full := cause.Error(); full != message && strings.TrimSpace(full) != "" {
		lines = append(lines, "details: "+full)
	}
	if actions := Actions(err); len(actions) > 0 {
		lines = append(lines, "Try this:")
		for _, action := range actions {
			lines = append(lines, "  - "+action)
		}
	}
	return lines
}
