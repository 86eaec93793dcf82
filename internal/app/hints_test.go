package app

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	err := withActions(errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("The ghost package doesn't exist"), hintVerifyPackage)

	lines := FormatError(err)
	want := []string{
		"The ghost package doesn't exist",
		"Try this:",
		"  - Verify the package name exists in the sfdx-project.json file.",
	}
	if diff := cmp.Diff(want[0], lines[0]); diff != "" {
		t.Fatalf("unexpected message (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[1:], lines[len(lines)-2:]); diff != "" {
		t.Fatalf("unexpected actions (-want +got):\n%s", diff)
	}
}

func TestFormatErrorPlain(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatError(errors.New("boom")))
	assert.Nil(t, FormatError(nil))
}

func TestWithActionsAppends(t *testing.T) {
	base := errors.New("deploy failed")
	err := withActions(withActions(base, "first"), "second")

	assert.Equal(t, []string{"first", "second"}, Actions(err))
	assert.Equal(t, base, Cause(err))
	assert.ErrorIs(t, err, base)
	assert.Nil(t, withActions(nil, "ignored"))
}
