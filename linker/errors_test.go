package linker

import (
	"errors"
	"strings"
	"testing"
)

func TestAttachErrorAlreadyAttached(t *testing.T) {
	err := &AttachError{Library: "A", AlreadyAttached: true}
	msg := err.Error()
	if !strings.Contains(msg, `"A"`) || !strings.Contains(msg, "already attached") {
		t.Errorf("Error() = %q, want mention of library and already attached", msg)
	}
}

func TestAttachErrorDiagnostics(t *testing.T) {
	err := &AttachError{Library: "A", Diagnostics: []string{"Symbol already exists: helper"}}
	msg := err.Error()
	if !strings.Contains(msg, "helper") {
		t.Errorf("Error() = %q, want diagnostics included", msg)
	}
	if err.Unwrap() != nil {
		t.Error("AttachError.Unwrap() should be nil when no Cause is set")
	}
}

func TestLinkErrorWithCause(t *testing.T) {
	cause := errors.New("finalization pass failed")
	err := &LinkError{Entry: "main", Profile: "ps_6_0", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should unwrap to Cause")
	}
	if !strings.Contains(err.Error(), "finalization pass failed") {
		t.Errorf("Error() = %q, want cause message included", err.Error())
	}
}

func TestLinkErrorWithoutCause(t *testing.T) {
	err := &LinkError{Entry: "main", Profile: "ps_6_0", Diagnostics: []string{"Cannot find definition of function main"}}
	if err.Unwrap() != nil {
		t.Error("LinkError.Unwrap() should be nil when no Cause is set")
	}
	if !strings.Contains(err.Error(), "Cannot find definition of function main") {
		t.Errorf("Error() = %q, want diagnostics included", err.Error())
	}
}
