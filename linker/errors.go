package linker

import (
	"fmt"
	"strings"
)

// AttachError describes why AttachLib failed for a registered library:
// either it is already attached, or its symbols collided with an
// already-attached library (spec.md §7 category b). An unregistered
// name makes AttachLib return false without building an AttachError. Cause
// is nil for every AttachLib failure category: the registry reports
// collisions as diagnostics, not as a wrapped Go error.
type AttachError struct {
	Library         string
	AlreadyAttached bool
	Diagnostics     []string
	Cause           error
}

func (e *AttachError) Error() string {
	if e.AlreadyAttached {
		return fmt.Sprintf("linker: attach %q: already attached", e.Library)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "linker: attach %q failed", e.Library)
	for _, d := range e.Diagnostics {
		b.WriteString(": ")
		b.WriteString(d)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *AttachError) Unwrap() error {
	return e.Cause
}

// LinkError describes why Link failed against an entry and profile
// (spec.md §7 categories a, c, d, e, f, g). Cause carries the
// underlying finalization error when finalization is what failed, and
// is nil for every other failure category.
type LinkError struct {
	Entry       string
	Profile     string
	Diagnostics []string
	Cause       error
}

func (e *LinkError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "linker: link %q against %q failed", e.Entry, e.Profile)
	for _, d := range e.Diagnostics {
		b.WriteString(": ")
		b.WriteString(d)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *LinkError) Unwrap() error {
	return e.Cause
}
