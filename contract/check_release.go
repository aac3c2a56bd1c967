//go:build release

package contract

import "fmt"

// Checked reports at compile time whether contract checking runs in checked
// mode. It is false when built with the "release" tag.
const Checked = false

// Precondition raises a KindPrecondition Violation if cond is false.
// Release builds attach no location.
func Precondition(cond bool, message string) {
	if !cond {
		panic(NewViolation(KindPrecondition, message))
	}
}

// Preconditionf is Precondition with a format string. The message is
// composed only when the check fails.
func Preconditionf(cond bool, format string, args ...any) {
	if !cond {
		panic(NewViolation(KindPrecondition, fmt.Sprintf(format, args...)))
	}
}

// Postcondition raises a KindPostcondition Violation if cond is false.
// Release builds attach no location.
func Postcondition(cond bool, message string) {
	if !cond {
		panic(NewViolation(KindPostcondition, message))
	}
}

// Postconditionf is Postcondition with a format string. The message is
// composed only when the check fails.
func Postconditionf(cond bool, format string, args ...any) {
	if !cond {
		panic(NewViolation(KindPostcondition, fmt.Sprintf(format, args...)))
	}
}

// Invariant raises a KindInvariant Violation if cond is false. Release
// builds attach no location.
func Invariant(cond bool, message string) {
	if !cond {
		panic(NewViolation(KindInvariant, message))
	}
}

// Invariantf is Invariant with a format string. The message is composed
// only when the check fails.
func Invariantf(cond bool, format string, args ...any) {
	if !cond {
		panic(NewViolation(KindInvariant, fmt.Sprintf(format, args...)))
	}
}

// Assert is a no-op in release builds.
func Assert(_ bool, _ string) {}

// Assertf is a no-op in release builds.
func Assertf(_ bool, _ string, _ ...any) {}

// AssertFunc is a no-op in release builds; pred is never invoked.
func AssertFunc(_ func() bool, _ string) {}

// Fail unconditionally raises a KindFailure Violation without location.
func Fail(message string) {
	panic(NewViolation(KindFailure, message))
}

// Failf is Fail with a format string.
func Failf(format string, args ...any) {
	panic(NewViolation(KindFailure, fmt.Sprintf(format, args...)))
}
