//go:build !release

package contract

import (
	"fmt"
	"runtime"
)

// Checked reports at compile time whether contract checking runs in checked
// mode. It is false when built with the "release" tag.
const Checked = true

// callerViolation builds a Violation annotated with the call site skip
// frames above its own caller. Every primitive calls it directly so the
// recorded location is the user's, never this package's.
func callerViolation(kind Kind, message string, skip int) *Violation {
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		return NewViolationAt(kind, message, file, line)
	}

	return NewViolation(kind, message)
}

// Precondition raises a KindPrecondition Violation if cond is false.
func Precondition(cond bool, message string) {
	if !cond {
		panic(callerViolation(KindPrecondition, message, 1))
	}
}

// Preconditionf is Precondition with a format string. The message is
// composed only when the check fails.
func Preconditionf(cond bool, format string, args ...any) {
	if !cond {
		panic(callerViolation(KindPrecondition, fmt.Sprintf(format, args...), 1))
	}
}

// Postcondition raises a KindPostcondition Violation if cond is false.
func Postcondition(cond bool, message string) {
	if !cond {
		panic(callerViolation(KindPostcondition, message, 1))
	}
}

// Postconditionf is Postcondition with a format string. The message is
// composed only when the check fails.
func Postconditionf(cond bool, format string, args ...any) {
	if !cond {
		panic(callerViolation(KindPostcondition, fmt.Sprintf(format, args...), 1))
	}
}

// Invariant raises a KindInvariant Violation if cond is false.
func Invariant(cond bool, message string) {
	if !cond {
		panic(callerViolation(KindInvariant, message, 1))
	}
}

// Invariantf is Invariant with a format string. The message is composed
// only when the check fails.
func Invariantf(cond bool, format string, args ...any) {
	if !cond {
		panic(callerViolation(KindInvariant, fmt.Sprintf(format, args...), 1))
	}
}

// Assert is identical to Precondition in checked builds and compiles to a
// no-op under the release tag. Use it for checks that are only worth their
// cost during development, such as index bounds in inner loops.
func Assert(cond bool, message string) {
	if !cond {
		panic(callerViolation(KindPrecondition, message, 1))
	}
}

// Assertf is Assert with a format string. The message is composed only when
// the check fails.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(callerViolation(KindPrecondition, fmt.Sprintf(format, args...), 1))
	}
}

// AssertFunc is Assert with a deferred predicate: release builds never
// invoke pred, so side effects and evaluation cost vanish entirely with the
// check.
func AssertFunc(pred func() bool, message string) {
	if !pred() {
		panic(callerViolation(KindPrecondition, message, 1))
	}
}

// Fail unconditionally raises a KindFailure Violation.
func Fail(message string) {
	panic(callerViolation(KindFailure, message, 1))
}

// Failf is Fail with a format string.
func Failf(format string, args ...any) {
	panic(callerViolation(KindFailure, fmt.Sprintf(format, args...), 1))
}
