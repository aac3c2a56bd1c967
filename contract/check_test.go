//go:build unit && !release

package contract

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// thisLine returns the line number of its call site.
func thisLine(t *testing.T) int {
	t.Helper()

	_, _, line, ok := runtime.Caller(1)
	require.True(t, ok)

	return line
}

// raisedViolation runs fn, which must raise, and returns the Violation.
func raisedViolation(t *testing.T, fn func()) *Violation {
	t.Helper()

	err := Check(fn)
	require.Error(t, err)

	var v *Violation

	require.ErrorAs(t, err, &v)

	return v
}

// countingStringer counts how many times its String method runs, so tests
// can prove a format argument was never rendered.
type countingStringer struct {
	calls *int
}

func (s countingStringer) String() string {
	(*s.calls)++
	return "expensive"
}

func TestChecked_IsTrue(t *testing.T) {
	t.Parallel()

	require.True(t, Checked)
}

func TestPrecondition_TruePredicateReturns(t *testing.T) {
	t.Parallel()

	require.NoError(t, Check(func() {
		Precondition(true, "x>0")
		Postcondition(true, "sum ok")
		Invariant(true, "tree balanced")
		Assert(true, "index in bounds")
	}))
}

func TestPrecondition_FalsePredicateRaises(t *testing.T) {
	t.Parallel()

	var line int

	v := raisedViolation(t, func() {
		line = thisLine(t) + 1
		Precondition(false, "x>0")
	})

	require.Equal(t, KindPrecondition, v.Kind())
	require.Contains(t, v.Error(), "Precondition violation!")
	require.Contains(t, v.Error(), "x>0")
	require.Contains(t, v.Error(), ":"+strconv.Itoa(line))

	file, gotLine, ok := v.Location()
	require.True(t, ok)
	require.True(t, strings.HasSuffix(file, "check_test.go"), "location %q should be the call site", file)
	require.Equal(t, line, gotLine)
}

func TestPostcondition_FalsePredicateRaises(t *testing.T) {
	t.Parallel()

	var line int

	v := raisedViolation(t, func() {
		line = thisLine(t) + 1
		Postcondition(false, "sum ok")
	})

	require.Equal(t, KindPostcondition, v.Kind())
	require.Contains(t, v.Error(), "Postcondition violation!")
	require.Contains(t, v.Error(), "sum ok")
	require.Contains(t, v.Error(), ":"+strconv.Itoa(line))
}

func TestInvariant_FalsePredicateRaises(t *testing.T) {
	t.Parallel()

	var line int

	v := raisedViolation(t, func() {
		line = thisLine(t) + 1
		Invariant(false, "tree balanced")
	})

	require.Equal(t, KindInvariant, v.Kind())
	require.Contains(t, v.Error(), "Invariant violation!")
	require.Contains(t, v.Error(), "tree balanced")
	require.Contains(t, v.Error(), ":"+strconv.Itoa(line))
}

func TestAssert_FalsePredicateRaisesAsPrecondition(t *testing.T) {
	t.Parallel()

	var line int

	v := raisedViolation(t, func() {
		line = thisLine(t) + 1
		Assert(false, "oops")
	})

	require.Equal(t, KindPrecondition, v.Kind())
	require.Contains(t, v.Error(), "Precondition violation!")
	require.Contains(t, v.Error(), ":"+strconv.Itoa(line))
}

func TestFail_AlwaysRaisesWithoutPrefix(t *testing.T) {
	t.Parallel()

	var line int

	v := raisedViolation(t, func() {
		line = thisLine(t) + 1
		Fail("bad input")
	})

	require.Equal(t, KindFailure, v.Kind())
	require.Contains(t, v.Error(), "bad input")
	require.Contains(t, v.Error(), ":"+strconv.Itoa(line))
	require.NotContains(t, v.Error(), "Precondition violation!")
	require.NotContains(t, v.Error(), "Postcondition violation!")
	require.NotContains(t, v.Error(), "Invariant violation!")
}

func TestRendered_BeginsAndEndsWithNewline(t *testing.T) {
	t.Parallel()

	raises := []func(){
		func() { Precondition(false, "m") },
		func() { Postcondition(false, "m") },
		func() { Invariant(false, "m") },
		func() { Assert(false, "m") },
		func() { Fail("m") },
	}

	for _, fn := range raises {
		v := raisedViolation(t, fn)
		require.True(t, strings.HasPrefix(v.Error(), "\n"))
		require.True(t, strings.HasSuffix(v.Error(), "\n"))
	}
}

func TestFormattedVariants_RaiseWithComposedMessage(t *testing.T) {
	t.Parallel()

	v := raisedViolation(t, func() { Preconditionf(false, "width %d must be positive", -3) })
	require.Equal(t, KindPrecondition, v.Kind())
	require.Contains(t, v.Error(), "width -3 must be positive")

	v = raisedViolation(t, func() { Postconditionf(false, "sum %d overflows", 512) })
	require.Equal(t, KindPostcondition, v.Kind())
	require.Contains(t, v.Error(), "sum 512 overflows")

	v = raisedViolation(t, func() { Invariantf(false, "depth %d exceeds %d", 9, 8) })
	require.Equal(t, KindInvariant, v.Kind())
	require.Contains(t, v.Error(), "depth 9 exceeds 8")

	v = raisedViolation(t, func() { Assertf(false, "index %d out of bounds", 11) })
	require.Equal(t, KindPrecondition, v.Kind())
	require.Contains(t, v.Error(), "index 11 out of bounds")

	v = raisedViolation(t, func() { Failf("unsupported pixel type %q", "rgb48") })
	require.Equal(t, KindFailure, v.Kind())
	require.Contains(t, v.Error(), `unsupported pixel type "rgb48"`)
}

func TestFormattedVariants_MessageNotComposedOnSuccess(t *testing.T) {
	t.Parallel()

	var calls int

	s := countingStringer{calls: &calls}

	require.NoError(t, Check(func() {
		Preconditionf(true, "%s", s)
		Postconditionf(true, "%s", s)
		Invariantf(true, "%s", s)
		Assertf(true, "%s", s)
	}))
	require.Zero(t, calls)
}

func TestFormattedVariants_MessageComposedOnceOnFailure(t *testing.T) {
	t.Parallel()

	var calls int

	s := countingStringer{calls: &calls}

	v := raisedViolation(t, func() { Invariantf(false, "%s", s) })
	require.Contains(t, v.Error(), "expensive")
	require.Equal(t, 1, calls)
}

func TestAssertFunc_PredicateEvaluatedExactlyOnce(t *testing.T) {
	t.Parallel()

	var calls int

	require.NoError(t, Check(func() {
		AssertFunc(func() bool { calls++; return true }, "pred holds")
	}))
	require.Equal(t, 1, calls)

	calls = 0

	v := raisedViolation(t, func() {
		AssertFunc(func() bool { calls++; return false }, "pred holds")
	})
	require.Equal(t, 1, calls)
	require.Equal(t, KindPrecondition, v.Kind())
}

func TestCheck_LocationSurvivesDynamicMessages(t *testing.T) {
	t.Parallel()

	// A dynamically composed plain-string message renders identically to a
	// constant one.
	msg := fmt.Sprintf("width %d must be positive", -3)

	var line int

	v := raisedViolation(t, func() {
		line = thisLine(t) + 1
		Precondition(false, msg)
	})

	require.Contains(t, v.Error(), "width -3 must be positive")
	require.Contains(t, v.Error(), ":"+strconv.Itoa(line))
}
