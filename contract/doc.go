// Package contract provides the runtime contract checks used throughout the
// vigra2 library: preconditions, postconditions, invariants, debug-only
// assertions, and unconditional failure.
//
// Each primitive takes a predicate and a message. When the predicate is
// false the primitive raises (panics with) a *Violation carrying the message
// and, in checked builds, the file and line of the call site. A truthy
// predicate costs a single branch; the message of the formatted variants is
// only composed on the failure path.
//
// # Checked and release builds
//
// Checking is on by default. Building with the "release" tag drops location
// capture and compiles Assert, Assertf, and AssertFunc to no-ops. The
// Checked constant reports the mode at compile time; guard predicates that
// are themselves expensive (or that could panic) with it:
//
//	if contract.Checked {
//		contract.Invariant(tree.balanced(), "tree balanced")
//	}
//
// # Handling violations
//
// A raised Violation propagates like any panic until recovered. Recover and
// Check convert it into an ordinary error:
//
//	func loadImage(path string) (img *Image, err error) {
//		defer contract.Recover(&err)
//
//		info := importInfo(path)
//		contract.Precondition(info.IsGrayscale(), "input image must be grayscale")
//		// ...
//		return img, nil
//	}
//
// Handlers discriminate kinds without parsing text: errors.Is against
// ErrContractViolation matches the three contract kinds, ErrFailure matches
// everything raised here, and errors.As yields the *Violation itself.
package contract
