//go:build unit

package contract

import "testing"

// Benchmarks guard the success path: a passing check must stay a single
// branch with zero allocations, cheap enough to leave enabled in inner
// loops of image pipelines.

func BenchmarkPrecondition_True(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Precondition(true, "x>0")
	}
}

func BenchmarkPreconditionf_True(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Preconditionf(true, "width %d must be positive", i)
	}
}

func BenchmarkInvariant_True(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Invariant(true, "tree balanced")
	}
}

func BenchmarkAssert_True(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Assert(true, "index in bounds")
	}
}

func BenchmarkAssertFunc_True(b *testing.B) {
	pred := func() bool { return true }
	for i := 0; i < b.N; i++ {
		AssertFunc(pred, "pred holds")
	}
}

func BenchmarkInRange(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = InRange(i, 0, 1<<30)
	}
}
