package contract

import "golang.org/x/exp/constraints"

// Numeric covers the number types the predicates below accept.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Positive reports n > 0.
func Positive[T Numeric](n T) bool { return n > 0 }

// NonNegative reports n >= 0.
func NonNegative[T Numeric](n T) bool { return n >= 0 }

// NotZero reports n != 0.
func NotZero[T Numeric](n T) bool { return n != 0 }

// InRange reports lo <= n <= hi.
func InRange[T constraints.Ordered](n, lo, hi T) bool {
	return lo <= n && n <= hi
}
