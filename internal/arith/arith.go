// Package arith contains overflow-safe integer helpers for layout computation.
package arith

import "math"

// AddNoOverflow adds a and b, returning ok = false when the result would overflow int.
func AddNoOverflow(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulNoOverflow multiplies a and b, returning ok = false when the result would
// overflow int. This is essential for capacity * elementSize calculations.
func MulNoOverflow(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// AlignUp rounds n up to the next multiple of align. align must be a
// power of two. Returns ok = false when rounding would overflow int.
func AlignUp(n, align int) (int, bool) {
	if n < 0 || !IsPowerOfTwo(align) {
		return 0, false
	}
	sum, ok := AddNoOverflow(n, align-1)
	if !ok {
		return 0, false
	}
	return sum &^ (align - 1), true
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
