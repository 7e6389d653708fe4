package gamma

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute tolerance used when comparing values derived from
// the motion formulas.
const Epsilon = 1e-9

// RelEpsilon is the relative tolerance used for values whose magnitude makes
// an absolute tolerance meaningless.
const RelEpsilon = 1e-12

func fuzzyEQ(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, Epsilon, RelEpsilon)
}

func fuzzyZero(a float64) bool {
	return scalar.EqualWithinAbs(a, 0, Epsilon)
}

func fuzzyLE(a, b float64) bool {
	return a <= b || fuzzyEQ(a, b)
}

func fuzzyGE(a, b float64) bool {
	return a >= b || fuzzyEQ(a, b)
}

func fuzzyLT(a, b float64) bool {
	return a < b && !fuzzyEQ(a, b)
}

func fuzzyGT(a, b float64) bool {
	return a > b && !fuzzyEQ(a, b)
}

func fuzzyCompare(a, b float64) int {
	switch {
	case fuzzyEQ(a, b):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// inRange reports whether lo ≤ v ≤ hi, tolerating rounding at both ends.
// Infinite bounds only admit the matching infinity at the boundary itself.
func inRange(v, lo, hi float64) bool {
	if math.IsNaN(v) {
		return false
	}
	return fuzzyLE(lo, v) && fuzzyLE(v, hi)
}

// sign returns -1, 0 or +1. Unlike math.Signbit it treats -0 as zero.
func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
