package gamma

import "math"

// SolveQuadratic finds real roots of quadratic equations.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0, in increasing order.
// When c2 is zero or very small the equation is treated as linear. The second
// return value states how many roots were found.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		root := -c0 / c1
		if math.IsInf(root, 0) || math.IsNaN(root) {
			return [2]float64{}, 0
		}
		return [2]float64{root}, 1
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1² overflowed. Find one root using sc1 x + x² = 0, and the other
		// as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 < root1 {
		root1, root2 = root2, root1
	}
	return [2]float64{root1, root2}, 2
}
