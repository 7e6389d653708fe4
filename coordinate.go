package gamma

import (
	"fmt"
	"math"
)

// Coordinate is an event in the (x, t) plane.
type Coordinate struct {
	X float64
	T float64
}

// Coord returns the coordinate (x, t).
func Coord(x, t float64) Coordinate {
	return Coordinate{X: x, T: t}
}

func (c Coordinate) Splat() (float64, float64) {
	return c.X, c.T
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.T)
}

// Equal reports whether c and o are the same event, within [Epsilon].
func (c Coordinate) Equal(o Coordinate) bool {
	return fuzzyEQ(c.X, o.X) && fuzzyEQ(c.T, o.T)
}

// Compare orders coordinates by time and then by position, using fuzzy
// comparisons. It returns -1, 0 or +1.
func (c Coordinate) Compare(o Coordinate) int {
	if r := fuzzyCompare(c.T, o.T); r != 0 {
		return r
	}
	return fuzzyCompare(c.X, o.X)
}

func (c Coordinate) Translate(v Vec2) Coordinate {
	return Coordinate{
		X: c.X + v.X,
		T: c.T + v.T,
	}
}

func (c Coordinate) Transform(aff Affine) Coordinate {
	return Coordinate{
		X: aff.N0*c.X + aff.N2*c.T + aff.N4,
		T: aff.N1*c.X + aff.N3*c.T + aff.N5,
	}
}

// Sub computes c−o.
func (c Coordinate) Sub(o Coordinate) Vec2 {
	return Vec2{
		X: c.X - o.X,
		T: c.T - o.T,
	}
}

// Lerp linearly interpolates between two coordinates.
func (c Coordinate) Lerp(o Coordinate, s float64) Coordinate {
	return Coordinate(Vec2(c).Lerp(Vec2(o), s))
}

// Midpoint returns the midpoint of two coordinates.
func (c Coordinate) Midpoint(o Coordinate) Coordinate {
	return Coordinate{
		X: 0.5 * (c.X + o.X),
		T: 0.5 * (c.T + o.T),
	}
}

// Distance returns the euclidean distance between two coordinates in the
// diagram plane. This is not a spacetime interval.
func (c Coordinate) Distance(o Coordinate) float64 {
	return math.Hypot(c.X-o.X, c.T-o.T)
}

// Interval returns the squared spacetime interval t² − x² between c and o.
// It is positive for timelike and negative for spacelike separations.
func (c Coordinate) Interval(o Coordinate) float64 {
	dx := c.X - o.X
	dt := c.T - o.T
	return dt*dt - dx*dx
}

// IsInf reports whether at least one of x and t is infinite.
func (c Coordinate) IsInf() bool {
	return math.IsInf(c.X, 0) || math.IsInf(c.T, 0)
}

// IsNaN reports whether at least one of x and t is NaN.
func (c Coordinate) IsNaN() bool {
	return math.IsNaN(c.X) || math.IsNaN(c.T)
}
