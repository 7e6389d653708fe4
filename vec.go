package gamma

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the (x, t) plane.
type Vec2 struct {
	X float64
	T float64
}

// Vec returns the vector ⟨x, t⟩.
func Vec(x, t float64) Vec2 {
	return Vec2{X: x, T: t}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.T)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.T*o.T
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.T - v.T*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.T)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the
// positive t direction. This is atan2(t, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.T, v.X)
}

// VecFromAngle returns a unit vector of the given angle in radians. Components
// that are zero up to rounding error are snapped to zero, so that vertical and
// horizontal directions stay exactly vertical and horizontal.
func VecFromAngle(th float64) Vec2 {
	t, x := math.Sincos(th)
	if math.Abs(x) < 1e-15 {
		x = 0
	}
	if math.Abs(t) < 1e-15 {
		t = 0
	}
	return Vec2{X: x, T: t}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, s float64) Vec2 {
	return v.Add(o.Sub(v).Mul(s))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Hypot())
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, T: v.T + o.T}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, T: v.T - o.T}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, T: v.T * f}
}

// Negate returns a new vector with the signs of x and t flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, T: -v.T}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.T == 0
}
