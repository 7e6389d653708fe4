package gamma

import "math"

// LorentzFactor returns γ = 1/√(1−v²) for a velocity v in units of c.
func LorentzFactor(v float64) float64 {
	return 1 / math.Sqrt(1-v*v)
}

// VToAngle returns the angle in radians, measured from the positive x axis,
// of the worldline of an object moving at velocity v. An object at rest has a
// vertical worldline (π/2); light moving in the positive direction has π/4.
func VToAngle(v float64) float64 {
	return math.Atan2(1, v)
}

// AngleToV is the inverse of [VToAngle]. Angles of lines that are not
// worldlines (faster than light) produce velocities outside [-1, 1].
func AngleToV(th float64) float64 {
	s, c := math.Sincos(th)
	return c / s
}

// AddVelocities returns the relativistic sum of two collinear velocities.
func AddVelocities(v1, v2 float64) float64 {
	return (v1 + v2) / (1 + v1*v2)
}

// RelativeVelocity returns the velocity v as measured in a frame that moves
// at velocity frameV.
func RelativeVelocity(v, frameV float64) float64 {
	return AddVelocities(v, -frameV)
}

// LengthContraction returns the length measured in the rest frame of an
// object whose proper length is length and which moves at velocity v.
func LengthContraction(length, v float64) float64 {
	return length / LorentzFactor(v)
}

// TimeDilation returns the rest frame duration of a proper duration tau of
// an object moving at velocity v.
func TimeDilation(tau, v float64) float64 {
	return tau * LorentzFactor(v)
}

// Boost returns the coordinates of c in a frame that moves at velocity v and
// shares the origin with the rest frame.
func Boost(c Coordinate, v float64) Coordinate {
	return c.Transform(BoostTransform(v))
}

// Unboost is the inverse of [Boost].
func Unboost(c Coordinate, v float64) Coordinate {
	return c.Transform(BoostTransform(-v))
}
