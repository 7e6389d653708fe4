package gamma

import (
	"fmt"
	"math"
)

// Axis names one of the five quantities that locate a point on a worldline.
type Axis int

const (
	// AxisV is velocity.
	AxisV Axis = iota + 1
	// AxisX is position in the rest frame.
	AxisX
	// AxisT is time in the rest frame.
	AxisT
	// AxisTau is proper time.
	AxisTau
	// AxisD is the total distance traveled, as measured in the rest frame.
	AxisD
)

func (ax Axis) String() string {
	switch ax {
	case AxisV:
		return "v"
	case AxisX:
		return "x"
	case AxisT:
		return "t"
	case AxisTau:
		return "tau"
	case AxisD:
		return "d"
	default:
		return fmt.Sprintf("Axis(%d)", int(ax))
	}
}

// Branch selects one of the two points of a hyperbolic curve that share a
// position. The earlier point is on the approach to the turnaround point, the
// later one after it.
type Branch int

const (
	PreferEarlier Branch = iota
	PreferLater
)

func (b Branch) String() string {
	if b == PreferLater {
		return "later"
	}
	return "earlier"
}

// HyperbolicMotionCurve is the worldline of an object with constant proper
// acceleration a that passes through an anchor point with velocity v, proper
// time tau and distance d.
//
// Internally every point is mapped to the canonical curve that is at rest at
// the origin with zero proper time and distance. With h = a·τ the canonical
// curve is
//
//	v = tanh h
//	t = sinh h / a
//	x = (cosh h − 1) / a
//	d = sign(τ)·|x|
//
// An acceleration of zero produces uniform motion, which is handled on its own
// path and never as a limit of the formulas above.
type HyperbolicMotionCurve struct {
	a      float64
	v      float64
	anchor Coordinate
	tau    float64
	d      float64

	// Offsets from canonical to actual values. Only used when a ≠ 0.
	off    Coordinate
	tauOff float64
	dOff   float64

	// √(1−v²), only used when a = 0.
	invGamma float64
}

// NewHyperbolicMotionCurve returns the curve with acceleration a through p,
// where the velocity is v, the proper time tau and the distance d.
func NewHyperbolicMotionCurve(a, v float64, p Coordinate, tau, d float64) HyperbolicMotionCurve {
	c := HyperbolicMotionCurve{
		a:      a,
		v:      v,
		anchor: p,
		tau:    tau,
		d:      d,
	}
	if a == 0 {
		c.invGamma = math.Sqrt(1 - v*v)
		return c
	}
	ctau := math.Atanh(v) / a
	c.off = Coordinate{
		X: p.X - c.canonX(ctau),
		T: p.T - c.canonT(ctau),
	}
	c.tauOff = tau - ctau
	c.dOff = d - c.canonD(ctau)
	return c
}

// A returns the proper acceleration.
func (c HyperbolicMotionCurve) A() float64 { return c.a }

// Anchor returns the point the curve was constructed from, with its velocity,
// proper time and distance.
func (c HyperbolicMotionCurve) Anchor() WorldlineEndpoint {
	return WorldlineEndpoint{V: c.v, X: c.anchor.X, T: c.anchor.T, Tau: c.tau, D: c.d}
}

// Turnaround returns the point where the velocity is zero. It returns false
// for uniform motion.
func (c HyperbolicMotionCurve) Turnaround() (Coordinate, bool) {
	if c.a == 0 {
		return Coordinate{}, false
	}
	return c.off, true
}

// SameCurve reports whether c and o describe the same set of events.
func (c HyperbolicMotionCurve) SameCurve(o HyperbolicMotionCurve) bool {
	if !fuzzyEQ(c.a, o.a) {
		return false
	}
	if c.a == 0 || o.a == 0 {
		return c.a == o.a && fuzzyEQ(c.v, o.v) && fuzzyEQ(c.TToX(o.anchor.T), o.anchor.X)
	}
	return c.off.Equal(o.off)
}

func (c HyperbolicMotionCurve) canonT(ctau float64) float64 {
	return math.Sinh(c.a*ctau) / c.a
}

// canonX uses cosh h − 1 = 2 sinh²(h/2), which doesn't lose precision near
// the turnaround point.
func (c HyperbolicMotionCurve) canonX(ctau float64) float64 {
	s := math.Sinh(c.a * ctau / 2)
	return 2 * s * s / c.a
}

func (c HyperbolicMotionCurve) canonD(ctau float64) float64 {
	s := math.Sinh(c.a * ctau / 2)
	return math.Copysign(2*s*s/math.Abs(c.a), ctau)
}

// acosh1p computes acosh(1+y) without cancellation for small y.
func acosh1p(y float64) float64 {
	return math.Log1p(y + math.Sqrt(y*(2+y)))
}

// toTau maps a value on any axis to canonical proper time.
func (c HyperbolicMotionCurve) toTau(from Axis, value float64, b Branch) float64 {
	switch from {
	case AxisV:
		return math.Atanh(value) / c.a
	case AxisX:
		y := c.a * (value - c.off.X)
		if y < 0 {
			if !fuzzyZero(y) {
				return math.NaN()
			}
			y = 0
		}
		h := acosh1p(y) / math.Abs(c.a)
		if b == PreferLater {
			return h
		}
		return -h
	case AxisT:
		return math.Asinh(c.a*(value-c.off.T)) / c.a
	case AxisTau:
		return value - c.tauOff
	case AxisD:
		cd := value - c.dOff
		return math.Copysign(acosh1p(math.Abs(c.a*cd))/math.Abs(c.a), cd)
	default:
		panic(fmt.Sprintf("invalid axis %v", from))
	}
}

// fromTau maps canonical proper time to a value on any axis.
func (c HyperbolicMotionCurve) fromTau(to Axis, ctau float64) float64 {
	switch to {
	case AxisV:
		return math.Tanh(c.a * ctau)
	case AxisX:
		return c.off.X + c.canonX(ctau)
	case AxisT:
		return c.off.T + c.canonT(ctau)
	case AxisTau:
		return c.tauOff + ctau
	case AxisD:
		return c.dOff + c.canonD(ctau)
	default:
		panic(fmt.Sprintf("invalid axis %v", to))
	}
}

// uniformToT maps a value on any axis to time, for a = 0. Axes along which
// the object doesn't change produce NaN.
func (c HyperbolicMotionCurve) uniformToT(from Axis, value float64) float64 {
	switch from {
	case AxisV:
		return math.NaN()
	case AxisX:
		if c.v == 0 {
			return math.NaN()
		}
		return c.anchor.T + (value-c.anchor.X)/c.v
	case AxisT:
		return value
	case AxisTau:
		return c.anchor.T + (value-c.tau)/c.invGamma
	case AxisD:
		if c.v == 0 {
			return math.NaN()
		}
		return c.anchor.T + (value-c.d)/math.Abs(c.v)
	default:
		panic(fmt.Sprintf("invalid axis %v", from))
	}
}

// uniformFromT maps time to a value on any axis, for a = 0.
func (c HyperbolicMotionCurve) uniformFromT(to Axis, t float64) float64 {
	if math.IsNaN(t) {
		return t
	}
	switch to {
	case AxisV:
		return c.v
	case AxisX:
		if c.v == 0 {
			return c.anchor.X
		}
		return c.anchor.X + c.v*(t-c.anchor.T)
	case AxisT:
		return t
	case AxisTau:
		return c.tau + (t-c.anchor.T)*c.invGamma
	case AxisD:
		if c.v == 0 {
			return c.d
		}
		return c.d + math.Abs(c.v)*(t-c.anchor.T)
	default:
		panic(fmt.Sprintf("invalid axis %v", to))
	}
}

// Convert maps value on axis from to the corresponding value on axis to. The
// branch is only consulted when converting from AxisX on an accelerating
// curve. The result is NaN if value isn't reached by the curve.
func (c HyperbolicMotionCurve) Convert(from, to Axis, value float64, b Branch) float64 {
	if math.IsNaN(value) {
		return value
	}
	if c.a == 0 {
		if from == to {
			if from == AxisV && value != c.v {
				return math.NaN()
			}
			return value
		}
		return c.uniformFromT(to, c.uniformToT(from, value))
	}
	if from == to {
		return value
	}
	ctau := c.toTau(from, value, b)
	if math.IsNaN(ctau) {
		return ctau
	}
	return c.fromTau(to, ctau)
}

func (c HyperbolicMotionCurve) VToX(v float64) float64   { return c.Convert(AxisV, AxisX, v, 0) }
func (c HyperbolicMotionCurve) VToT(v float64) float64   { return c.Convert(AxisV, AxisT, v, 0) }
func (c HyperbolicMotionCurve) VToTau(v float64) float64 { return c.Convert(AxisV, AxisTau, v, 0) }
func (c HyperbolicMotionCurve) VToD(v float64) float64   { return c.Convert(AxisV, AxisD, v, 0) }

func (c HyperbolicMotionCurve) XToV(x float64, b Branch) float64 {
	return c.Convert(AxisX, AxisV, x, b)
}
func (c HyperbolicMotionCurve) XToT(x float64, b Branch) float64 {
	return c.Convert(AxisX, AxisT, x, b)
}
func (c HyperbolicMotionCurve) XToTau(x float64, b Branch) float64 {
	return c.Convert(AxisX, AxisTau, x, b)
}
func (c HyperbolicMotionCurve) XToD(x float64, b Branch) float64 {
	return c.Convert(AxisX, AxisD, x, b)
}

func (c HyperbolicMotionCurve) TToV(t float64) float64   { return c.Convert(AxisT, AxisV, t, 0) }
func (c HyperbolicMotionCurve) TToX(t float64) float64   { return c.Convert(AxisT, AxisX, t, 0) }
func (c HyperbolicMotionCurve) TToTau(t float64) float64 { return c.Convert(AxisT, AxisTau, t, 0) }
func (c HyperbolicMotionCurve) TToD(t float64) float64   { return c.Convert(AxisT, AxisD, t, 0) }

func (c HyperbolicMotionCurve) TauToV(tau float64) float64 { return c.Convert(AxisTau, AxisV, tau, 0) }
func (c HyperbolicMotionCurve) TauToX(tau float64) float64 { return c.Convert(AxisTau, AxisX, tau, 0) }
func (c HyperbolicMotionCurve) TauToT(tau float64) float64 { return c.Convert(AxisTau, AxisT, tau, 0) }
func (c HyperbolicMotionCurve) TauToD(tau float64) float64 { return c.Convert(AxisTau, AxisD, tau, 0) }

func (c HyperbolicMotionCurve) DToV(d float64) float64   { return c.Convert(AxisD, AxisV, d, 0) }
func (c HyperbolicMotionCurve) DToX(d float64) float64   { return c.Convert(AxisD, AxisX, d, 0) }
func (c HyperbolicMotionCurve) DToT(d float64) float64   { return c.Convert(AxisD, AxisT, d, 0) }
func (c HyperbolicMotionCurve) DToTau(d float64) float64 { return c.Convert(AxisD, AxisTau, d, 0) }

// PointAt returns the endpoint at time t.
func (c HyperbolicMotionCurve) PointAt(t float64) WorldlineEndpoint {
	return WorldlineEndpoint{
		V:   c.TToV(t),
		X:   c.TToX(t),
		T:   t,
		Tau: c.TToTau(t),
		D:   c.TToD(t),
	}
}

// direction returns the tangent of a uniform motion curve, pointing into the
// future.
func (c HyperbolicMotionCurve) direction() Vec2 {
	return Vec2{X: c.v, T: 1}
}

// IntersectLine intersects the curve with a line. The intersections are
// sorted by time; there are at most two.
func (c HyperbolicMotionCurve) IntersectLine(l Linear) ([2]Coordinate, int) {
	cl := l.carrier()
	if c.a == 0 {
		if p, ok := intersectCarriers(c.carrier(), cl); ok {
			return [2]Coordinate{p}, 1
		}
		return [2]Coordinate{}, 0
	}
	return c.intersectCarrier(cl)
}

// carrier returns the line of a uniform motion curve.
func (c HyperbolicMotionCurve) carrier() carrier {
	return carrier{p: c.anchor, d: c.direction(), lo: math.Inf(-1), hi: math.Inf(1)}
}

// intersectCarrier solves the hyperbola–line intersection. With the center
// h = (off.x − 1/a, off.t), points on the curve satisfy
// (x − h.x)² − (t − h.t)² = 1/a² with a·(x − h.x) > 0.
func (c HyperbolicMotionCurve) intersectCarrier(cl carrier) ([2]Coordinate, int) {
	if cl.empty() {
		return [2]Coordinate{}, 0
	}
	h := Coordinate{X: c.off.X - 1/c.a, T: c.off.T}
	q := cl.p.Sub(h)
	d := cl.d
	c2 := d.X*d.X - d.T*d.T
	c1 := 2 * (q.X*d.X - q.T*d.T)
	c0 := q.X*q.X - q.T*q.T - 1/(c.a*c.a)
	roots, n := SolveQuadratic(c0, c1, c2)

	var out [2]Coordinate
	var m int
	for _, s := range roots[:n] {
		if !cl.contains(s) {
			continue
		}
		p := cl.eval(s)
		if c.a*(p.X-h.X) <= 0 {
			continue
		}
		out[m] = p
		m++
	}
	if m == 2 && out[1].T < out[0].T {
		out[0], out[1] = out[1], out[0]
	}
	return out, m
}

// IntersectCurve intersects two curves. The intersections are sorted by time.
// Identical curves report no intersections; use [HyperbolicMotionCurve.SameCurve]
// to detect them.
func (c HyperbolicMotionCurve) IntersectCurve(o HyperbolicMotionCurve) ([2]Coordinate, int) {
	if c.SameCurve(o) {
		return [2]Coordinate{}, 0
	}
	switch {
	case c.a == 0 && o.a == 0:
		if p, ok := intersectCarriers(c.carrier(), o.carrier()); ok {
			return [2]Coordinate{p}, 1
		}
		return [2]Coordinate{}, 0
	case c.a == 0:
		return o.intersectCarrier(c.carrier())
	case o.a == 0:
		return c.intersectCarrier(o.carrier())
	}

	// Subtracting the two hyperbola equations leaves the line
	// A x + B t + C = 0 on which all common points lie.
	h1 := Coordinate{X: c.off.X - 1/c.a, T: c.off.T}
	h2 := Coordinate{X: o.off.X - 1/o.a, T: o.off.T}
	r1 := 1 / (c.a * c.a)
	r2 := 1 / (o.a * o.a)
	A := 2 * (h2.X - h1.X)
	B := -2 * (h2.T - h1.T)
	C := h1.X*h1.X - h2.X*h2.X - h1.T*h1.T + h2.T*h2.T - r1 + r2
	if fuzzyZero(A) && fuzzyZero(B) {
		// Concentric: either the opposite branch or a different radius.
		return [2]Coordinate{}, 0
	}
	var p Coordinate
	if math.Abs(A) > math.Abs(B) {
		p = Coordinate{X: -C / A, T: 0}
	} else {
		p = Coordinate{X: 0, T: -C / B}
	}
	radical := carrier{p: p, d: Vec2{X: B, T: -A}, lo: math.Inf(-1), hi: math.Inf(1)}

	cands, n := c.intersectCarrier(radical)
	var out [2]Coordinate
	var m int
	for _, q := range cands[:n] {
		if o.a*(q.X-h2.X) <= 0 {
			continue
		}
		out[m] = q
		m++
	}
	return out, m
}
