package gamma

import (
	"fmt"
	"math"
)

// LimitType says how the end of a worldline segment is specified.
type LimitType int

const (
	// LimitNone ends the segment where it starts. It is used for the last
	// segment of a worldline, which is then extended to the infinite future.
	LimitNone LimitType = iota
	// LimitT ends the segment after an amount of rest frame time.
	LimitT
	// LimitTau ends the segment after an amount of proper time.
	LimitTau
	// LimitD ends the segment after an amount of distance traveled.
	LimitD
	// LimitV ends the segment when a velocity is reached.
	LimitV
)

func (lt LimitType) String() string {
	switch lt {
	case LimitNone:
		return "none"
	case LimitT:
		return "t"
	case LimitTau:
		return "tau"
	case LimitD:
		return "d"
	case LimitV:
		return "v"
	default:
		return fmt.Sprintf("LimitType(%d)", int(lt))
	}
}

// Limit specifies the end of a worldline segment. For LimitT, LimitTau and
// LimitD the value is an increment from the segment's start; for LimitV it is
// the velocity to reach.
type Limit struct {
	Type  LimitType
	Value float64
}

func (l Limit) String() string {
	if l.Type == LimitNone {
		return "none"
	}
	return fmt.Sprintf("%v %g", l.Type, l.Value)
}

// WorldlineEndpoint is a point on a worldline with all five of its values.
// Values may be infinite for endpoints at the infinite past or future.
type WorldlineEndpoint struct {
	V   float64
	X   float64
	T   float64
	Tau float64
	D   float64
}

func (e WorldlineEndpoint) Coordinate() Coordinate {
	return Coordinate{X: e.X, T: e.T}
}

// Value returns the endpoint's value on an axis.
func (e WorldlineEndpoint) Value(ax Axis) float64 {
	switch ax {
	case AxisV:
		return e.V
	case AxisX:
		return e.X
	case AxisT:
		return e.T
	case AxisTau:
		return e.Tau
	case AxisD:
		return e.D
	default:
		panic(fmt.Sprintf("invalid axis %v", ax))
	}
}

func (e WorldlineEndpoint) String() string {
	return fmt.Sprintf("{v=%g x=%g t=%g tau=%g d=%g}", e.V, e.X, e.T, e.Tau, e.D)
}

// WorldlineSegment is a bounded piece of a [HyperbolicMotionCurve], or of a
// straight worldline when the acceleration is zero.
//
// A segment is built between two finite endpoints. Either end can later be
// extended to the infinite past or future; the finite endpoints are kept so
// the segment can be rebuilt in another frame.
type WorldlineSegment struct {
	a     float64
	curve HyperbolicMotionCurve

	// Finite endpoints the segment was built from.
	start, end WorldlineEndpoint
	infPast    bool
	infFuture  bool

	// Effective endpoints, after extension.
	min, max WorldlineEndpoint
	shape    CurveSegment
}

func validVelocity(v float64) error {
	if math.IsNaN(v) || v <= -1 || v >= 1 {
		return fmt.Errorf("velocity %g: %w", v, ErrInvalidVelocity)
	}
	return nil
}

func finite(name string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s %g: %w", name, v, ErrInvalidParameter)
		}
	}
	return nil
}

// NewWorldlineSegment returns the segment with acceleration a that starts at
// p with velocity v, proper time tau and distance d, and ends as specified by
// limit.
func NewWorldlineSegment(limit Limit, a, v float64, p Coordinate, tau, d float64) (WorldlineSegment, error) {
	if err := finite("acceleration", a); err != nil {
		return WorldlineSegment{}, err
	}
	if err := finite("start", p.X, p.T, tau, d); err != nil {
		return WorldlineSegment{}, err
	}
	if err := validVelocity(v); err != nil {
		return WorldlineSegment{}, err
	}

	c := NewHyperbolicMotionCurve(a, v, p, tau, d)
	start := c.Anchor()
	end := start

	if limit.Type != LimitNone {
		if err := finite(fmt.Sprintf("%v limit", limit.Type), limit.Value); err != nil {
			return WorldlineSegment{}, err
		}
	}
	switch limit.Type {
	case LimitNone:
	case LimitT, LimitTau, LimitD:
		if limit.Value < 0 {
			return WorldlineSegment{}, fmt.Errorf("%v limit %g: %w", limit.Type, limit.Value, ErrNegativeLimit)
		}
		switch limit.Type {
		case LimitT:
			end = c.PointAt(p.T + limit.Value)
		case LimitTau:
			end = c.PointAt(c.TauToT(tau + limit.Value))
			end.Tau = tau + limit.Value
		case LimitD:
			if a == 0 && v == 0 {
				return WorldlineSegment{}, fmt.Errorf("d limit %g: %w", limit.Value, ErrImpossibleDistance)
			}
			end = c.PointAt(c.DToT(d + limit.Value))
			end.D = d + limit.Value
		}
	case LimitV:
		target := limit.Value
		if err := validVelocity(target); err != nil {
			return WorldlineSegment{}, fmt.Errorf("v limit: %w", err)
		}
		if fuzzyEQ(target, v) {
			break
		}
		if a == 0 || sign(target-v) != sign(a) {
			return WorldlineSegment{}, fmt.Errorf("v limit %g from %g with a=%g: %w", target, v, a, ErrUnreachableVelocity)
		}
		end = c.PointAt(c.VToT(target))
		end.V = target
	default:
		panic(fmt.Sprintf("invalid limit type %v", limit.Type))
	}
	return newWorldlineSegment(c, start, end, false, false), nil
}

// NewWorldlineSegmentBetween returns the segment with acceleration a that
// starts at p0 with velocity v, proper time tau and distance d, and ends at
// the time of p1. p1's position is implied by the motion and isn't checked.
func NewWorldlineSegmentBetween(a, v float64, p0 Coordinate, tau, d float64, p1 Coordinate) (WorldlineSegment, error) {
	if err := finite("acceleration", a); err != nil {
		return WorldlineSegment{}, err
	}
	if err := finite("start", p0.X, p0.T, tau, d); err != nil {
		return WorldlineSegment{}, err
	}
	if err := finite("end", p1.X, p1.T); err != nil {
		return WorldlineSegment{}, err
	}
	if err := validVelocity(v); err != nil {
		return WorldlineSegment{}, err
	}
	if fuzzyLT(p1.T, p0.T) {
		return WorldlineSegment{}, fmt.Errorf("end %v before start %v: %w", p1, p0, ErrInvalidParameter)
	}
	c := NewHyperbolicMotionCurve(a, v, p0, tau, d)
	start := c.Anchor()
	end := start
	if p1.T > p0.T {
		end = c.PointAt(p1.T)
	}
	return newWorldlineSegment(c, start, end, false, false), nil
}

func newWorldlineSegment(c HyperbolicMotionCurve, start, end WorldlineEndpoint, infPast, infFuture bool) WorldlineSegment {
	if end.T < start.T {
		panic(fmt.Sprintf("gamma: segment ends at t=%g before it starts at t=%g", end.T, start.T))
	}
	s := WorldlineSegment{
		a:         c.a,
		curve:     c,
		start:     start,
		end:       end,
		infPast:   infPast,
		infFuture: infFuture,
	}
	s.min, s.max = start, end
	if infPast {
		s.min = s.pastInfinity()
	}
	if infFuture {
		s.max = s.futureInfinity()
	}
	s.shape = s.buildShape()
	return s
}

// ExtendPast returns the segment extended to the infinite past.
func (s WorldlineSegment) ExtendPast() WorldlineSegment {
	return newWorldlineSegment(s.curve, s.start, s.end, true, s.infFuture)
}

// ExtendFuture returns the segment extended to the infinite future.
func (s WorldlineSegment) ExtendFuture() WorldlineSegment {
	return newWorldlineSegment(s.curve, s.start, s.end, s.infPast, true)
}

// pastInfinity is the endpoint at t = −∞. An accelerating object came from
// the side it accelerates towards and its velocity is unbounded there. An
// inertial object came from the side opposite its motion. An object at rest
// never moved.
func (s WorldlineSegment) pastInfinity() WorldlineEndpoint {
	e := WorldlineEndpoint{
		V:   s.start.V,
		X:   s.start.X,
		T:   math.Inf(-1),
		Tau: math.Inf(-1),
		D:   s.start.D,
	}
	switch {
	case s.a != 0:
		e.V = math.Copysign(math.Inf(1), -s.a)
		e.X = math.Copysign(math.Inf(1), s.a)
		e.D = math.Inf(-1)
	case s.start.V != 0:
		e.X = math.Copysign(math.Inf(1), -s.start.V)
		e.D = math.Inf(-1)
	}
	return e
}

// futureInfinity is the endpoint at t = +∞.
func (s WorldlineSegment) futureInfinity() WorldlineEndpoint {
	e := WorldlineEndpoint{
		V:   s.end.V,
		X:   s.end.X,
		T:   math.Inf(1),
		Tau: math.Inf(1),
		D:   s.end.D,
	}
	switch {
	case s.a != 0:
		e.V = math.Copysign(math.Inf(1), s.a)
		e.X = math.Copysign(math.Inf(1), s.a)
		e.D = math.Inf(1)
	case s.end.V != 0:
		e.X = math.Copysign(math.Inf(1), s.end.V)
		e.D = math.Inf(1)
	}
	return e
}

func (s WorldlineSegment) buildShape() CurveSegment {
	if s.a != 0 {
		return NewHyperbolicSegment(s.curve, s.min.Coordinate(), s.max.Coordinate()).Seg()
	}
	dir := s.curve.direction()
	switch {
	case s.infPast && s.infFuture:
		return newLineWithDir(s.start.Coordinate(), dir, ExtentBoth).Seg()
	case s.infPast:
		return newLineWithDir(s.end.Coordinate(), dir, ExtentBackward).Seg()
	case s.infFuture:
		return newLineWithDir(s.start.Coordinate(), dir, ExtentForward).Seg()
	default:
		return LineSegment{P0: s.start.Coordinate(), P1: s.end.Coordinate()}.Seg()
	}
}

func (s WorldlineSegment) String() string {
	return fmt.Sprintf("WorldlineSegment{a=%g, %v, %v}", s.a, s.min, s.max)
}

// A returns the segment's proper acceleration.
func (s WorldlineSegment) A() float64 { return s.a }

// Curve returns the curve the segment lies on.
func (s WorldlineSegment) Curve() HyperbolicMotionCurve { return s.curve }

// Min returns the earliest endpoint, after extension.
func (s WorldlineSegment) Min() WorldlineEndpoint { return s.min }

// Max returns the latest endpoint, after extension.
func (s WorldlineSegment) Max() WorldlineEndpoint { return s.max }

// Start returns the finite endpoint the segment was built from.
func (s WorldlineSegment) Start() WorldlineEndpoint { return s.start }

// End returns the finite endpoint the segment was built to.
func (s WorldlineSegment) End() WorldlineEndpoint { return s.end }

func (s WorldlineSegment) IsInfinitePast() bool   { return s.infPast }
func (s WorldlineSegment) IsInfiniteFuture() bool { return s.infFuture }

// Shape returns the segment's shape: a line or line segment for inertial
// motion, and a hyperbolic segment otherwise.
func (s WorldlineSegment) Shape() CurveSegment { return s.shape }

// BoundingBox returns the bounds of the segment's shape.
func (s WorldlineSegment) BoundingBox() Bounds { return s.shape.BoundingBox() }

// Convert maps value on axis from to the corresponding value on axis to. It
// returns NaN if value lies outside the segment on that axis. When several
// points of the segment share the value, the earliest one is used.
func (s WorldlineSegment) Convert(from, to Axis, value float64) float64 {
	if math.IsNaN(value) {
		return value
	}
	if from == AxisX {
		return s.convertX(to, value)
	}
	lo, hi := s.min.Value(from), s.max.Value(from)
	if lo > hi {
		lo, hi = hi, lo
	}
	if !inRange(value, lo, hi) {
		return math.NaN()
	}
	// Endpoints answer directly. This also covers axes along which the
	// segment doesn't change, where the curve has no inverse.
	if fuzzyEQ(value, s.min.Value(from)) {
		return s.min.Value(to)
	}
	if fuzzyEQ(value, s.max.Value(from)) {
		return s.max.Value(to)
	}
	if from == to {
		return value
	}
	return s.curve.Convert(from, to, value, PreferEarlier)
}

// convertX converts from position, which an accelerating segment may reach
// twice.
func (s WorldlineSegment) convertX(to Axis, x float64) float64 {
	bb := s.BoundingBox()
	if !inRange(x, bb.Min.X, bb.Max.X) {
		return math.NaN()
	}
	if fuzzyEQ(x, s.min.X) {
		return s.min.Value(to)
	}
	if s.a == 0 {
		if fuzzyEQ(x, s.max.X) {
			return s.max.Value(to)
		}
		if to == AxisX {
			return x
		}
		return s.curve.Convert(AxisX, to, x, PreferEarlier)
	}
	for _, b := range [2]Branch{PreferEarlier, PreferLater} {
		t := s.curve.XToT(x, b)
		if !inRange(t, s.min.T, s.max.T) {
			continue
		}
		if fuzzyEQ(t, s.max.T) {
			return s.max.Value(to)
		}
		if to == AxisX {
			return x
		}
		return s.curve.Convert(AxisX, to, x, b)
	}
	return math.NaN()
}

// PointAt returns the endpoint at time t. The second return value is false if
// t lies outside the segment.
func (s WorldlineSegment) PointAt(t float64) (WorldlineEndpoint, bool) {
	return s.EndpointAt(AxisT, t)
}

// EndpointAt returns the earliest point of the segment whose value on axis
// at is value.
func (s WorldlineSegment) EndpointAt(at Axis, value float64) (WorldlineEndpoint, bool) {
	e := WorldlineEndpoint{
		V:   s.Convert(at, AxisV, value),
		X:   s.Convert(at, AxisX, value),
		T:   s.Convert(at, AxisT, value),
		Tau: s.Convert(at, AxisTau, value),
		D:   s.Convert(at, AxisD, value),
	}
	if math.IsNaN(e.V) || math.IsNaN(e.X) || math.IsNaN(e.T) || math.IsNaN(e.Tau) || math.IsNaN(e.D) {
		return WorldlineEndpoint{}, false
	}
	return e, true
}

// pointAtT returns the point at a time inside the segment's finite
// endpoints, preferring the stored endpoints.
func (s WorldlineSegment) pointAtT(t float64) WorldlineEndpoint {
	switch t {
	case s.start.T:
		return s.start
	case s.end.T:
		return s.end
	}
	return s.curve.PointAt(t)
}

// Truncate returns the part of the segment between times t0 and t1. The
// second return value is false if they don't overlap. Infinite ends are kept
// only if the matching bound is infinite as well.
func (s WorldlineSegment) Truncate(t0, t1 float64) (WorldlineSegment, bool) {
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	lo := max(t0, s.min.T)
	hi := min(t1, s.max.T)
	if fuzzyGT(lo, hi) {
		return WorldlineSegment{}, false
	}
	if lo <= s.min.T && hi >= s.max.T {
		return s, true
	}
	infPast := s.infPast && math.IsInf(lo, -1)
	infFuture := s.infFuture && math.IsInf(hi, 1)

	var ts, te float64
	if infPast {
		ts = min(s.start.T, hi)
	} else {
		ts = lo
	}
	if infFuture {
		te = max(s.end.T, ts)
	} else {
		te = max(hi, ts)
	}
	return newWorldlineSegment(s.curve, s.pointAtT(ts), s.pointAtT(te), infPast, infFuture), true
}

// Intersect returns the earliest point where the segment meets l.
func (s WorldlineSegment) Intersect(l Linear) (Coordinate, bool) {
	return s.shape.IntersectLine(l)
}

// IntersectSegment returns the earliest point the two segments share. Where
// they overlap along a common curve, the start of the overlap is returned,
// or the earliest finite start when the overlap has no beginning.
func (s WorldlineSegment) IntersectSegment(o WorldlineSegment) (Coordinate, bool) {
	containsT := func(ws WorldlineSegment, t float64) bool {
		return inRange(t, ws.min.T, ws.max.T)
	}
	if s.curve.SameCurve(o.curve) {
		lo := max(s.min.T, o.min.T)
		hi := min(s.max.T, o.max.T)
		if fuzzyGT(lo, hi) {
			return Coordinate{}, false
		}
		if math.IsInf(lo, -1) {
			// Both reach back to the infinite past. Report the earlier of the
			// finite starts, which lies on both.
			if s.start.T <= o.start.T {
				return s.start.Coordinate(), true
			}
			return o.start.Coordinate(), true
		}
		if lo == s.min.T {
			return s.min.Coordinate(), true
		}
		if lo == o.min.T {
			return o.min.Coordinate(), true
		}
		return s.pointAtT(lo).Coordinate(), true
	}

	switch {
	case s.shape.IsStraight() && o.shape.IsStraight():
		return intersectLinear(s.shape.linear(), o.shape.linear())
	case o.shape.IsStraight():
		return s.shape.IntersectLine(o.shape.linear())
	case s.shape.IsStraight():
		return o.shape.IntersectLine(s.shape.linear())
	}

	cands, n := s.curve.IntersectCurve(o.curve)
	for _, p := range cands[:n] {
		if containsT(s, p.T) && containsT(o, p.T) {
			return p, true
		}
	}
	return Coordinate{}, false
}

// Clip returns the drawable parts of the segment that lie in b.
func (s WorldlineSegment) Clip(b Bounds) []CurveSegment {
	return s.shape.Clip(b)
}

func (s WorldlineSegment) VToX(v float64) float64   { return s.Convert(AxisV, AxisX, v) }
func (s WorldlineSegment) VToT(v float64) float64   { return s.Convert(AxisV, AxisT, v) }
func (s WorldlineSegment) VToTau(v float64) float64 { return s.Convert(AxisV, AxisTau, v) }
func (s WorldlineSegment) VToD(v float64) float64   { return s.Convert(AxisV, AxisD, v) }

func (s WorldlineSegment) XToV(x float64) float64   { return s.Convert(AxisX, AxisV, x) }
func (s WorldlineSegment) XToT(x float64) float64   { return s.Convert(AxisX, AxisT, x) }
func (s WorldlineSegment) XToTau(x float64) float64 { return s.Convert(AxisX, AxisTau, x) }
func (s WorldlineSegment) XToD(x float64) float64   { return s.Convert(AxisX, AxisD, x) }

func (s WorldlineSegment) TToV(t float64) float64   { return s.Convert(AxisT, AxisV, t) }
func (s WorldlineSegment) TToX(t float64) float64   { return s.Convert(AxisT, AxisX, t) }
func (s WorldlineSegment) TToTau(t float64) float64 { return s.Convert(AxisT, AxisTau, t) }
func (s WorldlineSegment) TToD(t float64) float64   { return s.Convert(AxisT, AxisD, t) }

func (s WorldlineSegment) TauToV(tau float64) float64 { return s.Convert(AxisTau, AxisV, tau) }
func (s WorldlineSegment) TauToX(tau float64) float64 { return s.Convert(AxisTau, AxisX, tau) }
func (s WorldlineSegment) TauToT(tau float64) float64 { return s.Convert(AxisTau, AxisT, tau) }
func (s WorldlineSegment) TauToD(tau float64) float64 { return s.Convert(AxisTau, AxisD, tau) }

func (s WorldlineSegment) DToV(d float64) float64   { return s.Convert(AxisD, AxisV, d) }
func (s WorldlineSegment) DToX(d float64) float64   { return s.Convert(AxisD, AxisX, d) }
func (s WorldlineSegment) DToT(d float64) float64   { return s.Convert(AxisD, AxisT, d) }
func (s WorldlineSegment) DToTau(d float64) float64 { return s.Convert(AxisD, AxisTau, d) }
