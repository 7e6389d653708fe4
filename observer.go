package gamma

import (
	"fmt"
	"math"
	"slices"
)

// Worldline is a traveler's path through spacetime as a time-ordered chain of
// segments. It is implemented by [*Observer] and [*IntervalObserver].
type Worldline interface {
	// Segments returns the segments in time order.
	Segments() []WorldlineSegment
	// Convert maps value on axis from to axis to, using the earliest segment
	// that covers value.
	Convert(from, to Axis, value float64) (float64, error)
	// EndpointAt returns the earliest point whose value on axis at is value.
	EndpointAt(at Axis, value float64) (WorldlineEndpoint, error)
}

var (
	_ Worldline = (*Observer)(nil)
	_ Worldline = (*IntervalObserver)(nil)
)

// SegmentSpec describes one segment of an observer's worldline. A NaN V
// continues with the velocity the previous segment ended with.
type SegmentSpec struct {
	V     float64
	A     float64
	Limit Limit
}

// Observer is a traveler's complete worldline, built segment by segment. The
// first segment extends to the infinite past and the final one to the
// infinite future.
//
// An Observer is mutable until [Observer.AddFinalSegment] is called and must
// not be used concurrently while it is being built.
type Observer struct {
	origin   Coordinate
	tau      float64
	d        float64
	segments []WorldlineSegment
	final    bool
}

// NewObserver returns an observer without segments that starts at origin with
// proper time tau and distance d.
func NewObserver(origin Coordinate, tau, d float64) *Observer {
	return &Observer{origin: origin, tau: tau, d: d}
}

// BuildObserver returns the terminated observer made of specs. A last segment
// with a limit is followed by inertial motion at the velocity it ends with.
// Without specs the observer is at rest at origin forever.
func BuildObserver(origin Coordinate, tau, d float64, specs []SegmentSpec) (*Observer, error) {
	o := NewObserver(origin, tau, d)
	for i, spec := range specs {
		if i == len(specs)-1 && spec.Limit.Type == LimitNone {
			if err := o.AddFinalSegment(spec.A, spec.V); err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			return o, nil
		}
		if err := o.AddSegment(spec.Limit, spec.A, spec.V); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}
	if err := o.AddFinalSegment(0, math.NaN()); err != nil {
		return nil, fmt.Errorf("segment %d: %w", len(specs), err)
	}
	return o, nil
}

func (o *Observer) String() string {
	return fmt.Sprintf("Observer{%v, tau=%g, d=%g, %d segments}", o.origin, o.tau, o.d, len(o.segments))
}

// Origin returns the point the observer was started from.
func (o *Observer) Origin() Coordinate { return o.origin }

// Tau returns the proper time at the origin.
func (o *Observer) Tau() float64 { return o.tau }

// D returns the distance at the origin.
func (o *Observer) D() float64 { return o.d }

func (o *Observer) Segments() []WorldlineSegment { return o.segments }

// IsTerminated reports whether the final segment has been added.
func (o *Observer) IsTerminated() bool { return o.final }

// Clone returns a deep copy of o.
func (o *Observer) Clone() *Observer {
	c := *o
	c.segments = slices.Clone(o.segments)
	return &c
}

// next returns the start of the next segment.
func (o *Observer) next(v float64) (Coordinate, float64, float64, float64) {
	if len(o.segments) == 0 {
		if math.IsNaN(v) {
			v = 0
		}
		return o.origin, v, o.tau, o.d
	}
	end := o.segments[len(o.segments)-1].End()
	if math.IsNaN(v) {
		v = end.V
	}
	return end.Coordinate(), v, end.Tau, end.D
}

// AddSegment appends a segment with acceleration a and initial velocity v that
// ends as specified by limit. It panics if the observer has been terminated.
func (o *Observer) AddSegment(limit Limit, a, v float64) error {
	if o.final {
		panic("gamma: segment added to terminated observer")
	}
	p, v, tau, d := o.next(v)
	s, err := NewWorldlineSegment(limit, a, v, p, tau, d)
	if err != nil {
		return err
	}
	if len(o.segments) == 0 {
		s = s.ExtendPast()
	}
	o.segments = append(o.segments, s)
	return nil
}

// AddFinalSegment appends the last segment, which continues forever, and
// terminates the observer. It panics if the observer has been terminated.
func (o *Observer) AddFinalSegment(a, v float64) error {
	if o.final {
		panic("gamma: segment added to terminated observer")
	}
	p, v, tau, d := o.next(v)
	s, err := NewWorldlineSegment(Limit{}, a, v, p, tau, d)
	if err != nil {
		return err
	}
	if len(o.segments) == 0 {
		s = s.ExtendPast()
	}
	o.segments = append(o.segments, s.ExtendFuture())
	o.final = true
	return nil
}

func (o *Observer) Convert(from, to Axis, value float64) (float64, error) {
	return convertSegments(o.segments, from, to, value)
}

func (o *Observer) EndpointAt(at Axis, value float64) (WorldlineEndpoint, error) {
	for _, s := range o.segments {
		if e, ok := s.EndpointAt(at, value); ok {
			return e, nil
		}
	}
	return WorldlineEndpoint{}, fmt.Errorf("%v = %g: %w", at, value, ErrOutOfDomain)
}

func convertSegments(segs []WorldlineSegment, from, to Axis, value float64) (float64, error) {
	for _, s := range segs {
		if r := s.Convert(from, to, value); !math.IsNaN(r) {
			return r, nil
		}
	}
	return math.NaN(), fmt.Errorf("%v = %g to %v: %w", from, value, to, ErrOutOfDomain)
}

func (o *Observer) VToX(v float64) (float64, error)   { return o.Convert(AxisV, AxisX, v) }
func (o *Observer) VToT(v float64) (float64, error)   { return o.Convert(AxisV, AxisT, v) }
func (o *Observer) VToTau(v float64) (float64, error) { return o.Convert(AxisV, AxisTau, v) }
func (o *Observer) VToD(v float64) (float64, error)   { return o.Convert(AxisV, AxisD, v) }

func (o *Observer) XToV(x float64) (float64, error)   { return o.Convert(AxisX, AxisV, x) }
func (o *Observer) XToT(x float64) (float64, error)   { return o.Convert(AxisX, AxisT, x) }
func (o *Observer) XToTau(x float64) (float64, error) { return o.Convert(AxisX, AxisTau, x) }
func (o *Observer) XToD(x float64) (float64, error)   { return o.Convert(AxisX, AxisD, x) }

func (o *Observer) TToV(t float64) (float64, error)   { return o.Convert(AxisT, AxisV, t) }
func (o *Observer) TToX(t float64) (float64, error)   { return o.Convert(AxisT, AxisX, t) }
func (o *Observer) TToTau(t float64) (float64, error) { return o.Convert(AxisT, AxisTau, t) }
func (o *Observer) TToD(t float64) (float64, error)   { return o.Convert(AxisT, AxisD, t) }

func (o *Observer) TauToV(tau float64) (float64, error) { return o.Convert(AxisTau, AxisV, tau) }
func (o *Observer) TauToX(tau float64) (float64, error) { return o.Convert(AxisTau, AxisX, tau) }
func (o *Observer) TauToT(tau float64) (float64, error) { return o.Convert(AxisTau, AxisT, tau) }
func (o *Observer) TauToD(tau float64) (float64, error) { return o.Convert(AxisTau, AxisD, tau) }

func (o *Observer) DToV(d float64) (float64, error)   { return o.Convert(AxisD, AxisV, d) }
func (o *Observer) DToX(d float64) (float64, error)   { return o.Convert(AxisD, AxisX, d) }
func (o *Observer) DToT(d float64) (float64, error)   { return o.Convert(AxisD, AxisT, d) }
func (o *Observer) DToTau(d float64) (float64, error) { return o.Convert(AxisD, AxisTau, d) }

// IntersectLine returns the earliest point where the worldline meets l.
func (o *Observer) IntersectLine(l Linear) (Coordinate, bool) {
	for _, s := range o.segments {
		if p, ok := s.Intersect(l); ok {
			return p, true
		}
	}
	return Coordinate{}, false
}

// IntersectWorldline returns a point the two worldlines share. Segment pairs
// are tried with o's segments in the outer loop and w's in the inner loop,
// both in time order, and the first hit is returned. When both worldlines
// have several segments this is not necessarily the earliest common point.
func (o *Observer) IntersectWorldline(w Worldline) (Coordinate, bool) {
	others := w.Segments()
	for _, s := range o.segments {
		for _, t := range others {
			if p, ok := s.IntersectSegment(t); ok {
				return p, true
			}
		}
	}
	return Coordinate{}, false
}

// Clip returns the drawable parts of the worldline that lie in b, in time
// order.
func (o *Observer) Clip(b Bounds) []CurveSegment {
	var out []CurveSegment
	for _, s := range o.segments {
		if !s.BoundingBox().Intersects(b) {
			continue
		}
		out = append(out, s.Clip(b)...)
	}
	return out
}

// RelativeTo returns the worldline as seen from frame f. Each segment is
// rebuilt from its boosted finite endpoints. Proper time and acceleration are
// invariant; velocities are combined relativistically and distances are
// accumulated again in the new frame.
func (o *Observer) RelativeTo(f Frame) (*Observer, error) {
	n := &Observer{
		origin:   f.ToFrame(o.origin),
		tau:      o.tau,
		d:        o.d,
		segments: make([]WorldlineSegment, 0, len(o.segments)),
		final:    o.final,
	}
	for i, s := range o.segments {
		start, end := s.Start(), s.End()
		d := start.D
		if i > 0 {
			d = n.segments[i-1].End().D
		}
		ns, err := NewWorldlineSegmentBetween(
			s.A(),
			RelativeVelocity(start.V, f.V()),
			f.ToFrame(start.Coordinate()),
			start.Tau,
			d,
			f.ToFrame(end.Coordinate()),
		)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		if s.IsInfinitePast() {
			ns = ns.ExtendPast()
		}
		if s.IsInfiniteFuture() {
			ns = ns.ExtendFuture()
		}
		n.segments = append(n.segments, ns)
	}
	return n, nil
}
