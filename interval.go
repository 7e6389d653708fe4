package gamma

import (
	"fmt"
	"math"
)

// IntervalObserver is the part of an observer's worldline between two values
// of time, proper time or distance. Segments that lie wholly inside the
// interval are shared with the parent; the ones at its ends are truncated.
//
// Unlike a full [Observer], an IntervalObserver does not cover all of time, so
// its queries can fail with [ErrOutOfDomain] for values the parent resolves.
type IntervalObserver struct {
	Observer

	parent *Observer
	axis   Axis
	lo, hi float64
}

// NewIntervalObserver restricts o to the values in [lo, hi] on axis, which
// must be AxisT, AxisTau or AxisD. Either limit may be infinite.
func NewIntervalObserver(o *Observer, axis Axis, lo, hi float64) (*IntervalObserver, error) {
	switch axis {
	case AxisT, AxisTau, AxisD:
	default:
		return nil, fmt.Errorf("interval on axis %v: %w", axis, ErrInvalidParameter)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, fmt.Errorf("interval [%g, %g]: %w", lo, hi, ErrInvalidParameter)
	}
	if hi < lo {
		lo, hi = hi, lo
	}

	segs := o.Segments()
	if len(segs) == 0 {
		return nil, fmt.Errorf("interval [%g, %g]: %w", lo, hi, ErrEmptyInterval)
	}
	t0 := firstTime(segs, axis, lo)
	t1 := lastTime(segs, axis, hi)
	if math.IsNaN(t0) || math.IsNaN(t1) {
		return nil, fmt.Errorf("%v interval [%g, %g]: %w", axis, lo, hi, ErrEmptyInterval)
	}
	if t1 < t0 {
		t0, t1 = t1, t0
	}

	io := &IntervalObserver{
		Observer: Observer{
			origin: o.origin,
			tau:    o.tau,
			d:      o.d,
			final:  true,
		},
		parent: o,
		axis:   axis,
		lo:     lo,
		hi:     hi,
	}
	for _, s := range segs {
		if ts, ok := s.Truncate(t0, t1); ok {
			io.segments = append(io.segments, ts)
		}
	}
	if len(io.segments) == 0 {
		return nil, fmt.Errorf("%v interval [%g, %g]: %w", axis, lo, hi, ErrEmptyInterval)
	}
	return io, nil
}

// Parent returns the observer the interval was taken from.
func (io *IntervalObserver) Parent() *Observer { return io.parent }

// Axis returns the axis the interval was specified on.
func (io *IntervalObserver) Axis() Axis { return io.axis }

// Range returns the interval's limits as given on its axis.
func (io *IntervalObserver) Range() (lo, hi float64) { return io.lo, io.hi }

func (io *IntervalObserver) String() string {
	return fmt.Sprintf("IntervalObserver{%v in [%g, %g], %d segments}", io.axis, io.lo, io.hi, len(io.segments))
}

// firstTime returns the earliest time at which the worldline has value on
// axis. Values before the start of the worldline map to −∞; values after its
// end produce NaN.
func firstTime(segs []WorldlineSegment, axis Axis, value float64) float64 {
	for _, s := range segs {
		if t := s.Convert(axis, AxisT, value); !math.IsNaN(t) {
			return t
		}
	}
	first, last := segs[0].Min(), segs[len(segs)-1].Max()
	switch {
	case value < first.Value(axis):
		return math.Inf(-1)
	case value > last.Value(axis):
		return math.NaN()
	}
	panic(fmt.Sprintf("gamma: %v = %g not found inside worldline", axis, value))
}

// lastTime returns the latest time at which the worldline has value on axis.
// Values after the end of the worldline map to +∞; values before its start
// produce NaN.
func lastTime(segs []WorldlineSegment, axis Axis, value float64) float64 {
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		if fuzzyEQ(value, s.Max().Value(axis)) {
			return s.Max().T
		}
		if t := s.Convert(axis, AxisT, value); !math.IsNaN(t) {
			return t
		}
	}
	first, last := segs[0].Min(), segs[len(segs)-1].Max()
	switch {
	case value > last.Value(axis):
		return math.Inf(1)
	case value < first.Value(axis):
		return math.NaN()
	}
	panic(fmt.Sprintf("gamma: %v = %g not found inside worldline", axis, value))
}
