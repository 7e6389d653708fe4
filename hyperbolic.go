package gamma

import (
	"fmt"
	"math"
	"slices"
)

// HyperbolicSegment is the part of an accelerating curve between two times.
// Its ends may be infinite.
type HyperbolicSegment struct {
	Min   Coordinate
	Max   Coordinate
	Curve HyperbolicMotionCurve
}

// NewHyperbolicSegment returns the part of c between the two points, in any
// order. c must have a non-zero acceleration.
func NewHyperbolicSegment(c HyperbolicMotionCurve, p0, p1 Coordinate) HyperbolicSegment {
	if c.a == 0 {
		panic("gamma: hyperbolic segment with zero acceleration")
	}
	if p1.T < p0.T {
		p0, p1 = p1, p0
	}
	return HyperbolicSegment{Min: p0, Max: p1, Curve: c}
}

func (h HyperbolicSegment) String() string {
	return fmt.Sprintf("HyperbolicSegment{a=%g, %v, %v}", h.Curve.a, h.Min, h.Max)
}

func (h HyperbolicSegment) A() float64 { return h.Curve.a }

// BoundingBox returns the smallest bounds enclosing the segment, including
// the turnaround point if the segment passes through it.
func (h HyperbolicSegment) BoundingBox() Bounds {
	b := NewBounds(h.Min, h.Max)
	if p, ok := h.Curve.Turnaround(); ok && inRange(p.T, h.Min.T, h.Max.T) {
		b = b.UnionPoint(p)
	}
	return b
}

// at returns the point of the curve at time t.
func (h HyperbolicSegment) at(t float64) Coordinate {
	switch t {
	case h.Min.T:
		return h.Min
	case h.Max.T:
		return h.Max
	}
	return Coordinate{X: h.Curve.TToX(t), T: t}
}

func (h HyperbolicSegment) containsT(t float64) bool {
	return inRange(t, h.Min.T, h.Max.T)
}

// IntersectLine returns the earliest point where the segment meets l.
func (h HyperbolicSegment) IntersectLine(l Linear) (Coordinate, bool) {
	cands, n := h.Curve.IntersectLine(l)
	for _, p := range cands[:n] {
		if h.containsT(p.T) {
			return p, true
		}
	}
	return Coordinate{}, false
}

// Clip returns the parts of the segment that lie in b, in time order. An
// accelerating curve can leave and re-enter the bounds through the same
// vertical edge, so there may be two parts.
func (h HyperbolicSegment) Clip(b Bounds) []HyperbolicSegment {
	if b.IsEmpty() {
		return nil
	}
	lo := max(h.Min.T, b.Min.T)
	hi := min(h.Max.T, b.Max.T)
	if fuzzyGT(lo, hi) {
		return nil
	}
	hi = max(lo, hi)

	cuts := []float64{lo, hi}
	for _, x := range [2]float64{b.Min.X, b.Max.X} {
		if math.IsInf(x, 0) {
			continue
		}
		for _, br := range [2]Branch{PreferEarlier, PreferLater} {
			if t := h.Curve.XToT(x, br); t > lo && t < hi {
				cuts = append(cuts, t)
			}
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	var out []HyperbolicSegment
	if len(cuts) == 1 {
		// The bounds touch the segment at a single time.
		if p := h.at(cuts[0]); b.insideX(p.X) {
			out = append(out, HyperbolicSegment{Min: p, Max: p, Curve: h.Curve})
		}
		return out
	}
	for i := 0; i < len(cuts)-1; i++ {
		t0, t1 := cuts[i], cuts[i+1]
		if !b.insideX(h.Curve.TToX(between(t0, t1))) {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Max.T == t0 {
			out[n-1].Max = h.at(t1)
			continue
		}
		out = append(out, HyperbolicSegment{Min: h.at(t0), Max: h.at(t1), Curve: h.Curve})
	}
	return out
}

// between returns a value strictly between lo and hi, which may be infinite.
func between(lo, hi float64) float64 {
	switch {
	case math.IsInf(lo, -1) && math.IsInf(hi, 1):
		return 0
	case math.IsInf(lo, -1):
		return hi - 1 - math.Abs(hi)
	case math.IsInf(hi, 1):
		return lo + 1 + math.Abs(lo)
	default:
		return lo + (hi-lo)/2
	}
}
