package gamma

import "math"

// InfiniteClip clips the line to b. Unlike [Bounds.ClipSegment], both the line
// and the bounds may be infinite.
//
// The result is a [LineSegment] if both ends of the clipped line are finite,
// and a [Line] anchored at the finite end otherwise. The second return value
// is false if the line misses b.
func (l Line) InfiniteClip(b Bounds) (CurveSegment, bool) {
	if b.IsEmpty() {
		return CurveSegment{}, false
	}
	switch {
	case l.IsVertical():
		if !b.insideX(l.p.X) {
			return CurveSegment{}, false
		}
		return l.clampedClip(l.p.T, l.dir.T, b.Min.T, b.Max.T, func(t float64) Coordinate {
			return Coordinate{X: l.p.X, T: t}
		})
	case l.IsHorizontal():
		if !inRange(l.p.T, b.Min.T, b.Max.T) {
			return CurveSegment{}, false
		}
		return l.clampedClip(l.p.X, l.dir.X, b.Min.X, b.Max.X, func(x float64) Coordinate {
			return Coordinate{X: x, T: l.p.T}
		})
	}

	back, fwd := l.ends()
	p0, p1, ok := b.clip(back, fwd, l.p, l.dir)
	if !ok {
		return CurveSegment{}, false
	}
	return l.fromEnds(p0, p1), true
}

// clampedClip clips an axis-aligned line. v is the anchor's value on the axis
// the line moves along and dv the direction's component on that axis.
func (l Line) clampedClip(v, dv, lo, hi float64, at func(float64) Coordinate) (CurveSegment, bool) {
	// Parameter range along the axis, in the direction of the line.
	s0, s1 := math.Inf(-1), math.Inf(1)
	switch l.extent {
	case ExtentForward:
		s0 = 0
	case ExtentBackward:
		s1 = 0
	}
	// Convert to axis values; a negative direction swaps the ends.
	a0, a1 := v+s0*dv, v+s1*dv
	if s0 == 0 {
		a0 = v
	}
	if s1 == 0 {
		a1 = v
	}
	if dv < 0 {
		a0, a1 = a1, a0
	}
	a0 = max(a0, lo)
	a1 = min(a1, hi)
	if fuzzyGT(a0, a1) {
		return CurveSegment{}, false
	}
	p0, p1 := at(a0), at(a1)
	if dv < 0 {
		p0, p1 = p1, p0
	}
	return l.fromEnds(p0, p1), true
}

// fromEnds builds the clipped result from its backward and forward ends.
func (l Line) fromEnds(p0, p1 Coordinate) CurveSegment {
	inf0, inf1 := p0.IsInf(), p1.IsInf()
	switch {
	case !inf0 && !inf1:
		return LineSegment{P0: p0, P1: p1}.Seg()
	case inf0 && inf1:
		return Line{p: l.p, dir: l.dir, extent: ExtentBoth}.Seg()
	case inf0:
		return Line{p: p1, dir: l.dir, extent: ExtentBackward}.Seg()
	default:
		return Line{p: p0, dir: l.dir, extent: ExtentForward}.Seg()
	}
}
