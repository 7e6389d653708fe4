package gamma

import (
	"fmt"
	"math"
)

// LineSegment is the straight segment between two finite points.
type LineSegment struct {
	P0 Coordinate
	P1 Coordinate
}

// NewLineSegment returns the segment from p0 to p1.
func NewLineSegment(p0, p1 Coordinate) LineSegment {
	return LineSegment{P0: p0, P1: p1}
}

func (l LineSegment) String() string {
	return fmt.Sprintf("LineSegment{%v, %v}", l.P0, l.P1)
}

func (l LineSegment) Point() Coordinate { return l.P0 }

func (l LineSegment) Angle() float64 { return l.P1.Sub(l.P0).Angle() }

func (l LineSegment) Slope() float64 {
	d := l.P1.Sub(l.P0)
	return d.T / d.X
}

// Length returns the length of the segment in the diagram plane.
func (l LineSegment) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter s; 0 is P0 and 1 is P1.
func (l LineSegment) Eval(s float64) Coordinate {
	return l.P0.Lerp(l.P1, s)
}

func (l LineSegment) Start() Coordinate { return l.P0 }
func (l LineSegment) End() Coordinate   { return l.P1 }

func (l LineSegment) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l LineSegment) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l LineSegment) BoundingBox() Bounds {
	return NewBounds(l.P0, l.P1)
}

func (l LineSegment) carrier() carrier {
	return carrier{p: l.P0, d: l.P1.Sub(l.P0), lo: 0, hi: 1}
}

func (l LineSegment) Intersect(o Linear) (Coordinate, bool) {
	return intersectLinear(l, o)
}

func (l LineSegment) IntersectsBounds(b Bounds) bool {
	_, ok := b.ClipSegment(l)
	return ok
}

// Clip returns the part of the segment inside b.
func (l LineSegment) Clip(b Bounds) (LineSegment, bool) {
	return b.ClipSegment(l)
}

// Line returns the full line that l lies on. A degenerate segment has no
// direction and produces a NaN line.
func (l LineSegment) Line() Line {
	return NewLineThroughPoints(l.P0, l.P1)
}

func (l LineSegment) Transform(aff Affine) LineSegment {
	return LineSegment{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Nearest returns the squared distance from pt to the nearest point of the
// segment, and that point's parameter.
func (l LineSegment) Nearest(pt Coordinate) (distSq, s float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	switch {
	case dotp <= 0.0:
		w := pt.Sub(l.P0)
		return w.Dot(w), 0.0
	case dotp >= dSquared:
		w := pt.Sub(l.P1)
		return w.Dot(w), 1.0
	default:
		s := dotp / dSquared
		w := pt.Sub(l.Eval(s))
		return w.Dot(w), s
	}
}

// Contains reports whether pt lies on the segment.
func (l LineSegment) Contains(pt Coordinate) bool {
	distSq, _ := l.Nearest(pt)
	return math.Sqrt(distSq) <= Epsilon
}
