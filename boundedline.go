package gamma

import (
	"fmt"
	"math"
)

// BoundedLine is a [Line] restricted to the part that lies within bounds.
// Unlike [LineSegment], its ends may be infinite when the bounds are.
type BoundedLine struct {
	Line   Line
	Bounds Bounds
}

// NewBoundedLine restricts l to b.
func NewBoundedLine(l Line, b Bounds) BoundedLine {
	return BoundedLine{Line: l, Bounds: b}
}

func (bl BoundedLine) String() string {
	return fmt.Sprintf("BoundedLine{%v, %v}", bl.Line, bl.Bounds)
}

func (bl BoundedLine) Point() Coordinate { return bl.Line.Point() }
func (bl BoundedLine) Angle() float64    { return bl.Line.Angle() }
func (bl BoundedLine) Slope() float64    { return bl.Line.Slope() }

// Segment returns the visible part of the line. The second return value is
// false if the line misses its bounds.
func (bl BoundedLine) Segment() (CurveSegment, bool) {
	return bl.Line.InfiniteClip(bl.Bounds)
}

// BoundingBox returns the bounding box of the visible part. A line that
// misses its bounds has an empty bounding box.
func (bl BoundedLine) BoundingBox() Bounds {
	seg, ok := bl.Segment()
	if !ok {
		return Bounds{Min: Coordinate{X: math.NaN(), T: math.NaN()}, Max: Coordinate{X: math.NaN(), T: math.NaN()}}
	}
	return seg.BoundingBox()
}

func (bl BoundedLine) carrier() carrier {
	seg, ok := bl.Segment()
	if !ok {
		return carrier{p: bl.Line.p, d: bl.Line.dir, lo: 1, hi: 0}
	}
	switch seg.Kind {
	case LineKind:
		return seg.Line().carrier()
	case LineSegmentKind:
		return seg.LineSegment().carrier()
	default:
		panic(fmt.Sprintf("invalid CurveSegment kind %v", seg.Kind))
	}
}

func (bl BoundedLine) Intersect(o Linear) (Coordinate, bool) {
	return intersectLinear(bl, o)
}

func (bl BoundedLine) IntersectsBounds(b Bounds) bool {
	inner, ok := bl.Bounds.Intersect(b)
	if !ok {
		return false
	}
	return bl.Line.IntersectsBounds(inner)
}
