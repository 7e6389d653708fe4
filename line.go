package gamma

import (
	"fmt"
	"math"
)

// Linear describes the straight members of the line family: [Line],
// [BoundedLine] and [LineSegment].
type Linear interface {
	// Point returns a representative point on the line.
	Point() Coordinate
	// Angle returns the line's angle in radians, measured from the positive x
	// axis.
	Angle() float64
	// Slope returns dt/dx, which is infinite for vertical lines.
	Slope() float64
	// BoundingBox returns the smallest bounds enclosing the line. Its edges
	// are infinite where the line extends without end.
	BoundingBox() Bounds
	// Intersect returns the point where two lines cross.
	Intersect(o Linear) (Coordinate, bool)
	// IntersectsBounds reports whether any part of the line lies in b.
	IntersectsBounds(b Bounds) bool

	carrier() carrier
}

var (
	_ Linear = Line{}
	_ Linear = BoundedLine{}
	_ Linear = LineSegment{}
)

// Extent says in which directions a [Line] continues without end.
type Extent int

const (
	// ExtentBoth is a full line.
	ExtentBoth Extent = iota
	// ExtentForward is a ray starting at the line's point and continuing in
	// the direction of its angle.
	ExtentForward
	// ExtentBackward is a ray ending at the line's point.
	ExtentBackward
)

func (e Extent) String() string {
	switch e {
	case ExtentBoth:
		return "both"
	case ExtentForward:
		return "forward"
	case ExtentBackward:
		return "backward"
	default:
		return fmt.Sprintf("Extent(%d)", int(e))
	}
}

// Line is an infinite line or a ray, given by a point and a direction.
type Line struct {
	p      Coordinate
	dir    Vec2
	extent Extent
}

// NewLine returns the full line through p with angle th, in radians.
func NewLine(th float64, p Coordinate) Line {
	return Line{p: p, dir: VecFromAngle(th), extent: ExtentBoth}
}

// NewRay returns the half-infinite line starting at p with angle th, in
// radians. The extent must be ExtentForward or ExtentBackward; a backward ray
// ends at p and comes from the direction opposite to th.
func NewRay(th float64, p Coordinate, e Extent) Line {
	return Line{p: p, dir: VecFromAngle(th), extent: e}
}

// NewLineThroughPoints returns the full line through p0 and p1, with its
// direction pointing from p0 to p1.
func NewLineThroughPoints(p0, p1 Coordinate) Line {
	return Line{p: p0, dir: p1.Sub(p0).Normalize(), extent: ExtentBoth}
}

// newLineWithDir returns a line through p with direction d, which needn't be
// normalized.
func newLineWithDir(p Coordinate, d Vec2, e Extent) Line {
	return Line{p: p, dir: d.Normalize(), extent: e}
}

// LightCone returns the two light rays through p: the one moving in the
// positive x direction first.
func LightCone(p Coordinate) (Line, Line) {
	return newLineWithDir(p, Vec2{X: 1, T: 1}, ExtentBoth),
		newLineWithDir(p, Vec2{X: -1, T: 1}, ExtentBoth)
}

func (l Line) String() string {
	return fmt.Sprintf("Line{%v, %g rad, %v}", l.p, l.Angle(), l.extent)
}

func (l Line) Point() Coordinate  { return l.p }
func (l Line) Direction() Vec2    { return l.dir }
func (l Line) Extent() Extent     { return l.extent }
func (l Line) Angle() float64     { return l.dir.Angle() }
func (l Line) Slope() float64     { return l.dir.T / l.dir.X }
func (l Line) IsVertical() bool   { return l.dir.X == 0 }
func (l Line) IsHorizontal() bool { return l.dir.T == 0 }

// ends returns the backward and forward ends of the line. Ends that continue
// without end are infinite on each axis along which the line moves.
func (l Line) ends() (Coordinate, Coordinate) {
	toward := func(s float64) Coordinate {
		c := l.p
		if l.dir.X != 0 {
			c.X = math.Copysign(math.Inf(1), s*l.dir.X)
		}
		if l.dir.T != 0 {
			c.T = math.Copysign(math.Inf(1), s*l.dir.T)
		}
		return c
	}
	back, fwd := l.p, l.p
	if l.extent != ExtentForward {
		back = toward(-1)
	}
	if l.extent != ExtentBackward {
		fwd = toward(1)
	}
	return back, fwd
}

func (l Line) BoundingBox() Bounds {
	back, fwd := l.ends()
	return NewBounds(back, fwd)
}

func (l Line) carrier() carrier {
	cl := carrier{p: l.p, d: l.dir, lo: math.Inf(-1), hi: math.Inf(1)}
	switch l.extent {
	case ExtentForward:
		cl.lo = 0
	case ExtentBackward:
		cl.hi = 0
	}
	return cl
}

func (l Line) Intersect(o Linear) (Coordinate, bool) {
	return intersectLinear(l, o)
}

func (l Line) IntersectsBounds(b Bounds) bool {
	_, ok := l.InfiniteClip(b)
	return ok
}

// Transform returns the line mapped by aff.
func (l Line) Transform(aff Affine) Line {
	p := l.p.Transform(aff)
	q := l.p.Translate(l.dir).Transform(aff)
	return Line{p: p, dir: q.Sub(p).Normalize(), extent: l.extent}
}

// carrier is the parametric form p + s·d, s ∈ [lo, hi], shared by all straight
// shapes. A range with lo > hi is empty.
type carrier struct {
	p      Coordinate
	d      Vec2
	lo, hi float64
}

func (c carrier) empty() bool { return c.lo > c.hi }

func (c carrier) eval(s float64) Coordinate {
	return c.p.Translate(c.d.Mul(s))
}

// contains reports whether the parameter s lies in the carrier's range. The
// tolerance is relative to the length of d.
func (c carrier) contains(s float64) bool {
	eps := Epsilon / c.d.Hypot()
	return s >= c.lo-eps && s <= c.hi+eps
}

// intersectCarriers returns the crossing point of two straight shapes.
// Parallel and coincident shapes don't cross.
func intersectCarriers(a, b carrier) (Coordinate, bool) {
	if a.empty() || b.empty() {
		return Coordinate{}, false
	}
	cross := a.d.Cross(b.d)
	if math.Abs(cross) <= Epsilon*a.d.Hypot()*b.d.Hypot() {
		return Coordinate{}, false
	}
	w := b.p.Sub(a.p)
	sa := w.Cross(b.d) / cross
	sb := w.Cross(a.d) / cross
	if !a.contains(sa) || !b.contains(sb) {
		return Coordinate{}, false
	}
	return a.eval(sa), true
}

func intersectLinear(l, o Linear) (Coordinate, bool) {
	return intersectCarriers(l.carrier(), o.carrier())
}
