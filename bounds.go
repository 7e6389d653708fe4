package gamma

import (
	"fmt"
	"math"
)

// Bounds is an axis-aligned rectangle in the (x, t) plane. Edges may be
// infinite. Min is never greater than Max on either axis.
type Bounds struct {
	Min Coordinate
	Max Coordinate
}

// NewBounds returns the bounds with corners c0 and c1, in any order.
func NewBounds(c0, c1 Coordinate) Bounds {
	return Bounds{
		Min: Coordinate{X: min(c0.X, c1.X), T: min(c0.T, c1.T)},
		Max: Coordinate{X: max(c0.X, c1.X), T: max(c0.T, c1.T)},
	}
}

// InfiniteBounds returns bounds that cover all of spacetime.
func InfiniteBounds() Bounds {
	return Bounds{
		Min: Coordinate{X: math.Inf(-1), T: math.Inf(-1)},
		Max: Coordinate{X: math.Inf(1), T: math.Inf(1)},
	}
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%v, %v]", b.Min, b.Max)
}

func (b Bounds) Width() float64  { return b.Max.X - b.Min.X }
func (b Bounds) Height() float64 { return b.Max.T - b.Min.T }

// IsEmpty reports whether b can contain no point at all. This is the case for
// NaN edges and for an axis whose two edges are the same infinity.
func (b Bounds) IsEmpty() bool {
	if b.Min.IsNaN() || b.Max.IsNaN() {
		return true
	}
	degenerate := func(lo, hi float64) bool {
		return math.IsInf(lo, 0) && lo == hi
	}
	return degenerate(b.Min.X, b.Max.X) || degenerate(b.Min.T, b.Max.T)
}

// IsInf reports whether any edge of b is infinite.
func (b Bounds) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

// Inside reports whether c lies in b, edges included.
func (b Bounds) Inside(c Coordinate) bool {
	if b.IsEmpty() {
		return false
	}
	return inRange(c.X, b.Min.X, b.Max.X) && inRange(c.T, b.Min.T, b.Max.T)
}

func (b Bounds) insideX(x float64) bool { return inRange(x, b.Min.X, b.Max.X) }

// Intersects reports whether b and o share at least one point.
func (b Bounds) Intersects(o Bounds) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return fuzzyLE(b.Min.X, o.Max.X) && fuzzyLE(o.Min.X, b.Max.X) &&
		fuzzyLE(b.Min.T, o.Max.T) && fuzzyLE(o.Min.T, b.Max.T)
}

// Intersect returns the intersection of two bounds. The second return value
// is false if they don't intersect.
func (b Bounds) Intersect(o Bounds) (Bounds, bool) {
	if !b.Intersects(o) {
		return Bounds{}, false
	}
	x0 := max(b.Min.X, o.Min.X)
	t0 := max(b.Min.T, o.Min.T)
	x1 := min(b.Max.X, o.Max.X)
	t1 := min(b.Max.T, o.Max.T)
	return Bounds{
		Min: Coordinate{X: x0, T: t0},
		Max: Coordinate{X: max(x0, x1), T: max(t0, t1)},
	}, true
}

// Union returns the smallest bounds enclosing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: Coordinate{X: min(b.Min.X, o.Min.X), T: min(b.Min.T, o.Min.T)},
		Max: Coordinate{X: max(b.Max.X, o.Max.X), T: max(b.Max.T, o.Max.T)},
	}
}

// UnionPoint returns the smallest bounds enclosing b and c.
func (b Bounds) UnionPoint(c Coordinate) Bounds {
	return Bounds{
		Min: Coordinate{X: min(b.Min.X, c.X), T: min(b.Min.T, c.T)},
		Max: Coordinate{X: max(b.Max.X, c.X), T: max(b.Max.T, c.T)},
	}
}

// Outcode is the Cohen–Sutherland classification of a point relative to
// bounds.
type Outcode uint8

const (
	Inside Outcode = 0
	Left   Outcode = 1
	Right  Outcode = 2
	Bottom Outcode = 4
	Top    Outcode = 8
)

func (oc Outcode) String() string {
	if oc == Inside {
		return "inside"
	}
	s := ""
	for _, part := range []struct {
		bit  Outcode
		name string
	}{{Left, "left"}, {Right, "right"}, {Bottom, "bottom"}, {Top, "top"}} {
		if oc&part.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += part.name
		}
	}
	return s
}

// Outcode classifies c relative to b. A coordinate at an infinity matching an
// infinite edge is inside on that axis.
func (b Bounds) Outcode(c Coordinate) Outcode {
	var oc Outcode
	if fuzzyLT(c.X, b.Min.X) {
		oc |= Left
	} else if fuzzyGT(c.X, b.Max.X) {
		oc |= Right
	}
	if fuzzyLT(c.T, b.Min.T) {
		oc |= Bottom
	} else if fuzzyGT(c.T, b.Max.T) {
		oc |= Top
	}
	return oc
}

// ClipSegment clips a line segment to b. The second return value is false if
// no part of the segment lies in b.
func (b Bounds) ClipSegment(l LineSegment) (LineSegment, bool) {
	if b.IsEmpty() {
		return LineSegment{}, false
	}
	p0, p1, ok := b.clip(l.P0, l.P1, l.P0, l.P1.Sub(l.P0))
	if !ok {
		return LineSegment{}, false
	}
	return LineSegment{P0: p0, P1: p1}, true
}

// clip runs the Cohen–Sutherland loop on the segment p0–p1, which lies on the
// line through anchor with direction dir. Edge crossings are computed from the
// carrier line rather than from the endpoints, so p0 and p1 may be infinite as
// long as anchor is finite.
func (b Bounds) clip(p0, p1, anchor Coordinate, dir Vec2) (Coordinate, Coordinate, bool) {
	oc0 := b.Outcode(p0)
	oc1 := b.Outcode(p1)
	// Each pass moves one endpoint onto an edge, so four passes per endpoint
	// is more than enough.
	for pass := 0; pass < 8; pass++ {
		if oc0 == Inside && oc1 == Inside {
			return p0, p1, true
		}
		if oc0&oc1 != 0 {
			return p0, p1, false
		}
		out := oc0
		if out == Inside {
			out = oc1
		}

		var c Coordinate
		switch {
		case out&Top != 0:
			c = Coordinate{X: xAtT(anchor, dir, b.Max.T), T: b.Max.T}
		case out&Bottom != 0:
			c = Coordinate{X: xAtT(anchor, dir, b.Min.T), T: b.Min.T}
		case out&Right != 0:
			c = Coordinate{X: b.Max.X, T: tAtX(anchor, dir, b.Max.X)}
		case out&Left != 0:
			c = Coordinate{X: b.Min.X, T: tAtX(anchor, dir, b.Min.X)}
		}

		if out == oc0 {
			p0 = c
			oc0 = b.Outcode(p0)
		} else {
			p1 = c
			oc1 = b.Outcode(p1)
		}
	}
	return p0, p1, false
}

// xAtT returns the x coordinate of the line through anchor with direction dir
// at time t.
func xAtT(anchor Coordinate, dir Vec2, t float64) float64 {
	if dir.X == 0 {
		return anchor.X
	}
	return anchor.X + (t-anchor.T)*dir.X/dir.T
}

// tAtX returns the time at which the line through anchor with direction dir
// reaches x.
func tAtX(anchor Coordinate, dir Vec2, x float64) float64 {
	if dir.T == 0 {
		return anchor.T
	}
	return anchor.T + (x-anchor.X)*dir.T/dir.X
}
