package gamma

import (
	"math"
	"testing"
)

func TestNewBoundsSorts(t *testing.T) {
	b := NewBounds(Coord(5, -1), Coord(-2, 3))
	diff(t, Bounds{Min: Coord(-2, -1), Max: Coord(5, 3)}, b)

	inf := NewBounds(Coord(math.Inf(1), 0), Coord(0, math.Inf(-1)))
	diff(t, Bounds{Min: Coord(0, math.Inf(-1)), Max: Coord(math.Inf(1), 0)}, inf)
}

func TestBoundsIntersect(t *testing.T) {
	bs := []Bounds{
		NewBounds(Coord(0, 0), Coord(10, 10)),
		NewBounds(Coord(5, -5), Coord(15, 5)),
		NewBounds(Coord(-1, -1), Coord(1, 1)),
		InfiniteBounds(),
		NewBounds(Coord(3, math.Inf(-1)), Coord(4, math.Inf(1))),
	}
	for _, b := range bs {
		got, ok := b.Intersect(b)
		if !ok {
			t.Errorf("%v doesn't intersect itself", b)
			continue
		}
		diff(t, b, got)
	}
	for _, a := range bs {
		for _, b := range bs {
			ab, okAB := a.Intersect(b)
			ba, okBA := b.Intersect(a)
			if okAB != okBA {
				t.Errorf("%v ∩ %v: %t vs %t", a, b, okAB, okBA)
				continue
			}
			diff(t, ab, ba)
			if okAB && (ab.Min.X > ab.Max.X || ab.Min.T > ab.Max.T) {
				t.Errorf("%v ∩ %v = %v isn't sorted", a, b, ab)
			}
		}
	}

	got, ok := bs[0].Intersect(bs[1])
	if !ok {
		t.Fatal("overlapping bounds don't intersect")
	}
	diff(t, NewBounds(Coord(5, 0), Coord(10, 5)), got)

	if _, ok := bs[1].Intersect(bs[2]); ok {
		t.Error("disjoint bounds intersect")
	}
}

func TestBoundsEmpty(t *testing.T) {
	degenerate := Bounds{Min: Coord(math.Inf(1), 0), Max: Coord(math.Inf(1), 1)}
	if !degenerate.IsEmpty() {
		t.Errorf("%v isn't empty", degenerate)
	}
	if degenerate.Intersects(InfiniteBounds()) {
		t.Errorf("%v intersects everything", degenerate)
	}
	if _, ok := InfiniteBounds().Intersect(degenerate); ok {
		t.Errorf("%v intersects everything", degenerate)
	}
	if degenerate.Inside(Coord(math.Inf(1), 0.5)) {
		t.Errorf("%v has a point inside", degenerate)
	}
	if InfiniteBounds().IsEmpty() {
		t.Error("infinite bounds are empty")
	}
}

func TestBoundsInside(t *testing.T) {
	b := NewBounds(Coord(0, 0), Coord(1, 1))
	for _, c := range []Coordinate{Coord(0, 0), Coord(1, 1), Coord(0.5, 0.5), Coord(1+1e-12, 0)} {
		if !b.Inside(c) {
			t.Errorf("%v isn't inside %v", c, b)
		}
	}
	for _, c := range []Coordinate{Coord(-0.1, 0), Coord(0.5, 1.1), Coord(math.NaN(), 0)} {
		if b.Inside(c) {
			t.Errorf("%v is inside %v", c, b)
		}
	}
}

func TestBoundsOutcode(t *testing.T) {
	b := NewBounds(Coord(0, 0), Coord(1, 1))
	tests := []struct {
		c    Coordinate
		want Outcode
	}{
		{Coord(0.5, 0.5), Inside},
		{Coord(-1, 0.5), Left},
		{Coord(2, 0.5), Right},
		{Coord(0.5, -1), Bottom},
		{Coord(0.5, 2), Top},
		{Coord(-1, -1), Left | Bottom},
		{Coord(2, 2), Right | Top},
		{Coord(math.Inf(-1), math.Inf(1)), Left | Top},
	}
	for _, tt := range tests {
		if got := b.Outcode(tt.c); got != tt.want {
			t.Errorf("Outcode(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}

	inf := InfiniteBounds()
	if got := inf.Outcode(Coord(math.Inf(-1), math.Inf(1))); got != Inside {
		t.Errorf("got %v, want inside", got)
	}
}

func TestBoundsClipSegment(t *testing.T) {
	b := NewBounds(Coord(0, 0), Coord(2, 1))
	tests := []struct {
		in   LineSegment
		want LineSegment
		ok   bool
	}{
		{NewLineSegment(Coord(-1, 0.5), Coord(3, 0.5)), NewLineSegment(Coord(0, 0.5), Coord(2, 0.5)), true},
		{NewLineSegment(Coord(0.5, 0.25), Coord(1, 0.75)), NewLineSegment(Coord(0.5, 0.25), Coord(1, 0.75)), true},
		{NewLineSegment(Coord(-1, -1), Coord(3, 3)), NewLineSegment(Coord(0, 0), Coord(1, 1)), true},
		{NewLineSegment(Coord(1, 3), Coord(1, -3)), NewLineSegment(Coord(1, 1), Coord(1, 0)), true},
		{NewLineSegment(Coord(3, 0), Coord(4, 1)), LineSegment{}, false},
		{NewLineSegment(Coord(-1, 1.5), Coord(1.5, 4)), LineSegment{}, false},
	}
	for _, tt := range tests {
		got, ok := b.ClipSegment(tt.in)
		if ok != tt.ok {
			t.Errorf("ClipSegment(%v): got ok = %t, want %t", tt.in, ok, tt.ok)
			continue
		}
		diff(t, tt.want, got)
	}
}

func TestBoundsUnion(t *testing.T) {
	a := NewBounds(Coord(0, 0), Coord(1, 1))
	b := NewBounds(Coord(2, -1), Coord(3, 0))
	diff(t, NewBounds(Coord(0, -1), Coord(3, 1)), a.Union(b))
	diff(t, NewBounds(Coord(-1, 0), Coord(1, 5)), a.UnionPoint(Coord(-1, 5)))
}
