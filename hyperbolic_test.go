package gamma

import (
	"math"
	"testing"
)

// turningSegment passes through its turnaround point at (−0.1547, 0.5774),
// starting and ending at x = 0.
func turningSegment(t *testing.T) HyperbolicSegment {
	t.Helper()
	s, err := NewWorldlineSegment(Limit{Type: LimitV, Value: 0.5}, 1, -0.5, Coord(0, 0), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Shape().Kind != HyperbolicKind {
		t.Fatalf("got shape %v, want a hyperbolic segment", s.Shape())
	}
	return s.Shape().Hyperbolic()
}

func TestHyperbolicSegmentBoundingBox(t *testing.T) {
	h := turningSegment(t)
	want := Bounds{Min: Coord(1-2/math.Sqrt(3), 0), Max: Coord(0, 2/math.Sqrt(3))}
	diff(t, want, h.BoundingBox())

	// Without the turnaround the box is spanned by the ends.
	c := NewHyperbolicMotionCurve(1, 0, Coord(0, 0), 0, 0)
	later := NewHyperbolicSegment(c, Coord(c.TToX(2), 2), Coord(c.TToX(1), 1))
	diff(t, NewBounds(Coord(c.TToX(1), 1), Coord(c.TToX(2), 2)), later.BoundingBox())
	diff(t, Coord(c.TToX(1), 1), later.Min)
}

func TestHyperbolicSegmentIntersectLine(t *testing.T) {
	h := turningSegment(t)
	p, ok := h.IntersectLine(NewLine(math.Pi/2, Coord(-0.1, 0)))
	if !ok {
		t.Fatal("no intersection")
	}
	diff(t, Coord(-0.1, 0.24209928014189347), p)

	if _, ok := h.IntersectLine(NewLine(0, Coord(0, 2))); ok {
		t.Error("segment intersects a line after its end")
	}
	if _, ok := h.IntersectLine(NewLine(math.Pi/2, Coord(-0.2, 0))); ok {
		t.Error("segment intersects a line behind its turnaround")
	}
}

func TestHyperbolicSegmentClip(t *testing.T) {
	h := turningSegment(t)

	parts := h.Clip(NewBounds(Coord(-0.1, -1), Coord(1, 2)))
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2: %v", len(parts), parts)
	}
	diff(t, Coord(0, 0), parts[0].Min)
	diff(t, Coord(-0.1, 0.24209928014189347), parts[0].Max)
	diff(t, Coord(-0.1, 0.9126012582373579), parts[1].Min)
	diff(t, h.Max, parts[1].Max)

	parts = h.Clip(InfiniteBounds())
	if len(parts) != 1 {
		t.Fatalf("got %d parts, want 1: %v", len(parts), parts)
	}
	diff(t, h.Min, parts[0].Min)
	diff(t, h.Max, parts[0].Max)

	parts = h.Clip(NewBounds(Coord(-1, 0.5), Coord(1, 0.7)))
	if len(parts) != 1 {
		t.Fatalf("got %d parts, want 1: %v", len(parts), parts)
	}
	if parts[0].Min.T != 0.5 || parts[0].Max.T != 0.7 {
		t.Errorf("got %v, want t in [0.5, 0.7]", parts[0])
	}

	if parts := h.Clip(NewBounds(Coord(1, 0), Coord(2, 2))); len(parts) != 0 {
		t.Errorf("got %v, want nothing", parts)
	}
	if parts := h.Clip(NewBounds(Coord(-1, 3), Coord(1, 4))); len(parts) != 0 {
		t.Errorf("got %v, want nothing", parts)
	}
}

func TestHyperbolicSegmentClipInfinite(t *testing.T) {
	s, err := NewWorldlineSegment(Limit{}, 1, 0, Coord(0, 0), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	s = s.ExtendPast().ExtendFuture()
	parts := s.Clip(NewBounds(Coord(-1, -1), Coord(1, 1)))
	if len(parts) != 1 {
		t.Fatalf("got %d parts, want 1: %v", len(parts), parts)
	}
	h := parts[0].Hyperbolic()
	diff(t, Coord(math.Cosh(math.Asinh(1))-1, -1), h.Min)
	diff(t, Coord(math.Cosh(math.Asinh(1))-1, 1), h.Max)
}
