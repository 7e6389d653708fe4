package gamma

import (
	"errors"
	"math"
	"testing"
)

func TestIntervalObserver(t *testing.T) {
	o := mustObserver(t, Coord(0, 0), SegmentSpec{V: 0.6, A: 0})
	io, err := NewIntervalObserver(o, AxisTau, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := io.Range(); lo != 0 || hi != 4 {
		t.Errorf("got range [%g, %g], want [0, 4]", lo, hi)
	}
	if io.Axis() != AxisTau || io.Parent() != o {
		t.Error("interval doesn't remember how it was made")
	}
	segs := io.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	diff(t, WorldlineEndpoint{V: 0.6, X: 0, T: 0, Tau: 0, D: 0}, segs[0].Min(), approx)
	diff(t, WorldlineEndpoint{V: 0.6, X: 3, T: 5, Tau: 4, D: 3}, segs[0].Max(), approx)

	x, err := io.TToX(2.5)
	if err != nil {
		t.Fatal(err)
	}
	if !near(x, 1.5) {
		t.Errorf("TToX(2.5) = %g, want 1.5", x)
	}
	if _, err := io.TToX(6); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("got error %v, want ErrOutOfDomain", err)
	}
	if _, err := o.TToX(6); err != nil {
		t.Errorf("parent can't resolve TToX(6): %v", err)
	}
	if _, ok := io.IntersectLine(NewLine(0, Coord(0, 10))); ok {
		t.Error("interval intersects a line after its end")
	}

	defer func() {
		if recover() == nil {
			t.Error("adding to an interval didn't panic")
		}
	}()
	io.AddFinalSegment(0, 0)
}

func TestIntervalObserverSharesSegments(t *testing.T) {
	o := mustObserver(t, Coord(0, 0),
		SegmentSpec{V: 0, A: 0, Limit: Limit{LimitT, 1}},
		SegmentSpec{V: 0, A: 1, Limit: Limit{LimitT, 1}},
		SegmentSpec{V: math.NaN(), A: 0},
	)
	parent := o.Segments()
	if len(parent) != 3 {
		t.Fatalf("got %d segments, want 3", len(parent))
	}

	io, err := NewIntervalObserver(o, AxisT, 0.5, 3)
	if err != nil {
		t.Fatal(err)
	}
	segs := io.Segments()
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	diff(t, parent[1].Min(), segs[1].Min())
	diff(t, parent[1].Max(), segs[1].Max())
	if got := segs[0].Min().T; got != 0.5 {
		t.Errorf("first segment starts at %g, want 0.5", got)
	}
	if segs[0].IsInfinitePast() || segs[2].IsInfiniteFuture() {
		t.Error("truncated segments are still infinite")
	}
	if got := segs[2].Max().T; got != 3 {
		t.Errorf("last segment ends at %g, want 3", got)
	}
}

func TestIntervalObserverInfinite(t *testing.T) {
	o := mustObserver(t, Coord(0, 0), SegmentSpec{V: 0.5, A: 0})
	io, err := NewIntervalObserver(o, AxisD, math.Inf(-1), 2)
	if err != nil {
		t.Fatal(err)
	}
	segs := io.Segments()
	if len(segs) != 1 || !segs[0].IsInfinitePast() || segs[0].IsInfiniteFuture() {
		t.Fatalf("got %v", segs)
	}
	if got := segs[0].Max().T; !near(got, 4) {
		t.Errorf("interval ends at t = %g, want 4", got)
	}
}

func TestIntervalObserverErrors(t *testing.T) {
	o := mustObserver(t, Coord(0, 0), SegmentSpec{V: 0.5, A: 0})
	if _, err := NewIntervalObserver(o, AxisX, 0, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("interval on x: got error %v", err)
	}
	if _, err := NewIntervalObserver(o, AxisT, math.NaN(), 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NaN interval: got error %v", err)
	}

	rest := mustObserver(t, Coord(0, 0), SegmentSpec{V: 0, A: 0})
	if _, err := NewIntervalObserver(rest, AxisD, 1, 2); !errors.Is(err, ErrEmptyInterval) {
		t.Errorf("distance interval on an observer at rest: got error %v", err)
	}
	all, err := NewIntervalObserver(rest, AxisD, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if segs := all.Segments(); len(segs) != 1 || !segs[0].IsInfinitePast() || !segs[0].IsInfiniteFuture() {
		t.Errorf("zero distance interval on an observer at rest isn't all of time: %v", segs)
	}
}
