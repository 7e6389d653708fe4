package gamma

import (
	"errors"
	"math"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	for _, v := range []float64{-0.95, -0.3, 0, 0.3, 0.95} {
		for _, origin := range []Coordinate{Coord(0, 0), Coord(3, -2), Coord(-1, 7)} {
			f, err := NewFrame(origin, v)
			if err != nil {
				t.Fatal(err)
			}
			for _, c := range []Coordinate{Coord(0, 0), Coord(1, 1), Coord(-4, 2.5), Coord(10, -3)} {
				diff(t, c, f.ToRest(f.ToFrame(c)))
				diff(t, c, f.ToFrame(f.ToRest(c)))
			}
			diff(t, Coord(0, 0), f.ToFrame(origin))
		}
	}
}

func TestNewFrameErrors(t *testing.T) {
	if _, err := NewFrame(Coord(0, 0), 1); !errors.Is(err, ErrInvalidVelocity) {
		t.Errorf("got error %v, want ErrInvalidVelocity", err)
	}
	if _, err := NewFrame(Coord(math.NaN(), 0), 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want ErrInvalidParameter", err)
	}
}

func TestFrameFromObserver(t *testing.T) {
	o := mustObserver(t, Coord(0, 0), SegmentSpec{V: 0.6, A: 0})
	for _, tc := range []struct {
		at    Axis
		value float64
	}{
		{AxisT, 5},
		{AxisTau, 4},
		{AxisD, 3},
	} {
		f, err := FrameFromObserver(o, tc.at, tc.value)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, Coord(0, 0), f.Origin())
		if !near(f.V(), 0.6) {
			t.Errorf("got v = %g, want 0.6", f.V())
		}
		// The observer is at rest at the frame's origin, and its clock
		// shows the frame's time.
		diff(t, Coord(0, 4), f.ToFrame(Coord(3, 5)))
	}

	// A frame built later along an accelerated worldline is anchored where
	// its own clock would have read zero.
	acc := mustObserver(t, Coord(0, 0), SegmentSpec{V: 0, A: 1, Limit: Limit{LimitTau, 1}})
	f, err := FrameFromObserver(acc, AxisTau, 2)
	if err != nil {
		t.Fatal(err)
	}
	e, err := acc.EndpointAt(AxisTau, 2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Coord(0, 2), f.ToFrame(e.Coordinate()))

	f, err = FrameFromObserver(acc, AxisV, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Coord(0, 0), f.Origin())

	if _, err := FrameFromObserver(acc, AxisX, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want ErrInvalidParameter", err)
	}
	if _, err := FrameFromObserver(acc, AxisV, 0.99); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("got error %v, want ErrOutOfDomain", err)
	}
}

func TestFrameFromInertialObserver(t *testing.T) {
	still, err := BuildObserver(Coord(2, 3), 1, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		at    Axis
		value float64
	}{
		{AxisV, 0},
		{AxisT, math.Inf(-1)},
		{AxisTau, math.Inf(1)},
	} {
		f, err := FrameFromObserver(still, tc.at, tc.value)
		if err != nil {
			t.Fatalf("%v = %g: %v", tc.at, tc.value, err)
		}
		diff(t, Coord(2, 2), f.Origin())
		if f.V() != 0 {
			t.Errorf("got v = %g, want 0", f.V())
		}
	}

	moving := mustObserver(t, Coord(0, 0), SegmentSpec{V: 0.6, A: 0})
	f, err := FrameFromObserver(moving, AxisV, 0.6)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Coord(0, 0), f.Origin())
	diff(t, Coord(0, 4), f.ToFrame(Coord(3, 5)))

	// An accelerating worldline has no frame at infinity.
	acc := mustObserver(t, Coord(0, 0), SegmentSpec{V: 0, A: 1})
	if _, err := FrameFromObserver(acc, AxisT, math.Inf(-1)); err == nil {
		t.Error("got a frame at the infinite past of an accelerating observer")
	}
}

func TestFrameRelativeTo(t *testing.T) {
	f, err := NewFrame(Coord(2, 3), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	prime, err := NewFrame(Coord(-1, 1), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	rel := f.RelativeTo(prime)
	if !near(rel.V(), 0) {
		t.Errorf("frames moving together have relative v = %g", rel.V())
	}
	diff(t, prime.ToFrame(Coord(2, 3)), rel.Origin())

	rest := f.RelativeTo(RestFrame())
	diff(t, f.Origin(), rest.Origin())
	if rest.V() != f.V() {
		t.Errorf("got v = %g, want %g", rest.V(), f.V())
	}

	// Composing the transforms agrees with the relative frame.
	c := Coord(5, 8)
	diff(t, rel.ToFrame(prime.ToFrame(c)), f.ToFrame(c))
}

func TestFrameLines(t *testing.T) {
	f, err := NewFrame(Coord(0, 0), 0.6)
	if err != nil {
		t.Fatal(err)
	}

	p, ok := f.SimultaneityLine(4).Intersect(f.TimeAxis())
	if !ok {
		t.Fatal("line of simultaneity misses the time axis")
	}
	diff(t, Coord(3, 5), p)

	p, ok = f.SpaceAxis().Intersect(f.WorldlineAt(1))
	if !ok {
		t.Fatal("space axis misses a stationary worldline")
	}
	diff(t, f.ToRest(Coord(1, 0)), p)

	// Lines map back to the frame's axes.
	tl := f.LineToFrame(f.TimeAxis())
	if math.Abs(tl.Direction().X) > 1e-12 {
		t.Errorf("time axis in its own frame has direction %v", tl.Direction())
	}
	sl := f.LineToFrame(f.SimultaneityLine(4))
	if math.Abs(sl.Direction().T) > 1e-12 || !near(sl.Point().T, 4) {
		t.Errorf("line of simultaneity in its own frame is %v", sl)
	}
	diff(t, NewLineSegment(Coord(0, 0), Coord(0, 4)), f.SegmentToFrame(NewLineSegment(Coord(0, 0), Coord(3, 5))))
}
