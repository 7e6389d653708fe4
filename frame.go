package gamma

import (
	"fmt"
	"math"
)

// Frame is an inertial reference frame moving at velocity v relative to the
// rest frame. Its origin is given in rest frame coordinates.
type Frame struct {
	origin  Coordinate
	v       float64
	toFrame Affine
	toRest  Affine
}

// RestFrame returns the rest frame itself.
func RestFrame() Frame {
	return Frame{toFrame: Identity, toRest: Identity}
}

// NewFrame returns the frame moving at velocity v whose origin is at origin in
// rest frame coordinates.
func NewFrame(origin Coordinate, v float64) (Frame, error) {
	if err := finite("origin", origin.X, origin.T); err != nil {
		return Frame{}, err
	}
	if err := validVelocity(v); err != nil {
		return Frame{}, err
	}
	toFrame := BoostTransform(v).PreTranslate(Vec2{X: -origin.X, T: -origin.T})
	return Frame{
		origin:  origin,
		v:       v,
		toFrame: toFrame,
		toRest:  toFrame.Invert(),
	}, nil
}

// FrameFromObserver returns the instantaneous inertial frame of w at the point
// where its value on axis at is value. at must be AxisT, AxisTau, AxisD or
// AxisV. The frame's origin is the event on its time axis where the
// observer's clock would read zero.
func FrameFromObserver(w Worldline, at Axis, value float64) (Frame, error) {
	if at == AxisX {
		return Frame{}, fmt.Errorf("frame at %v: %w", at, ErrInvalidParameter)
	}
	e, err := frameEndpoint(w, at, value)
	if err != nil {
		return Frame{}, err
	}
	// The frame's time axis has Euclidean slope (v, 1)/√(1+v²); walking back
	// τ·√(1+v²)/√(1−v²) along it reaches proper time zero.
	scaling := math.Sqrt(1+e.V*e.V) / math.Sqrt(1-e.V*e.V)
	dist := e.Tau * scaling
	back := Vec2{X: e.V, T: 1}.Normalize().Mul(-dist)
	return NewFrame(e.Coordinate().Translate(back), e.V)
}

// frameEndpoint resolves the point a frame is taken from. Along an axis that
// doesn't change over a segment, the earliest point may be at infinity; the
// motion is inertial there, so the segment's finite start yields the same
// frame.
func frameEndpoint(w Worldline, at Axis, value float64) (WorldlineEndpoint, error) {
	for _, s := range w.Segments() {
		e, ok := s.EndpointAt(at, value)
		if !ok {
			continue
		}
		if math.IsInf(e.T, 0) && validVelocity(e.V) == nil {
			e = s.Start()
		}
		return e, nil
	}
	return WorldlineEndpoint{}, fmt.Errorf("%v = %g: %w", at, value, ErrOutOfDomain)
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame{%v, v=%g}", f.origin, f.v)
}

// Origin returns the frame's origin in rest frame coordinates.
func (f Frame) Origin() Coordinate { return f.origin }

// V returns the frame's velocity relative to the rest frame.
func (f Frame) V() float64 { return f.v }

// ToFrame maps rest frame coordinates to this frame's coordinates.
func (f Frame) ToFrame(c Coordinate) Coordinate { return c.Transform(f.toFrame) }

// ToRest maps this frame's coordinates to rest frame coordinates.
func (f Frame) ToRest(c Coordinate) Coordinate { return c.Transform(f.toRest) }

// ToFrameTransform returns the affine map used by [Frame.ToFrame].
func (f Frame) ToFrameTransform() Affine { return f.toFrame }

// ToRestTransform returns the affine map used by [Frame.ToRest].
func (f Frame) ToRestTransform() Affine { return f.toRest }

// RelativeTo returns f as described by an observer at rest in prime.
func (f Frame) RelativeTo(prime Frame) Frame {
	v := RelativeVelocity(f.v, prime.v)
	nf, err := NewFrame(prime.ToFrame(f.origin), v)
	if err != nil {
		panic(fmt.Sprintf("gamma: relative frame: %v", err))
	}
	return nf
}

// TimeAxis returns the frame's time axis in rest frame coordinates: the
// worldline of its origin.
func (f Frame) TimeAxis() Line {
	return newLineWithDir(f.origin, Vec2{X: f.v, T: 1}, ExtentBoth)
}

// SpaceAxis returns the frame's space axis in rest frame coordinates: the
// events simultaneous with its origin.
func (f Frame) SpaceAxis() Line {
	return newLineWithDir(f.origin, Vec2{X: 1, T: f.v}, ExtentBoth)
}

// SimultaneityLine returns the events at frame time t, in rest frame
// coordinates.
func (f Frame) SimultaneityLine(t float64) Line {
	return newLineWithDir(f.ToRest(Coordinate{T: t}), Vec2{X: 1, T: f.v}, ExtentBoth)
}

// WorldlineAt returns the worldline of the frame's stationary point at
// position x, in rest frame coordinates.
func (f Frame) WorldlineAt(x float64) Line {
	return newLineWithDir(f.ToRest(Coordinate{X: x}), Vec2{X: f.v, T: 1}, ExtentBoth)
}

// LineToFrame maps a line given in rest frame coordinates to this frame.
func (f Frame) LineToFrame(l Line) Line { return l.Transform(f.toFrame) }

// SegmentToFrame maps a line segment given in rest frame coordinates to this
// frame.
func (f Frame) SegmentToFrame(l LineSegment) LineSegment { return l.Transform(f.toFrame) }
