// Package gamma computes the worldlines of travelers moving through
// one-dimensional relativistic spacetime under piecewise-constant proper
// acceleration, and provides the 2D geometry needed to place and relate these
// worldlines, inertial frames, and straight event lines such as light cones
// and lines of simultaneity.
//
// All quantities use units in which the speed of light is 1. Coordinates are
// pairs of position x and time t, expressed in a single global rest frame.
//
// # Motion
//
// [HyperbolicMotionCurve] is the closed-form trajectory of an object with
// constant proper acceleration. It converts between the five quantities that
// locate a point on a worldline: velocity, position, time, proper time and
// distance traveled (see [Axis]). Position and velocity are not monotonic in
// time, so conversions from position take a [Branch] that selects the point
// before or after the turnaround. An acceleration of zero produces uniform
// motion.
//
// [WorldlineSegment] restricts a curve to an interval of time, specified by a
// [Limit] on time, proper time, distance or velocity. Conversions on a
// segment return NaN for values the segment does not reach.
//
// [Observer] chains segments into a complete worldline that extends from the
// infinite past to the infinite future. Its queries return [ErrOutOfDomain]
// instead of NaN. [IntervalObserver] is the part of an observer between two
// times, proper times or distances.
//
// # Frames
//
// [Frame] is an inertial frame given by its velocity and origin. A frame can
// be derived from any point on an observer's worldline with
// [FrameFromObserver], and observers can be rebuilt as seen from a frame with
// [Observer.RelativeTo]. The underlying Lorentz boosts are available as
// [Boost] and [BoostTransform]; [Affine] composes them with translations.
//
// # Geometry
//
// The straight shapes [Line], [BoundedLine] and [LineSegment] implement
// [Linear]. Lines may be infinite in one or both directions. [Bounds] is an
// axis-aligned rectangle whose edges may be infinite.
//
// [CurveSegment] holds the drawable shapes: lines, line segments and
// [HyperbolicSegment] arcs. Worldlines and lines can be clipped to bounds
// with [Observer.Clip] and [Line.InfiniteClip], which use a variant of the
// Cohen–Sutherland algorithm that tolerates infinite lines and bounds.
//
// # Numeric tolerance
//
// All values are derived from floating point formulas, so comparisons between
// them use a tolerance of [Epsilon] in absolute terms or [RelEpsilon]
// relative to their magnitude.
package gamma
