package gamma

import "errors"

// Construction errors. They are returned wrapped with context; use
// [errors.Is] to match them.
var (
	// ErrNegativeLimit is returned for a negative time, proper time or
	// distance limit.
	ErrNegativeLimit = errors.New("gamma: limit must not be negative")

	// ErrImpossibleDistance is returned for a distance limit on a segment
	// that neither moves nor accelerates.
	ErrImpossibleDistance = errors.New("gamma: distance limit on an object at rest")

	// ErrUnreachableVelocity is returned when a velocity limit can never be
	// reached with the segment's acceleration.
	ErrUnreachableVelocity = errors.New("gamma: velocity limit is unreachable")

	// ErrInvalidVelocity is returned for velocities outside (-1, 1).
	ErrInvalidVelocity = errors.New("gamma: velocity must be between -1 and 1")

	// ErrInvalidParameter is returned for missing (NaN) or infinite
	// construction parameters.
	ErrInvalidParameter = errors.New("gamma: invalid parameter")

	// ErrEmptyInterval is returned when an interval does not overlap the
	// worldline it restricts.
	ErrEmptyInterval = errors.New("gamma: interval does not overlap the worldline")
)

// ErrOutOfDomain is returned by worldline queries when no segment covers the
// requested value. This is not a construction error: a restricted worldline
// legitimately covers only part of spacetime.
var ErrOutOfDomain = errors.New("gamma: value outside the worldline's domain")
