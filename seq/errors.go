package seq

import "errors"

// ErrCapacityTooSmall is returned by New when the requested capacity is not
// greater than 1.
var ErrCapacityTooSmall = errors.New("seq: capacity must be greater than 1")

// ErrCapacityExceeded is returned when a Push or Merge would grow the
// sequence beyond its capacity.
var ErrCapacityExceeded = errors.New("seq: capacity exceeded")

// ErrIndexOutOfBounds is returned when an operation addresses a position
// outside the populated region.
var ErrIndexOutOfBounds = errors.New("seq: index out of bounds")

// ErrInvalidRange is returned when a range operation is given a logically
// malformed range.
var ErrInvalidRange = errors.New("seq: invalid range")
