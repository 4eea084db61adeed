package td

import "errors"

var (
	// ErrPreconditionViolation means the world does not hold exactly one
	// camera or exactly one window. It is fatal.
	ErrPreconditionViolation = errors.New("precondition violation")

	// ErrPointerUnavailable means a click arrived while the cursor was not
	// over the window. The click is dropped.
	ErrPointerUnavailable = errors.New("cursor is not in the game window")
)
