package booking

import "errors"

// Classified outcomes of the booking core. Every operation is pass/fail at
// the granularity of one logical record write; persistence failures are
// wrapped repository errors, not one of these.
var (
	// ErrMissingFields means the booking request lacked a date or time.
	ErrMissingFields = errors.New("appointment date and time are required")

	// ErrMissingSessionType means a multi-pricing doctor was booked
	// without choosing a session type.
	ErrMissingSessionType = errors.New("a session type must be chosen for this doctor")

	// ErrIllegalTransition means a status change outside the legal set
	// was requested.
	ErrIllegalTransition = errors.New("illegal appointment status transition")

	// ErrNotOwner means the caller does not own the appointment side
	// required for the operation.
	ErrNotOwner = errors.New("appointment does not belong to the caller")
)
