package donation

import "errors"

var (
	// ErrMissingBloodType means the request named no blood type.
	ErrMissingBloodType = errors.New("a blood type is required for a donation request")

	// ErrLocationUnavailable means no coordinate was captured for the
	// requester; the request aborts before any write.
	ErrLocationUnavailable = errors.New("location unavailable; enable GPS and retry")

	// ErrNotOwner means the caller does not own the donation request.
	ErrNotOwner = errors.New("donation request does not belong to the caller")

	// ErrIllegalStatus means a status change outside active→fulfilled or
	// active→cancelled was requested.
	ErrIllegalStatus = errors.New("illegal donation request status change")
)
