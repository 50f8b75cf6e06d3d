package port

import "errors"

var (
	// ErrValidation marks input rejected at the boundary: negative spend
	// amounts, malformed budgets, out-of-range schedule hours or days.
	ErrValidation = errors.New("validation failed")

	// ErrIneligible is returned when an activation is requested but the
	// campaign fails eligibility. No state change is applied.
	ErrIneligible = errors.New("campaign not eligible")

	// ErrStale marks a transition whose precondition no longer held at
	// apply time. The transition is dropped, never applied incorrectly.
	ErrStale = errors.New("stale transition")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
)
