package port

import "time"

// Clock supplies the current instant. All enforcement decisions are made in
// UTC; injecting the clock keeps dayparting and date-window logic testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
