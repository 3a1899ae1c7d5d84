package utils

import "time"

// Timer is a pending callback scheduled by a [Clock].
type Timer interface {
	// Stop prevents the callback from running. It reports false when the
	// callback already ran or was stopped before.
	Stop() bool
}

// Clock abstracts wall time so debouncers and the editor session can be
// driven deterministically in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock is the [Clock] backed by package time.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
