package utils

import "time"

// Clock is the time source of the session lock. Production code uses
// [SystemClock]; tests substitute a manual clock to step across the
// inactivity threshold without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// SystemClock returns a [Clock] backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
