package interfaces

import "time"

// IClock is the single time source for a request. Use cases read it once per
// operation so every derived value in a response shares the same `now`.
type IClock interface {
	Now() time.Time
}

// SystemClock returns the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
