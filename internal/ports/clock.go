package ports

import "time"

// Clock supplies the current time. Streak and scheduling rules depend on
// "now", so it is injected rather than read from the system clock directly.
// This is a driven port (implemented by adapters or test fakes).
type Clock interface {
	Now() time.Time
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
