package ports

import "time"

// Scheduler runs a callback periodically
type Scheduler interface {
	// Every calls fn once per interval until the returned stop function is called.
	// After stop returns, fn is not called again by this schedule.
	Every(interval time.Duration, fn func()) (stop func())
}
