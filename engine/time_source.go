package engine

import "time"

// TimeSource abstracts the clock so frame timing is testable
type TimeSource interface {
	Now() time.Time
}

// SystemTime provides the real system time with monotonic readings
type SystemTime struct{}

// NewSystemTime creates a monotonic system time source
func NewSystemTime() *SystemTime {
	return &SystemTime{}
}

// Now returns the current time with monotonic clock reading
func (p *SystemTime) Now() time.Time {
	return time.Now()
}
