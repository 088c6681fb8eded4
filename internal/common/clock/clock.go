package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/mixladder/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// UTC implements Clock using the system clock normalised to UTC
type UTC struct{}

// New returns the system clock
func New() *UTC {
	return &UTC{}
}

// Now returns the current time in UTC, truncated to milliseconds so it
// survives a JSON round trip unchanged
func (c *UTC) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
