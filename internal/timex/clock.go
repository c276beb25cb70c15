package timex

import "time"

// Clock supplies the current time. Services compare persisted timestamps
// against an injected Clock instead of calling time.Now directly, so tests
// can drive expiry and grace-window logic deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by the system wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a preset instant. Intended for tests.
type FixedClock struct {
	Instant time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.Instant
}

// Advance moves the fixed clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.Instant = c.Instant.Add(d)
}
