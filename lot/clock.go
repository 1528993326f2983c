package lot

import "time"

// Clock supplies the creation-time reading used to validate harvest
// times. It is injected rather than read from ambient global state so
// tests can pin the clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }
