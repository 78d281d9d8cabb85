package mocks

import (
	"time"

	"github.com/mcoot/scrabble-go/internal/dependencies/clock"
)

// MockClock is a controllable Clock for testing
type MockClock struct {
	CurrentTime time.Time

	// Step is added to CurrentTime after every call to Now, so successive
	// events get distinct timestamps. Zero freezes the clock.
	Step time.Duration
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a frozen MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time, then applies Step
func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	return now
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
