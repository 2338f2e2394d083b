package reagent

import (
	"time"
)

// TimeProvider supplies the current time to tools and prompts. Injecting a
// custom provider makes time-dependent behavior testable.
type TimeProvider interface {
	// Now returns the current time.
	Now() time.Time

	// Today returns today's date as a string (YYYY-MM-DD).
	Today() string

	// Format returns the current time formatted with the given layout.
	Format(layout string) string

	// Weekday returns the current day of the week (e.g., "Monday").
	Weekday() string
}

// DefaultTimeProvider is the standard TimeProvider using the system clock.
type DefaultTimeProvider struct{}

// NewDefaultTimeProvider creates a new DefaultTimeProvider.
func NewDefaultTimeProvider() *DefaultTimeProvider {
	return &DefaultTimeProvider{}
}

// Now returns the current system time.
func (p *DefaultTimeProvider) Now() time.Time {
	return time.Now()
}

// Today returns today's date as YYYY-MM-DD.
func (p *DefaultTimeProvider) Today() string {
	return p.Now().Format("2006-01-02")
}

// Format returns the current time formatted with the given layout.
func (p *DefaultTimeProvider) Format(layout string) string {
	return p.Now().Format(layout)
}

// Weekday returns the current day of the week.
func (p *DefaultTimeProvider) Weekday() string {
	return p.Now().Weekday().String()
}

// MockTimeProvider is a TimeProvider that returns a fixed time.
// Useful for testing time-dependent functionality.
type MockTimeProvider struct {
	fixedTime time.Time
}

// NewMockTimeProvider creates a MockTimeProvider with the given fixed time.
func NewMockTimeProvider(t time.Time) *MockTimeProvider {
	return &MockTimeProvider{fixedTime: t}
}

// SetTime updates the fixed time returned by Now().
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.fixedTime = t
}

// Now returns the fixed time.
func (m *MockTimeProvider) Now() time.Time {
	return m.fixedTime
}

// Today returns the fixed date as YYYY-MM-DD.
func (m *MockTimeProvider) Today() string {
	return m.fixedTime.Format("2006-01-02")
}

// Format returns the fixed time formatted with the given layout.
func (m *MockTimeProvider) Format(layout string) string {
	return m.fixedTime.Format(layout)
}

// Weekday returns the day of the week for the fixed time.
func (m *MockTimeProvider) Weekday() string {
	return m.fixedTime.Weekday().String()
}

// Compile-time checks that both providers implement TimeProvider.
var (
	_ TimeProvider = (*DefaultTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)
