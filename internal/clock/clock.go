// Package clock abstracts time so the weekly reset and draft dating can be tested.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time {
	return time.Now()
}

// Fixed is a settable clock for tests.
type Fixed struct {
	T time.Time
}

// Now returns the stored instant.
func (f *Fixed) Now() time.Time {
	return f.T
}

// Set moves the clock to t.
func (f *Fixed) Set(t time.Time) {
	f.T = t
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.T = f.T.Add(d)
}

var (
	_ Clock = RealClock{}
	_ Clock = (*Fixed)(nil)
)

// DateLayout is the calendar-date format used for draft checkpoint tags.
const DateLayout = "2006-01-02"

// CalendarDate formats t as a local calendar date.
func CalendarDate(t time.Time) string {
	return t.Format(DateLayout)
}
