// Package time contains time related helpers
package time

import "time"

// Clock reports the current time. Code that depends on "now" takes a Clock so tests can pin it
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time { return f() }

// System is the wall clock in local time
var System Clock = ClockFunc(time.Now)

// Fixed returns a Clock that always reports t
func Fixed(t time.Time) Clock { return ClockFunc(func() time.Time { return t }) }

// OrSystem returns c, or System when c is nil
func OrSystem(c Clock) Clock {
	if c == nil {
		return System
	}
	return c
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// UTCStamp formats t in UTC as RFC3339 with millisecond precision
func UTCStamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
