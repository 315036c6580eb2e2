package instant

import (
	"strconv"
	"time"
)

// Step is a time increment: either whole calendar months (years are twelve
// months) or a fixed number of seconds. At most one field is non-zero.
type Step struct {
	Months  int
	Seconds float64
}

// Months returns a calendar step.
func Months(n int) Step { return Step{Months: n} }

// Years returns a calendar step of n*12 months.
func Years(n int) Step { return Step{Months: 12 * n} }

// Seconds returns a fixed-duration step.
func Seconds(sec float64) Step { return Step{Seconds: sec} }

// IsZero reports whether the step does not move time.
func (s Step) IsZero() bool { return s.Months == 0 && s.Seconds == 0 }

// IsCalendar reports whether the step is applied by calendar-field addition.
func (s Step) IsCalendar() bool { return s.Months != 0 }

// Sign returns -1, 0 or +1.
func (s Step) Sign() int {
	switch {
	case s.Months > 0 || s.Seconds > 0:
		return 1
	case s.Months < 0 || s.Seconds < 0:
		return -1
	default:
		return 0
	}
}

// Scale returns the step multiplied by k.
func (s Step) Scale(k int) Step {
	return Step{Months: s.Months * k, Seconds: s.Seconds * float64(k)}
}

// String renders the step in the same unit syntax the parser accepts.
func (s Step) String() string {
	switch {
	case s.Months != 0 && s.Months%12 == 0:
		return strconv.Itoa(s.Months/12) + "y"
	case s.Months != 0:
		return strconv.Itoa(s.Months) + "mon"
	default:
		return strconv.FormatFloat(s.Seconds, 'f', -1, 64) + "s"
	}
}

// Clock supplies the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same time. Used by tests and replays.
type FixedClock time.Time

// Now implements Clock.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Now returns the clock's current time as an Instant.
func Now(c Clock) Instant { return FromTime(c.Now()) }
