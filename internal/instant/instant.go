// Package instant provides the absolute time scale used by queries: a Julian
// day count with calendar-aware stepping.
package instant

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// UnixEpochJD is the Julian day of 1970-01-01T00:00:00 UTC.
	UnixEpochJD = 2440587.5

	// SecondsPerDay is the length of a Julian day in seconds.
	SecondsPerDay = 86400.0

	// ISOLayout is the layout every Instant is rendered with.
	ISOLayout = "2006-01-02T15:04:05"
)

// Instant is an absolute point in time stored as a Julian day number (UT).
type Instant struct {
	jd float64
}

// FromJD constructs an Instant from a Julian day number.
func FromJD(jd float64) Instant {
	return Instant{jd: jd}
}

// FromUnix constructs an Instant from Unix epoch seconds.
func FromUnix(sec float64) Instant {
	return Instant{jd: UnixEpochJD + sec/SecondsPerDay}
}

// FromTime constructs an Instant from a time.Time in any location.
func FromTime(t time.Time) Instant {
	return Instant{jd: julian.TimeToJD(t.UTC())}
}

// FromCalendar constructs an Instant from UTC calendar fields. Out-of-range
// fields roll over into the next larger field (day 52 of April is May 22).
func FromCalendar(year int, month time.Month, day, hour, min int, sec float64) Instant {
	whole := math.Floor(sec)
	ns := int(math.Round((sec - whole) * 1e9))
	return FromTime(time.Date(year, month, day, hour, min, int(whole), ns, time.UTC))
}

// JD returns the Julian day number.
func (i Instant) JD() float64 { return i.jd }

// Unix returns seconds since the Unix epoch.
func (i Instant) Unix() float64 { return (i.jd - UnixEpochJD) * SecondsPerDay }

// Time converts to a UTC time.Time, rounded to the millisecond.
func (i Instant) Time() time.Time {
	secs := i.Unix()
	whole := math.Floor(secs)
	ns := int64(math.Round((secs - whole) * 1e9))
	return time.Unix(int64(whole), ns).UTC().Round(time.Millisecond)
}

// String formats the Instant as ISO-8601 to the nearest second.
func (i Instant) String() string {
	return i.Time().Round(time.Second).Format(ISOLayout)
}

// Sub returns i - j in days.
func (i Instant) Sub(j Instant) float64 { return i.jd - j.jd }

// AddSeconds returns i shifted by a fixed duration.
func (i Instant) AddSeconds(sec float64) Instant {
	return Instant{jd: i.jd + sec/SecondsPerDay}
}

// AddMonths returns i shifted by n calendar months. Time of day is kept; a
// day that does not exist in the target month is clamped to its last day, so
// Jan 31 + 1 month is Feb 28 (or 29).
func (i Instant) AddMonths(n int) Instant {
	if n == 0 {
		return i
	}
	t := i.Time()
	y, m, d := t.Date()
	total := int(m) - 1 + n
	years := floorDiv(total, 12)
	month := time.Month(total - years*12 + 1)
	y += years
	if last := daysIn(y, month); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return FromTime(time.Date(y, month, d, hh, mm, ss, t.Nanosecond(), time.UTC))
}

// Add applies a Step: calendar months by field addition, seconds by duration.
func (i Instant) Add(s Step) Instant {
	if s.Months != 0 {
		return i.AddMonths(s.Months)
	}
	return i.AddSeconds(s.Seconds)
}

// StartOfDay returns midnight UTC of i's calendar day.
func (i Instant) StartOfDay() Instant {
	y, m, d := i.Time().Date()
	return FromTime(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
