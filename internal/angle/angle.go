// Package angle provides signed angular quantities, observer coordinates, and
// their sexagesimal renderings.
package angle

import (
	"math"
	"strconv"

	"github.com/soniakeys/unit"
)

// Angle is a signed angle in degrees.
type Angle float64

// FromDegrees constructs an Angle from decimal degrees.
func FromDegrees(d float64) Angle { return Angle(d) }

// FromRadians constructs an Angle from radians.
func FromRadians(r float64) Angle { return Angle(r * 180 / math.Pi) }

// FromSexagesimal constructs an Angle from degree, minute and second parts.
// The parts are combined as magnitudes and negated when neg is set.
func FromSexagesimal(neg bool, d, m int, s float64) Angle {
	sign := byte('+')
	if neg {
		sign = '-'
	}
	return Angle(unit.FromSexa(sign, d, m, s))
}

// FromUnit converts a meeus unit.Angle.
func FromUnit(a unit.Angle) Angle { return Angle(a.Deg()) }

// Degrees returns the value in degrees.
func (a Angle) Degrees() float64 { return float64(a) }

// Radians returns the value in radians.
func (a Angle) Radians() float64 { return float64(a) * math.Pi / 180 }

// Wrap360 normalizes to [0, 360).
func (a Angle) Wrap360() Angle { return Angle(unit.PMod(float64(a), 360)) }

// Wrap180 normalizes to (-180, 180].
func (a Angle) Wrap180() Angle {
	w := unit.PMod(float64(a), 360)
	if w > 180 {
		w -= 360
	}
	return Angle(w)
}

// Latitude clamps to [-90, 90].
func (a Angle) Latitude() Angle {
	return Angle(math.Max(-90, math.Min(90, float64(a))))
}

// Abs returns the magnitude of a.
func (a Angle) Abs() Angle { return Angle(math.Abs(float64(a))) }

// GeoCoord is an observer location on Earth.
type GeoCoord struct {
	Lat Angle // north positive
	Lon Angle // east positive
}

// North reports whether the observer is in the northern hemisphere
// (the equator counts as north).
func (g GeoCoord) North() bool { return g.Lat >= 0 }

// String renders the coordinate in the form the location parser accepts.
func (g GeoCoord) String() string {
	return strconv.FormatFloat(g.Lat.Degrees(), 'f', -1, 64) + "," +
		strconv.FormatFloat(g.Lon.Degrees(), 'f', -1, 64)
}
