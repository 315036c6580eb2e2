// Package astro provides the positional astronomy behind skyq: coordinate
// frames, Sun, Moon and planet positions, the bright-star catalog, phase
// classification and sampled rise/set search.
package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/sidereal"

	"github.com/litescript/skyq/internal/angle"
)

// Equatorial holds right ascension and declination.
type Equatorial struct {
	RA  angle.Angle // 0-360
	Dec angle.Angle // -90 to +90
}

// Horizontal holds observer-relative coordinates.
type Horizontal struct {
	Az  angle.Angle // 0=N, 90=E, 180=S, 270=W
	Alt angle.Angle // 0=horizon, 90=zenith
}

// Ecliptic holds ecliptic longitude and latitude.
type Ecliptic struct {
	Lon angle.Angle
	Lat angle.Angle
}

// LocalSiderealTime returns mean local sidereal time as an angle for the
// given Julian day (UT) and east longitude.
func LocalSiderealTime(jd float64, lon angle.Angle) angle.Angle {
	gmst := angle.FromRadians(sidereal.Mean(jd).Rad())
	return (gmst + lon).Wrap360()
}

// ToHorizontal converts equatorial coordinates to azimuth and altitude for an
// observer at Julian day jd. Azimuth is measured from north through east.
func ToHorizontal(eq Equatorial, obs angle.GeoCoord, jd float64) Horizontal {
	lat := obs.Lat.Radians()
	dec := eq.Dec.Radians()

	// Hour angle = LST - RA
	ha := (LocalSiderealTime(jd, obs.Lon) - eq.RA).Radians()

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(math.Max(-1, math.Min(1, sinAlt)))

	az := math.Atan2(
		-math.Cos(dec)*math.Sin(ha),
		math.Sin(dec)*math.Cos(lat)-math.Cos(dec)*math.Cos(ha)*math.Sin(lat),
	)

	return Horizontal{
		Az:  angle.FromRadians(az).Wrap360(),
		Alt: angle.FromRadians(alt),
	}
}

// Separation returns the great-circle angle between two equatorial positions
// using the haversine formula.
func Separation(a, b Equatorial) angle.Angle {
	dec1, dec2 := a.Dec.Radians(), b.Dec.Radians()
	dRA := (b.RA - a.RA).Radians()
	dDec := dec2 - dec1

	h := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1)*math.Cos(dec2)*math.Sin(dRA/2)*math.Sin(dRA/2)

	// Clamp to avoid numerical errors with asin
	if h > 1 {
		h = 1
	}
	return angle.FromRadians(2 * math.Asin(math.Sqrt(h)))
}
