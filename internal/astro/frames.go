package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/nutation"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/litescript/skyq/internal/angle"
)

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// ObliquityJ2000 is the mean obliquity of the ecliptic at J2000.
const ObliquityJ2000 angle.Angle = 23.4392911

// Obliquity returns the mean obliquity of the ecliptic at Julian day jd.
func Obliquity(jd float64) angle.Angle {
	return angle.FromUnit(nutation.MeanObliquity(jd))
}

// EclipticToEquatorial rotates ecliptic coordinates into the equatorial frame
// for obliquity eps.
func EclipticToEquatorial(e Ecliptic, eps angle.Angle) Equatorial {
	v := eclipticToEquatorialVec(toVector(e.Lon, e.Lat, 1), eps)
	ra, dec, _ := fromVector(v)
	return Equatorial{RA: ra, Dec: dec}
}

// EquatorialToEcliptic is the inverse of EclipticToEquatorial.
func EquatorialToEcliptic(q Equatorial, eps angle.Angle) Ecliptic {
	v := equatorialToEclipticVec(toVector(q.RA, q.Dec, 1), eps)
	lon, lat, _ := fromVector(v)
	return Ecliptic{Lon: lon, Lat: lat}
}

// toVector converts spherical coordinates to a cartesian vector of length r.
func toVector(lon, lat angle.Angle, r float64) r3.Vec {
	cl := math.Cos(lat.Radians())
	return r3.Vec{
		X: r * cl * math.Cos(lon.Radians()),
		Y: r * cl * math.Sin(lon.Radians()),
		Z: r * math.Sin(lat.Radians()),
	}
}

// fromVector returns longitude in [0, 360), latitude and length of v.
func fromVector(v r3.Vec) (lon, lat angle.Angle, r float64) {
	r = r3.Norm(v)
	if r == 0 {
		return 0, 0, 0
	}
	lon = angle.FromRadians(math.Atan2(v.Y, v.X)).Wrap360()
	lat = angle.FromRadians(math.Asin(math.Max(-1, math.Min(1, v.Z/r))))
	return lon, lat, r
}

// Rotation about the X axis by -eps.
func eclipticToEquatorialVec(ecl r3.Vec, eps angle.Angle) r3.Vec {
	cosE, sinE := math.Cos(eps.Radians()), math.Sin(eps.Radians())
	return r3.Vec{
		X: ecl.X,
		Y: ecl.Y*cosE - ecl.Z*sinE,
		Z: ecl.Y*sinE + ecl.Z*cosE,
	}
}

func equatorialToEclipticVec(eq r3.Vec, eps angle.Angle) r3.Vec {
	cosE, sinE := math.Cos(eps.Radians()), math.Sin(eps.Radians())
	return r3.Vec{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}
