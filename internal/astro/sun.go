package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/litescript/skyq/internal/angle"
)

// Physical radii in kilometers.
const (
	sunRadiusKm  = 695700.0
	moonRadiusKm = 1737.4
)

// locateSun returns the Sun's apparent geocentric position.
func locateSun(jd float64) Apparent {
	ra, dec := solar.ApparentEquatorial(jd)
	eq := Equatorial{RA: angle.FromRadians(ra.Rad()).Wrap360(), Dec: angle.FromUnit(dec)}
	return Apparent{
		Equatorial: eq,
		Ecliptic:   EquatorialToEcliptic(eq, Obliquity(jd)),
		Distance:   solar.Radius(base.J2000Century(jd)),
	}
}

// sunMagnitude scales the mean apparent magnitude by distance.
func sunMagnitude(distAU float64) float64 {
	return -26.74 + 5*math.Log10(distAU)
}

// angularDiameter returns the apparent diameter of a sphere of radiusKm seen
// from distKm.
func angularDiameter(radiusKm, distKm float64) angle.Angle {
	if distKm <= radiusKm {
		return 180
	}
	return angle.FromRadians(2 * math.Asin(radiusKm/distKm))
}
