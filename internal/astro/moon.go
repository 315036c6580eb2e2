package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/moonposition"

	"github.com/litescript/skyq/internal/angle"
)

// locateMoon returns the Moon's geocentric position together with its phase
// geometry relative to the Sun.
func locateMoon(jd float64) Apparent {
	lon, lat, distKm := moonposition.Position(jd)
	ecl := Ecliptic{Lon: angle.FromUnit(lon).Wrap360(), Lat: angle.FromUnit(lat)}
	sun := locateSun(jd)

	// Geocentric elongation, then the Sun-Moon-Earth angle.
	cosPsi := math.Cos(ecl.Lat.Radians()) * math.Cos((ecl.Lon - sun.Ecliptic.Lon).Radians())
	psi := math.Acos(math.Max(-1, math.Min(1, cosPsi)))
	sunKm := sun.Distance * AU
	i := math.Atan2(sunKm*math.Sin(psi), distKm-sunKm*math.Cos(psi))

	return Apparent{
		Equatorial:  EclipticToEquatorial(ecl, Obliquity(jd)),
		Ecliptic:    ecl,
		Distance:    distKm / AU,
		SunDistance: sun.Distance,
		PhaseAngle:  angle.FromRadians(i),
		Elongation:  (ecl.Lon - sun.Ecliptic.Lon).Wrap180(),
	}
}

// moonMagnitude uses the phase-angle law for the Moon at mean distance.
func moonMagnitude(phaseAngle angle.Angle) float64 {
	i := phaseAngle.Abs().Degrees()
	return -12.73 + 0.026*i + 4e-9*math.Pow(i, 4)
}
