package astro

import (
	"fmt"

	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/skyerr"
)

// Kind classifies a body by how its position is computed.
type Kind int

const (
	KindSun Kind = iota
	KindMoon
	KindPlanet
	KindStar
	KindFixed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSun:
		return "sun"
	case KindMoon:
		return "moon"
	case KindPlanet:
		return "planet"
	case KindStar:
		return "star"
	case KindFixed:
		return "fixed point"
	default:
		return "unknown"
	}
}

// Body is an immutable description of something on the sky.
type Body struct {
	Name     string
	Kind     Kind
	Planet   Planet     // KindPlanet only
	Position Equatorial // J2000; KindStar and KindFixed only
	Mag      float64    // KindStar only
}

// Sun and Moon are the two singleton bodies.
var (
	Sun  = Body{Name: "Sun", Kind: KindSun}
	Moon = Body{Name: "Moon", Kind: KindMoon}
)

// PlanetBody returns the body for p.
func PlanetBody(p Planet) Body {
	return Body{Name: p.String(), Kind: KindPlanet, Planet: p}
}

// FixedPoint returns a synthetic body whose declination is g's latitude and
// whose right ascension is g's longitude.
func FixedPoint(g angle.GeoCoord) Body {
	return Body{
		Name:     "latlong:" + g.String(),
		Kind:     KindFixed,
		Position: Equatorial{RA: g.Lon.Wrap360(), Dec: g.Lat},
	}
}

// Apparent is a body's geocentric state at one instant.
type Apparent struct {
	Equatorial  Equatorial
	Ecliptic    Ecliptic
	Distance    float64     // AU from Earth; zero for stars and fixed points
	SunDistance float64     // AU from the Sun; zero for the Sun itself
	PhaseAngle  angle.Angle // Sun-body-Earth angle
	Elongation  angle.Angle // ecliptic longitude east of the Sun, (-180, 180]
}

// Locate computes b's geocentric state at Julian day jd.
func Locate(b Body, jd float64) Apparent {
	switch b.Kind {
	case KindSun:
		return locateSun(jd)
	case KindMoon:
		return locateMoon(jd)
	case KindPlanet:
		return locatePlanet(b.Planet, jd)
	default:
		return Apparent{
			Equatorial: b.Position,
			Ecliptic:   EquatorialToEcliptic(b.Position, ObliquityJ2000),
		}
	}
}

// Magnitude returns b's apparent visual magnitude.
func Magnitude(b Body, a Apparent) (float64, error) {
	switch b.Kind {
	case KindSun:
		return sunMagnitude(a.Distance), nil
	case KindMoon:
		return moonMagnitude(a.PhaseAngle), nil
	case KindPlanet:
		return planetMagnitude(b.Planet, a), nil
	case KindStar:
		return b.Mag, nil
	default:
		return 0, fmt.Errorf("magnitude of %s: %w", b.Kind, skyerr.ErrUnsupported)
	}
}

// AngularDiameter returns b's apparent diameter.
func AngularDiameter(b Body, a Apparent) (angle.Angle, error) {
	var radius float64
	switch b.Kind {
	case KindSun:
		radius = sunRadiusKm
	case KindMoon:
		radius = moonRadiusKm
	case KindPlanet:
		radius = orbits[b.Planet].radiusKm
	default:
		return 0, fmt.Errorf("angular diameter of %s: %w", b.Kind, skyerr.ErrUnsupported)
	}
	return angularDiameter(radius, a.Distance*AU), nil
}

// HasDistance reports whether b has a finite, computed distance.
func (b Body) HasDistance() bool {
	return b.Kind == KindSun || b.Kind == KindMoon || b.Kind == KindPlanet
}

// HasPhase reports whether b shows phases.
func (b Body) HasPhase() bool {
	return b.Kind == KindMoon || b.Kind == KindPlanet
}
