// Package ephem is the boundary between query evaluation and the physical
// model. Callers ask a Provider for quantities; the shipped Provider computes
// them with the astro package.
package ephem

import (
	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/astro"
	"github.com/litescript/skyq/internal/instant"
)

// Provider defines the interface for ephemeris sources. Methods return an
// error wrapping skyerr.ErrUnsupported when the body has no such quantity.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	Equatorial(b astro.Body, t instant.Instant) (astro.Equatorial, error)
	Ecliptic(b astro.Body, t instant.Instant) (astro.Ecliptic, error)
	Horizontal(b astro.Body, t instant.Instant, obs angle.GeoCoord) (astro.Horizontal, error)

	// Distance returns the geocentric distance in AU.
	Distance(b astro.Body, t instant.Instant) (float64, error)
	Magnitude(b astro.Body, t instant.Instant) (float64, error)
	AngularDiameter(b astro.Body, t instant.Instant) (angle.Angle, error)
	Phase(b astro.Body, t instant.Instant) (astro.Phase, error)

	// Rise and Set search the UTC day containing t.
	Rise(b astro.Body, t instant.Instant, obs angle.GeoCoord) (instant.Instant, error)
	Set(b astro.Body, t instant.Instant, obs angle.GeoCoord) (instant.Instant, error)

	// Separation returns the angle between two bodies' equatorial positions.
	Separation(a, b astro.Body, t instant.Instant) (angle.Angle, error)
}
