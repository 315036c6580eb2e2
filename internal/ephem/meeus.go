package ephem

import (
	"fmt"
	"sync"

	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/astro"
	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/skyerr"
)

// maxCached bounds the position cache; it is cleared when full.
const maxCached = 512

type cacheKey struct {
	name string
	jd   float64
}

// MeeusProvider computes positions with Meeus-style analytic theories: VSOP
// derived solar coordinates, ELP lunar coordinates and Keplerian mean
// elements for the planets.
type MeeusProvider struct {
	mu    sync.RWMutex
	cache map[cacheKey]astro.Apparent
}

// NewMeeusProvider creates a provider with an empty cache.
func NewMeeusProvider() *MeeusProvider {
	return &MeeusProvider{cache: make(map[cacheKey]astro.Apparent)}
}

// Name returns the provider name.
func (p *MeeusProvider) Name() string { return "meeus" }

// locate returns b's apparent state at t. Several properties of one row share
// the same position, so results are cached.
func (p *MeeusProvider) locate(b astro.Body, t instant.Instant) astro.Apparent {
	key := cacheKey{name: b.Name, jd: t.JD()}

	p.mu.RLock()
	a, ok := p.cache[key]
	p.mu.RUnlock()
	if ok {
		return a
	}

	a = astro.Locate(b, t.JD())

	p.mu.Lock()
	if len(p.cache) >= maxCached {
		clear(p.cache)
	}
	p.cache[key] = a
	p.mu.Unlock()
	return a
}

func (p *MeeusProvider) Equatorial(b astro.Body, t instant.Instant) (astro.Equatorial, error) {
	return p.locate(b, t).Equatorial, nil
}

func (p *MeeusProvider) Ecliptic(b astro.Body, t instant.Instant) (astro.Ecliptic, error) {
	return p.locate(b, t).Ecliptic, nil
}

func (p *MeeusProvider) Horizontal(b astro.Body, t instant.Instant, obs angle.GeoCoord) (astro.Horizontal, error) {
	return astro.ToHorizontal(p.locate(b, t).Equatorial, obs, t.JD()), nil
}

func (p *MeeusProvider) Distance(b astro.Body, t instant.Instant) (float64, error) {
	if !b.HasDistance() {
		return 0, fmt.Errorf("distance of %s: %w", b.Kind, skyerr.ErrUnsupported)
	}
	return p.locate(b, t).Distance, nil
}

func (p *MeeusProvider) Magnitude(b astro.Body, t instant.Instant) (float64, error) {
	return astro.Magnitude(b, p.locate(b, t))
}

func (p *MeeusProvider) AngularDiameter(b astro.Body, t instant.Instant) (angle.Angle, error) {
	return astro.AngularDiameter(b, p.locate(b, t))
}

func (p *MeeusProvider) Phase(b astro.Body, t instant.Instant) (astro.Phase, error) {
	return astro.PhaseOf(b, p.locate(b, t))
}

func (p *MeeusProvider) Rise(b astro.Body, t instant.Instant, obs angle.GeoCoord) (instant.Instant, error) {
	jd, err := p.window(b, t, obs).RiseTime()
	if err != nil {
		return instant.Instant{}, err
	}
	return instant.FromJD(jd), nil
}

func (p *MeeusProvider) Set(b astro.Body, t instant.Instant, obs angle.GeoCoord) (instant.Instant, error) {
	jd, err := p.window(b, t, obs).SetTime()
	if err != nil {
		return instant.Instant{}, err
	}
	return instant.FromJD(jd), nil
}

// window samples the UTC day containing t. Samples are not cached; a day of
// them would evict the row positions.
func (p *MeeusProvider) window(b astro.Body, t instant.Instant, obs angle.GeoCoord) astro.Window {
	return astro.RiseSet(astro.AltitudeOf(b, obs), t.StartOfDay().JD(), astro.HorizonFor(b))
}

func (p *MeeusProvider) Separation(a, b astro.Body, t instant.Instant) (angle.Angle, error) {
	return astro.Separation(p.locate(a, t).Equatorial, p.locate(b, t).Equatorial), nil
}
