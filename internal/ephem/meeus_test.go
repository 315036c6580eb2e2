package ephem

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/astro"
	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/skyerr"
)

var _ Provider = (*MeeusProvider)(nil)

func at(s string) instant.Instant {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return instant.FromTime(t)
}

func TestMeeusProviderName(t *testing.T) {
	if got := NewMeeusProvider().Name(); got != "meeus" {
		t.Errorf("Name() = %q", got)
	}
}

func TestMeeusProviderUnsupported(t *testing.T) {
	p := NewMeeusProvider()
	when := at("2024-01-01T00:00:00Z")
	fixed := astro.FixedPoint(angle.GeoCoord{Lat: 0, Lon: -45})
	star := astro.Stars()[0]

	tests := []struct {
		name string
		call func() error
	}{
		{"fixed point distance", func() error { _, err := p.Distance(fixed, when); return err }},
		{"star distance", func() error { _, err := p.Distance(star, when); return err }},
		{"fixed point magnitude", func() error { _, err := p.Magnitude(fixed, when); return err }},
		{"star angular diameter", func() error { _, err := p.AngularDiameter(star, when); return err }},
		{"sun phase", func() error { _, err := p.Phase(astro.Sun, when); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, skyerr.ErrUnsupported) {
				t.Errorf("error = %v, want ErrUnsupported", err)
			}
		})
	}
}

func TestMeeusProviderCachesPositions(t *testing.T) {
	p := NewMeeusProvider()
	when := at("2024-01-01T00:00:00Z")

	a, _ := p.Equatorial(astro.Moon, when)
	b, _ := p.Equatorial(astro.Moon, when)
	if a != b {
		t.Errorf("cached position differs: %+v vs %+v", a, b)
	}
	if n := len(p.cache); n != 1 {
		t.Errorf("cache holds %d entries, want 1", n)
	}

	for k := range maxCached + 1 {
		p.locate(astro.Sun, when.AddSeconds(float64(k)))
	}
	if n := len(p.cache); n > maxCached {
		t.Errorf("cache grew to %d entries", n)
	}
}

func TestMeeusProviderRiseSet(t *testing.T) {
	p := NewMeeusProvider()
	when := at("2024-03-20T12:00:00Z")
	obs := angle.GeoCoord{Lat: 0, Lon: 0}

	rise, err := p.Rise(astro.Sun, when, obs)
	if err != nil {
		t.Fatalf("Rise: %v", err)
	}
	if got := rise.String()[:13]; got != "2024-03-20T06" {
		t.Errorf("sunrise = %s, want about 06:05", rise)
	}
	set, err := p.Set(astro.Sun, when, obs)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := set.String()[:13]; got != "2024-03-20T18" {
		t.Errorf("sunset = %s, want about 18:10", set)
	}

	// Polar night: the Sun stays down all day.
	arctic := angle.GeoCoord{Lat: 80, Lon: 0}
	if _, err := p.Rise(astro.Sun, at("2024-12-21T12:00:00Z"), arctic); !errors.Is(err, astro.ErrNeverRises) {
		t.Errorf("polar night Rise error = %v", err)
	}
	// Polaris never sets from mid-northern latitudes.
	polaris := findStar(t, "Polaris")
	if _, err := p.Set(polaris, when, angle.GeoCoord{Lat: 45, Lon: 0}); !errors.Is(err, astro.ErrNeverSets) {
		t.Errorf("Polaris Set error = %v", err)
	}
}

func TestMeeusProviderSeparation(t *testing.T) {
	p := NewMeeusProvider()
	when := at("2024-01-25T17:54:00Z") // full moon
	sep, err := p.Separation(astro.Sun, astro.Moon, when)
	if err != nil {
		t.Fatal(err)
	}
	if sep.Degrees() < 170 {
		t.Errorf("Sun-Moon separation at full moon = %v", sep.Degrees())
	}
	self, _ := p.Separation(astro.Moon, astro.Moon, when)
	if math.Abs(self.Degrees()) > 1e-9 {
		t.Errorf("self separation = %v", self.Degrees())
	}
}

func findStar(t *testing.T, name string) astro.Body {
	t.Helper()
	for _, s := range astro.Stars() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("star %s not in catalog", name)
	return astro.Body{}
}
