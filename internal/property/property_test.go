package property

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/astro"
	"github.com/litescript/skyq/internal/catalog"
	"github.com/litescript/skyq/internal/ephem"
	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/skyerr"
)

func TestResolveAliases(t *testing.T) {
	r := NewRegistry(catalog.Default())
	tests := []struct {
		alias string
		kind  Kind
		title string
		key   string
	}{
		{"equ", Equatorial, "Coordinates (RA/De)", "equatorial"},
		{"EQUA", Equatorial, "Coordinates (RA/De)", "equatorial"},
		{"equatorial", Equatorial, "Coordinates (RA/De)", "equatorial"},
		{"horiz", Horizontal, "Coordinates (Azi/Alt)", "horizontal"},
		{"ecl", Ecliptic, "Coordinates (Ecliptic)", "ecliptic"},
		{"dist", Distance, "Distance", "distance"},
		{"brightness", Magnitude, "Magnitude", "magnitude"},
		{"phase", Phase, "Phase", "phase"},
		{"phaseemoji", PhaseEmoji, "Phase Emoji", "phase_emoji"},
		{"phasename", PhaseName, "Phase Name", "phase_name"},
		{"phaseprecent", IllumFrac, "Illuminated Frac.", "illuminated_fraction"},
		{"angdia", AngDia, "Angular Diameter", "angular_diameter"},
		{"rise", Rise, "Rise Time", "rise"},
		{"set", Set, "Set Time", "set"},
		{"angbetween:{kaus australis}", AngBetween, "Angle to Kaus Australis", "angle_to_kaus_australis"},
		{"angbetween:sun", AngBetween, "Angle to Sun", "angle_to_sun"},
		{"angbetween:{latlong:10,20}", AngBetween, "Angle to latlong:10,20", "angle_to_latlong_10_20"},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			s, err := r.Resolve(tt.alias)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.alias, err)
			}
			if s.Kind != tt.kind || s.Title() != tt.title || s.Key() != tt.key {
				t.Errorf("Resolve(%q) = %v %q %q, want %v %q %q", tt.alias, s.Kind, s.Title(), s.Key(), tt.kind, tt.title, tt.key)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	r := NewRegistry(catalog.Default())
	tests := []struct {
		alias    string
		wantKind skyerr.Kind
	}{
		{"magnitud", skyerr.KindResolution},
		{"equ:{sun}", skyerr.KindResolution},
		{"angbetween", skyerr.KindResolution},
		{"angbetween:{}", skyerr.KindResolution},
		{"angbetween:{vulcan}", skyerr.KindResolution},
		{"angbetween:{latlong:99,0}", skyerr.KindParse},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			_, err := r.Resolve(tt.alias)
			if got := skyerr.KindOf(err); got != tt.wantKind {
				t.Errorf("Resolve(%q) = %v (%s), want %s", tt.alias, err, got, tt.wantKind)
			}
		})
	}

	var e *skyerr.Error
	_, err := r.Resolve("magnitud")
	if !errors.As(err, &e) || len(e.Suggestions) == 0 || e.Suggestions[0] != "magnitude" {
		t.Errorf("suggestions for magnitud = %v", err)
	}
}

func TestResolveAll(t *testing.T) {
	r := NewRegistry(catalog.Default())
	specs, err := r.ResolveAll([]string{"equ,angbetween:{latlong:10,20}", "mag", "equ"})
	if err != nil {
		t.Fatal(err)
	}
	var got []Kind
	for _, s := range specs {
		got = append(got, s.Kind)
	}
	want := []Kind{Equatorial, AngBetween, Magnitude, Equatorial}
	if !slices.Equal(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}

	if _, err := r.ResolveAll([]string{"equ,bogus"}); skyerr.KindOf(err) != skyerr.KindResolution {
		t.Errorf("ResolveAll with unknown alias = %v", err)
	}
}

func TestCheck(t *testing.T) {
	c := catalog.Default()
	sun, _ := c.Resolve("sun")
	moon, _ := c.Resolve("moon")
	sirius, _ := c.Resolve("sirius")
	fixed, _ := c.Resolve("latlong:0,45w")

	tests := []struct {
		name     string
		kind     Kind
		obj      catalog.Object
		location bool
		want     error
	}{
		{"equ of fixed point", Equatorial, fixed, false, nil},
		{"horiz without location", Horizontal, sun, false, errRequirement},
		{"horiz with location", Horizontal, sun, true, nil},
		{"rise without location", Rise, moon, false, errRequirement},
		{"magnitude of star", Magnitude, sirius, false, nil},
		{"magnitude of fixed point", Magnitude, fixed, false, skyerr.ErrUnsupported},
		{"distance of star", Distance, sirius, false, skyerr.ErrUnsupported},
		{"phase of moon", Phase, moon, false, nil},
		{"phase of sun", Phase, sun, false, skyerr.ErrUnsupported},
		{"illumfrac of star", IllumFrac, sirius, false, skyerr.ErrUnsupported},
		{"angdia of moon", AngDia, moon, false, nil},
		{"angbetween without object", AngBetween, sun, false, errRequirement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(Spec{Kind: tt.kind}, tt.obj, tt.location)
			switch tt.want {
			case nil:
				if err != nil {
					t.Errorf("Check() = %v, want nil", err)
				}
			case errRequirement:
				if skyerr.KindOf(err) != skyerr.KindRequirement || errors.Is(err, skyerr.ErrUnsupported) {
					t.Errorf("Check() = %v, want plain requirement error", err)
				}
			default:
				if !errors.Is(err, tt.want) || skyerr.KindOf(err) != skyerr.KindRequirement {
					t.Errorf("Check() = %v, want %v", err, tt.want)
				}
			}
		})
	}
}

var errRequirement = errors.New("requirement")

func TestCheckMessages(t *testing.T) {
	c := catalog.Default()
	fixed, _ := c.Resolve("latlong:0,45w")
	err := Check(Spec{Kind: Magnitude}, fixed, false)
	if got, want := err.Error(), "magnitude of latlong:0,-45: unsupported for this object kind"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
	sun, _ := c.Resolve("sun")
	err = Check(Spec{Kind: Horizontal}, sun, false)
	if got, want := err.Error(), "horiz of Sun: requires a location (-l)"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

// stubProvider returns canned values; unimplemented methods panic through
// the nil embedded interface.
type stubProvider struct {
	ephem.Provider
	phase astro.Phase
	err   error
}

func (s stubProvider) Phase(astro.Body, instant.Instant) (astro.Phase, error) {
	return s.phase, s.err
}

func (s stubProvider) Magnitude(astro.Body, instant.Instant) (float64, error) {
	return -12.5, s.err
}

func (s stubProvider) Rise(astro.Body, instant.Instant, angle.GeoCoord) (instant.Instant, error) {
	return instant.Instant{}, s.err
}

func TestEvaluate(t *testing.T) {
	c := catalog.Default()
	moon, _ := c.Resolve("moon")
	south := &angle.GeoCoord{Lat: -33.9, Lon: 151.2}
	p := stubProvider{phase: astro.Phase{Fraction: 0.2, Waxing: true}}
	e := Evaluator{Provider: p}

	tests := []struct {
		kind     Kind
		location *angle.GeoCoord
		want     string
	}{
		{Phase, nil, "🌒 Waxing Crescent (20.0%)"},
		{PhaseEmoji, nil, "🌒"},
		{PhaseEmoji, south, "🌘"},
		{PhaseName, south, "Waxing Crescent"},
		{IllumFrac, nil, "20.0%"},
		{Magnitude, nil, "-12.50"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s south=%v", tt.kind, tt.location != nil), func(t *testing.T) {
			v, err := e.Evaluate(Spec{Kind: tt.kind}, Context{Object: moon, Location: tt.location})
			if err != nil {
				t.Fatal(err)
			}
			if got := v.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	c := catalog.Default()
	moon, _ := c.Resolve("moon")
	here := &angle.GeoCoord{Lat: 80, Lon: 0}

	e := Evaluator{Provider: stubProvider{err: astro.ErrNeverRises}}
	_, err := e.Evaluate(Spec{Kind: Rise}, Context{Object: moon, Location: here})
	if skyerr.KindOf(err) != skyerr.KindEvaluation || !errors.Is(err, astro.ErrNeverRises) {
		t.Errorf("Rise error = %v, want evaluation error wrapping ErrNeverRises", err)
	}

	e = Evaluator{Provider: stubProvider{err: fmt.Errorf("phase: %w", skyerr.ErrUnsupported)}}
	_, err = e.Evaluate(Spec{Kind: Phase}, Context{Object: moon})
	if skyerr.KindOf(err) != skyerr.KindRequirement {
		t.Errorf("unsupported provider error = %v, want requirement error", err)
	}

	_, err = e.Evaluate(Spec{Kind: Horizontal}, Context{Object: moon})
	if skyerr.KindOf(err) != skyerr.KindRequirement {
		t.Errorf("horiz without location = %v", err)
	}
}

func TestKindsComplete(t *testing.T) {
	for _, k := range Kinds() {
		if _, ok := kinds[k]; !ok {
			t.Errorf("kind %d has no table entry", k)
		}
	}
	if len(Kinds()) != len(kinds) {
		t.Errorf("Kinds() lists %d of %d kinds", len(Kinds()), len(kinds))
	}
}
