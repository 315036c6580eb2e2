package parse

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/skyerr"
)

var clock = instant.FixedClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

func TestParseDate(t *testing.T) {
	p := NewDateParser(clock)
	base := instant.Now(clock)
	tests := []struct {
		in   string
		want string
	}{
		{"now", "2024-03-10T12:00:00"},
		{"  NOW ", "2024-03-10T12:00:00"},
		{"@0", "1970-01-01T00:00:00"},
		{"@86400", "1970-01-02T00:00:00"},
		{"2451545j", "2000-01-01T12:00:00"},
		{"2451545.5jd", "2000-01-02T00:00:00"},
		{"86400u", "1970-01-02T00:00:00"},
		{"+1d", "2024-03-11T12:00:00"},
		{"-2h", "2024-03-10T10:00:00"},
		{"+30min", "2024-03-10T12:30:00"},
		{"+1mon", "2024-04-10T12:00:00"},
		{"-1y", "2023-03-10T12:00:00"},
		{"+1w", "2024-03-17T12:00:00"},
		{"2024-01-15T10:00:00+02:00", "2024-01-15T08:00:00"},
		{"2024-02-29T06:30Z", "2024-02-29T06:30:00"},
		{"2024-06-01 18:45", "2024-06-01T18:45:00"},
		{"2024-06-01", "2024-06-01T00:00:00"},
		{"2000-04-52", "2000-05-22T00:00:00"},
		{"2024-01-01T25:00", "2024-01-02T01:00:00"},
	}
	for _, tt := range tests {
		got, err := p.Parse(tt.in, base)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDateErrors(t *testing.T) {
	p := NewDateParser(clock)
	for _, in := range []string{"yesterday", "", "@abc", "+1.5mon", "+2.5y", "2024/01/01", "12x"} {
		_, err := p.Parse(in, instant.Now(clock))
		if skyerr.KindOf(err) != skyerr.KindParse {
			t.Errorf("Parse(%q) = %v, want parse error", in, err)
		}
	}
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		in   string
		want instant.Step
	}{
		{"1d", instant.Seconds(86400)},
		{"-6h", instant.Seconds(-21600)},
		{"30min", instant.Seconds(1800)},
		{"90s", instant.Seconds(90)},
		{"0.5d", instant.Seconds(43200)},
		{"2w", instant.Seconds(14 * 86400)},
		{"1mon", instant.Months(1)},
		{"-3mon", instant.Months(-3)},
		{"2y", instant.Months(24)},
	}
	for _, tt := range tests {
		got, err := Step(tt.in)
		if err != nil {
			t.Errorf("Step(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Step(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"", "d", "1x", "1.5mon", "fast"} {
		if _, err := Step(in); skyerr.KindOf(err) != skyerr.KindParse {
			t.Errorf("Step(%q) = %v, want parse error", in, err)
		}
	}
}

func TestParseAngle(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"45", 45},
		{"-12.25", -12.25},
		{"45.5deg", 45.5},
		{"10d", 10},
		{"120°", 120},
		{"0.5rad", 0.5 * 180 / math.Pi},
		{"12°30′", 12.5},
		{"12°30'36\"", 12.51},
		{"12:30:36", 12.51},
		{"-12:30", -12.5},
		{"45w", -45},
		{"45e", 45},
		{"-30s", -30},
		{"30n", 30},
		{"51°28′38″n", 51 + 28.0/60 + 38.0/3600},
		{"12d30m36s", 12.51},
		{"12d30m", 12.5},
		{"12d30m36ss", -12.51},
	}
	for _, tt := range tests {
		got, err := Angle(tt.in)
		if err != nil {
			t.Errorf("Angle(%q) error: %v", tt.in, err)
			continue
		}
		if math.Abs(got.Degrees()-tt.want) > 1e-9 {
			t.Errorf("Angle(%q) = %v, want %v", tt.in, got.Degrees(), tt.want)
		}
	}
	for _, in := range []string{"", "abc", "12x", "w", "1.2.3"} {
		if _, err := Angle(in); skyerr.KindOf(err) != skyerr.KindParse {
			t.Errorf("Angle(%q) = %v, want parse error", in, err)
		}
	}
}

func TestParseLatLong(t *testing.T) {
	tests := []struct {
		in       string
		lat, lon float64
	}{
		{"51.5,-0.1", 51.5, -0.1},
		{"33.9s,151.2e", -33.9, 151.2},
		{"0, 270", 0, -90},
		{"-90,180", -90, 180},
	}
	for _, tt := range tests {
		g, err := LatLong(tt.in)
		if err != nil || g == nil {
			t.Errorf("LatLong(%q) = %v, %v", tt.in, g, err)
			continue
		}
		if math.Abs(g.Lat.Degrees()-tt.lat) > 1e-9 || math.Abs(g.Lon.Degrees()-tt.lon) > 1e-9 {
			t.Errorf("LatLong(%q) = %v, want %v,%v", tt.in, g, tt.lat, tt.lon)
		}
	}

	for _, in := range []string{"", "none", "  NONE "} {
		if g, err := LatLong(in); g != nil || err != nil {
			t.Errorf("LatLong(%q) = %v, %v, want no location", in, g, err)
		}
	}
	for _, in := range []string{"91,0", "45", "abc,10", "10,abc"} {
		if _, err := LatLong(in); skyerr.KindOf(err) != skyerr.KindParse {
			t.Errorf("LatLong(%q) = %v, want parse error", in, err)
		}
	}
}

func TestParseEphemeris(t *testing.T) {
	p := NewDateParser(clock)
	base := instant.Now(clock)

	spec, err := p.Ephemeris(",1d,+2d", base)
	if err != nil {
		t.Fatalf("Ephemeris: %v", err)
	}
	if spec.Start != base {
		t.Errorf("empty start should default to base, got %s", spec.Start)
	}
	if got := spec.End.String(); got != "2024-03-12T12:00:00" {
		t.Errorf("end = %s", got)
	}
	if n := spec.Count(); n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}

	spec, err = p.Ephemeris("2024-01-01,1mon,2024-06-01", base)
	if err != nil {
		t.Fatalf("Ephemeris: %v", err)
	}
	if n := spec.Count(); n != 6 {
		t.Errorf("monthly Count() = %d, want 6", n)
	}

	for _, in := range []string{"a,b", "2024-01-01,1x,2024-01-02", "2024-01-01,1d,never", "x,1d,now"} {
		if _, err := p.Ephemeris(in, base); skyerr.KindOf(err) != skyerr.KindParse {
			t.Errorf("Ephemeris(%q) = %v, want parse error", in, err)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"equ", []string{"equ"}},
		{"equ, horiz ,mag", []string{"equ", "horiz", "mag"}},
		{"equ,angbetween:{latlong:10,20},mag", []string{"equ", "angbetween:{latlong:10,20}", "mag"}},
		{",,", nil},
		{"a,}b,c", []string{"a", "}b", "c"}},
	}
	for _, tt := range tests {
		if got := SplitList(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("SplitList(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
