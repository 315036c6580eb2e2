package astro

import (
	"math"
	"testing"

	"github.com/litescript/skyq/internal/angle"
)

const j2000 = 2451545.0

func TestLocalSiderealTime(t *testing.T) {
	tests := []struct {
		name string
		jd   float64
		lon  angle.Angle
		want float64
	}{
		{"Greenwich at J2000", j2000, 0, 280.46061837},
		{"90E at J2000", j2000, 90, 10.46061837},
		{"one sidereal day later", j2000 + 0.99726957, 0, 280.46061837},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalSiderealTime(tt.jd, tt.lon).Degrees()
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("LocalSiderealTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToHorizontal(t *testing.T) {
	jd := 2460310.5
	obs := angle.GeoCoord{Lat: 40, Lon: -75}
	lst := LocalSiderealTime(jd, obs.Lon)

	tests := []struct {
		name    string
		obs     angle.GeoCoord
		eq      Equatorial
		wantAz  float64
		wantAlt float64
	}{
		{
			name:    "on the meridian at the zenith",
			obs:     obs,
			eq:      Equatorial{RA: lst, Dec: 40},
			wantAlt: 90,
		},
		{
			name:    "celestial equator rising due east",
			obs:     angle.GeoCoord{Lat: 0, Lon: -75},
			eq:      Equatorial{RA: (lst + 90).Wrap360(), Dec: 0},
			wantAz:  90,
			wantAlt: 0,
		},
		{
			name:    "celestial equator setting due west",
			obs:     angle.GeoCoord{Lat: 0, Lon: -75},
			eq:      Equatorial{RA: (lst - 90).Wrap360(), Dec: 0},
			wantAz:  270,
			wantAlt: 0,
		},
		{
			name:    "transit south of zenith",
			obs:     obs,
			eq:      Equatorial{RA: lst, Dec: 0},
			wantAz:  180,
			wantAlt: 50,
		},
		{
			name:    "pole star due north",
			obs:     obs,
			eq:      Equatorial{RA: 0, Dec: 90},
			wantAz:  0,
			wantAlt: 40,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ToHorizontal(tt.eq, tt.obs, jd)
			if math.Abs(h.Alt.Degrees()-tt.wantAlt) > 1e-6 {
				t.Errorf("Alt = %v, want %v", h.Alt.Degrees(), tt.wantAlt)
			}
			if tt.wantAlt == 90 {
				return // azimuth undefined at the zenith
			}
			dAz := math.Abs((h.Az - angle.Angle(tt.wantAz)).Wrap180().Degrees())
			if dAz > 1e-6 {
				t.Errorf("Az = %v, want %v", h.Az.Degrees(), tt.wantAz)
			}
		})
	}
}

func TestSeparation(t *testing.T) {
	tests := []struct {
		name string
		a, b Equatorial
		want float64
	}{
		{"same point", Equatorial{RA: 10, Dec: 20}, Equatorial{RA: 10, Dec: 20}, 0},
		{"quarter turn on equator", Equatorial{RA: 0, Dec: 0}, Equatorial{RA: 90, Dec: 0}, 90},
		{"pole to pole", Equatorial{RA: 0, Dec: 90}, Equatorial{RA: 123, Dec: -90}, 180},
		{"across RA zero", Equatorial{RA: 359, Dec: 0}, Equatorial{RA: 1, Dec: 0}, 2},
		{"symmetric", Equatorial{RA: 90, Dec: 0}, Equatorial{RA: 0, Dec: 0}, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Separation(tt.a, tt.b).Degrees()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Separation() = %v, want %v", got, tt.want)
			}
		})
	}
}
