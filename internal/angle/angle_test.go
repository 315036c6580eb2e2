package angle

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		in      float64
		want360 float64
		want180 float64
	}{
		{0, 0, 0},
		{370, 10, 10},
		{-10, 350, -10},
		{180, 180, 180},
		{190, 190, -170},
		{-720, 0, 0},
	}
	for _, tt := range tests {
		if got := Angle(tt.in).Wrap360().Degrees(); math.Abs(got-tt.want360) > 1e-9 {
			t.Errorf("Wrap360(%v) = %v, want %v", tt.in, got, tt.want360)
		}
		if got := Angle(tt.in).Wrap180().Degrees(); math.Abs(got-tt.want180) > 1e-9 {
			t.Errorf("Wrap180(%v) = %v, want %v", tt.in, got, tt.want180)
		}
	}
}

func TestLatitudeClamp(t *testing.T) {
	if got := Angle(95).Latitude(); got != 90 {
		t.Errorf("Latitude(95) = %v", got)
	}
	if got := Angle(-120).Latitude(); got != -90 {
		t.Errorf("Latitude(-120) = %v", got)
	}
}

func TestFromSexagesimal(t *testing.T) {
	got := FromSexagesimal(false, 23, 26, 21.4).Degrees()
	want := 23 + 26.0/60 + 21.4/3600
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("FromSexagesimal = %v, want %v", got, want)
	}
	if neg := FromSexagesimal(true, 23, 26, 21.4).Degrees(); math.Abs(neg+want) > 1e-9 {
		t.Errorf("negative FromSexagesimal = %v", neg)
	}
}

func TestFromRadians(t *testing.T) {
	if got := FromRadians(math.Pi).Degrees(); math.Abs(got-180) > 1e-9 {
		t.Errorf("FromRadians(pi) = %v", got)
	}
}

func TestDMS(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00°00′0.0″"},
		{120.5, "120°30′0.0″"},
		{5.25, "05°15′0.0″"},
		{-10, "350°00′0.0″"},
		{0.5333, "00°31′59.9″"},
		{359.999999, "00°00′0.0″"},
	}
	for _, tt := range tests {
		if got := DMS(Angle(tt.in)); got != tt.want {
			t.Errorf("DMS(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSignedDMS(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{23.439, "+23°26′20.4″"},
		{-23.439, "-23°-26′-20.4″"},
		{5.5, "+5°30′0.0″"},
		{-0.5, "+0°-30′-0.0″"},
		{91, "+90°00′0.0″"},
	}
	for _, tt := range tests {
		if got := SignedDMS(Angle(tt.in)); got != tt.want {
			t.Errorf("SignedDMS(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHMS(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00h00m00s"},
		{30, "02h00m00s"},
		{101.287, "06h45m08s"},
		{359.9999, "23h59m59s"},
	}
	for _, tt := range tests {
		if got := HMS(Angle(tt.in)); got != tt.want {
			t.Errorf("HMS(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeoCoord(t *testing.T) {
	g := GeoCoord{Lat: -33.5, Lon: 151}
	if g.North() {
		t.Error("negative latitude should be south")
	}
	if got := g.String(); got != "-33.5,151" {
		t.Errorf("String() = %q", got)
	}
}
