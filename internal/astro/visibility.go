package astro

import (
	"errors"
	"math"

	"github.com/litescript/skyq/internal/angle"
)

// Standard altitudes of the centre at rise and set, in degrees. They fold in
// refraction and, for the Sun and Moon, semi-diameter and parallax.
const (
	SunHorizon   = -0.8333
	MoonHorizon  = 0.125
	StarHorizon  = -0.5667
	sampleMinute = 1.0 / (24 * 60)
)

// SampleInterval is the spacing of altitude samples, in days.
const SampleInterval = 10 * sampleMinute

// Errors for rise/set search.
var (
	ErrNeverRises = errors.New("does not rise on this date")
	ErrNeverSets  = errors.New("does not set on this date")
)

// HorizonFor returns the standard rise/set altitude for b.
func HorizonFor(b Body) float64 {
	switch b.Kind {
	case KindSun:
		return SunHorizon
	case KindMoon:
		return MoonHorizon
	default:
		return StarHorizon
	}
}

// AltitudeFunc gives a body's altitude in degrees at a Julian day.
type AltitudeFunc func(jd float64) float64

// AltitudeOf returns an AltitudeFunc for b seen from obs.
func AltitudeOf(b Body, obs angle.GeoCoord) AltitudeFunc {
	return func(jd float64) float64 {
		return ToHorizontal(Locate(b, jd).Equatorial, obs, jd).Alt.Degrees()
	}
}

// Window is the first rise and set found in one sampled day.
type Window struct {
	Rise, Set       float64 // Julian days, valid when HasRise / HasSet
	HasRise, HasSet bool
	AlwaysUp        bool // stayed above the horizon at every sample
	NeverUp         bool // stayed below the horizon at every sample
	MaxAltitude     float64
}

// RiseSet samples alt every SampleInterval over the day starting at dayStart
// and linearly interpolates the first upward and downward crossings of h0.
func RiseSet(alt AltitudeFunc, dayStart, h0 float64) Window {
	n := int(math.Round(1 / SampleInterval))
	w := Window{MaxAltitude: -90, AlwaysUp: true, NeverUp: true}

	prevT := dayStart
	prevAlt := alt(prevT)
	w.observe(prevAlt, h0)
	for k := 1; k <= n; k++ {
		t := dayStart + float64(k)*SampleInterval
		a := alt(t)
		w.observe(a, h0)

		if !w.HasRise && prevAlt <= h0 && a > h0 {
			w.Rise = interpolateCrossing(prevT, t, prevAlt, a, h0)
			w.HasRise = true
		}
		if !w.HasSet && prevAlt > h0 && a <= h0 {
			w.Set = interpolateCrossing(prevT, t, prevAlt, a, h0)
			w.HasSet = true
		}
		prevT, prevAlt = t, a
	}
	return w
}

func (w *Window) observe(a, h0 float64) {
	if a > w.MaxAltitude {
		w.MaxAltitude = a
	}
	if a > h0 {
		w.NeverUp = false
	} else {
		w.AlwaysUp = false
	}
}

// RiseTime returns the rise, or ErrNeverRises.
func (w Window) RiseTime() (float64, error) {
	if !w.HasRise {
		return 0, ErrNeverRises
	}
	return w.Rise, nil
}

// SetTime returns the set, or ErrNeverSets.
func (w Window) SetTime() (float64, error) {
	if !w.HasSet {
		return 0, ErrNeverSets
	}
	return w.Set, nil
}

// interpolateCrossing finds the time when altitude crosses a threshold.
func interpolateCrossing(t1, t2, a1, a2, threshold float64) float64 {
	if math.Abs(a2-a1) < 1e-9 {
		return t1
	}
	fraction := (threshold - a1) / (a2 - a1)
	fraction = math.Max(0, math.Min(1, fraction))
	return t1 + (t2-t1)*fraction
}
