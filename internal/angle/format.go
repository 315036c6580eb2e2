package angle

import (
	"fmt"
	"math"
)

// DMS renders an unsigned angle wrapped to [0, 360) as 123°04′05.6″.
func DMS(a Angle) string {
	d, m, s := split(a.Wrap360().Degrees())
	if d == 360 {
		d = 0
	}
	return fmt.Sprintf("%02d°%02d′%.1f″", d, m, s)
}

// SignedDMS renders a latitude-style angle clamped to ±90°. South of zero
// every component carries the minus sign (-23°-26′-21.4″).
func SignedDMS(a Angle) string {
	lat := a.Latitude().Degrees()
	d, m, s := split(math.Abs(lat))
	if lat < 0 {
		d, m, s = -d, -m, -s
	}
	return fmt.Sprintf("%+d°%02d′%.1f″", d, m, s)
}

// HMS renders an angle as hours of right ascension, 05h34m31s. Seconds are
// truncated.
func HMS(a Angle) string {
	total := int(math.Floor(a.Wrap360().Degrees()/15*3600 + 1e-6))
	total %= 24 * 3600
	return fmt.Sprintf("%02dh%02dm%02ds", total/3600, (total/60)%60, total%60)
}

// split breaks non-negative degrees into degrees, minutes and seconds rounded
// to a tenth of an arcsecond.
func split(deg float64) (d, m int, s float64) {
	tenths := math.Round(deg * 36000)
	d = int(tenths / 36000)
	rem := tenths - float64(d)*36000
	m = int(rem / 600)
	s = (rem - float64(m)*600) / 10
	return d, m, s
}
