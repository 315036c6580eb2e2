package value

import (
	"fmt"

	"github.com/litescript/skyq/internal/astro"
)

// Phase renders as 🌔 Waxing Gibbous (78.3%). North selects the glyph set.
type Phase struct {
	astro.Phase
	North bool
}

func (v Phase) Text() string {
	return fmt.Sprintf("%s %s (%s)", v.Emoji(v.North), v.Name(), percent(v.Fraction))
}

func (v Phase) Data() any {
	return struct {
		Name     string  `json:"name" msgpack:"name"`
		Emoji    string  `json:"emoji" msgpack:"emoji"`
		Fraction float64 `json:"illuminated_fraction" msgpack:"illuminated_fraction"`
		Angle    float64 `json:"phase_angle" msgpack:"phase_angle"`
	}{v.Name(), v.Emoji(v.North), v.Fraction, v.Angle.Degrees()}
}

// Illumination is the illuminated fraction, rendered as a percentage.
type Illumination float64

func (v Illumination) Text() string { return percent(float64(v)) }
func (v Illumination) Data() any    { return float64(v) }

func percent(f float64) string { return fmt.Sprintf("%.1f%%", f*100) }
