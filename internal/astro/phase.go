package astro

import (
	"fmt"
	"math"

	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/skyerr"
)

// Phase describes the illuminated part of a body's disc as seen from Earth.
type Phase struct {
	Angle    angle.Angle // Sun-body-Earth angle
	Fraction float64     // illuminated fraction, 0-1
	Waxing   bool        // body is east of the Sun
}

var phaseNames = [8]string{
	"New",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

// The southern hemisphere sees the disc mirrored.
var (
	northEmoji = [8]string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"}
	southEmoji = [8]string{"🌑", "🌘", "🌗", "🌖", "🌕", "🌔", "🌓", "🌒"}
)

// PhaseOf derives the phase of b from its apparent state.
func PhaseOf(b Body, a Apparent) (Phase, error) {
	if !b.HasPhase() {
		return Phase{}, fmt.Errorf("phase of %s: %w", b.Kind, skyerr.ErrUnsupported)
	}
	return Phase{
		Angle:    a.PhaseAngle,
		Fraction: (1 + math.Cos(a.PhaseAngle.Radians())) / 2,
		Waxing:   a.Elongation > 0,
	}, nil
}

// Index returns the phase's position in the eight-step cycle, 0 being new.
func (p Phase) Index() int {
	k := p.Fraction
	pick := func(waxing, waning int) int {
		if p.Waxing {
			return waxing
		}
		return waning
	}
	switch {
	case k < 0.04:
		return 0
	case k >= 0.96:
		return 4
	case k >= 0.46 && k < 0.54:
		return pick(2, 6)
	case k >= 0.54:
		return pick(3, 5)
	default:
		return pick(1, 7)
	}
}

// Name returns the conventional phase name.
func (p Phase) Name() string { return phaseNames[p.Index()] }

// Emoji returns the moon glyph for the phase as seen from the given
// hemisphere.
func (p Phase) Emoji(north bool) string {
	if north {
		return northEmoji[p.Index()]
	}
	return southEmoji[p.Index()]
}
