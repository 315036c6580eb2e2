// Package property defines the queryable properties, their aliases and
// requirements, and evaluates them through an ephemeris provider.
package property

import (
	"github.com/litescript/skyq/internal/astro"
)

// Kind is a closed set of properties.
type Kind int

const (
	Equatorial Kind = iota
	Horizontal
	Ecliptic
	Distance
	Magnitude
	Phase
	PhaseEmoji
	PhaseName
	IllumFrac
	AngDia
	Rise
	Set
	AngBetween
)

// Requirement is a bit set of what a property needs besides an object and
// an instant.
type Requirement uint8

const (
	NeedsLocation Requirement = 1 << iota
	NeedsSecondary
)

type kindInfo struct {
	aliases  []string // first alias is canonical
	title    string
	key      string
	requires Requirement
	supports func(astro.Kind) bool
}

func anyBody(astro.Kind) bool { return true }

func solarSystem(k astro.Kind) bool {
	return k == astro.KindSun || k == astro.KindMoon || k == astro.KindPlanet
}

func luminous(k astro.Kind) bool { return solarSystem(k) || k == astro.KindStar }

func phased(k astro.Kind) bool { return k == astro.KindMoon || k == astro.KindPlanet }

var kinds = map[Kind]kindInfo{
	Equatorial: {[]string{"equ", "equa", "equatorial"}, "Coordinates (RA/De)", "equatorial", 0, anyBody},
	Horizontal: {[]string{"horiz", "horizontal"}, "Coordinates (Azi/Alt)", "horizontal", NeedsLocation, anyBody},
	Ecliptic:   {[]string{"ecl", "ecliptic"}, "Coordinates (Ecliptic)", "ecliptic", 0, anyBody},
	Distance:   {[]string{"distance", "dist"}, "Distance", "distance", 0, solarSystem},
	Magnitude:  {[]string{"magnitude", "mag", "brightness"}, "Magnitude", "magnitude", 0, luminous},
	Phase:      {[]string{"phase"}, "Phase", "phase", 0, phased},
	PhaseEmoji: {[]string{"phaseemoji"}, "Phase Emoji", "phase_emoji", 0, phased},
	PhaseName:  {[]string{"phasename"}, "Phase Name", "phase_name", 0, phased},
	IllumFrac:  {[]string{"illumfrac", "phasepercent", "phaseprecent"}, "Illuminated Frac.", "illuminated_fraction", 0, phased},
	AngDia:     {[]string{"angdia"}, "Angular Diameter", "angular_diameter", 0, solarSystem},
	Rise:       {[]string{"rise"}, "Rise Time", "rise", NeedsLocation, anyBody},
	Set:        {[]string{"set"}, "Set Time", "set", NeedsLocation, anyBody},
	AngBetween: {[]string{"angbetween"}, "Angle to", "angle_to", NeedsSecondary, anyBody},
}

// String returns the canonical alias.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.aliases[0]
	}
	return "unknown"
}

// Requires reports what k needs.
func (k Kind) Requires() Requirement { return kinds[k].requires }

// Supports reports whether k can be computed for bodies of kind b.
func (k Kind) Supports(b astro.Kind) bool {
	info, ok := kinds[k]
	return ok && info.supports(b)
}

// Kinds lists every property kind in display order.
func Kinds() []Kind {
	return []Kind{Equatorial, Horizontal, Ecliptic, Distance, Magnitude, Phase,
		PhaseEmoji, PhaseName, IllumFrac, AngDia, Rise, Set, AngBetween}
}

// Aliases returns every alias accepted for k.
func (k Kind) Aliases() []string {
	return append([]string(nil), kinds[k].aliases...)
}
