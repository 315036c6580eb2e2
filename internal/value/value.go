// Package value holds evaluated property cells. Each cell renders to text for
// the terminal and CSV writers, and to plain data for JSON and msgpack.
package value

import (
	"fmt"
	"strconv"

	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/astro"
	"github.com/litescript/skyq/internal/instant"
)

// Value is one evaluated cell.
type Value interface {
	// Text is the human-readable form.
	Text() string
	// Data is the structured form; numbers stay numbers.
	Data() any
}

// Equatorial renders as 05h34m31s +22°00′52.1″.
type Equatorial astro.Equatorial

func (v Equatorial) Text() string {
	return angle.HMS(v.RA) + " " + angle.SignedDMS(v.Dec)
}

func (v Equatorial) Data() any {
	return struct {
		RA  float64 `json:"ra" msgpack:"ra"`
		Dec float64 `json:"dec" msgpack:"dec"`
	}{v.RA.Wrap360().Degrees(), v.Dec.Degrees()}
}

// Horizontal renders as 123°04′05.6″ +12°03′04.5″.
type Horizontal astro.Horizontal

func (v Horizontal) Text() string {
	return angle.DMS(v.Az) + " " + angle.SignedDMS(v.Alt)
}

func (v Horizontal) Data() any {
	return struct {
		Az  float64 `json:"az" msgpack:"az"`
		Alt float64 `json:"alt" msgpack:"alt"`
	}{v.Az.Wrap360().Degrees(), v.Alt.Degrees()}
}

// Ecliptic renders like Horizontal.
type Ecliptic astro.Ecliptic

func (v Ecliptic) Text() string {
	return angle.DMS(v.Lon) + " " + angle.SignedDMS(v.Lat)
}

func (v Ecliptic) Data() any {
	return struct {
		Lon float64 `json:"lon" msgpack:"lon"`
		Lat float64 `json:"lat" msgpack:"lat"`
	}{v.Lon.Wrap360().Degrees(), v.Lat.Degrees()}
}

// Distance is a length in astronomical units.
type Distance float64

func (v Distance) Text() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) + " AU" }
func (v Distance) Data() any    { return float64(v) }

// Magnitude is an apparent visual magnitude.
type Magnitude float64

func (v Magnitude) Text() string { return fmt.Sprintf("%.2f", float64(v)) }
func (v Magnitude) Data() any    { return float64(v) }

// Angle is an unsigned angular size or separation.
type Angle angle.Angle

func (v Angle) Text() string { return angle.DMS(angle.Angle(v)) }
func (v Angle) Data() any    { return angle.Angle(v).Degrees() }

// Time is an event instant such as a rise or set.
type Time instant.Instant

func (v Time) Text() string { return instant.Instant(v).String() }
func (v Time) Data() any    { return instant.Instant(v).String() }

// Text is a bare string cell.
type Text string

func (v Text) Text() string { return string(v) }
func (v Text) Data() any    { return string(v) }
