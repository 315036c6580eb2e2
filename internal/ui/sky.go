package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/astro"
)

const (
	// Field of view in degrees
	fovAz = 120.0 // horizontal FOV
	fovEl = 60.0  // vertical FOV, horizon at the bottom

	glyphTarget      = '◆'
	glyphTargetBelow = '▼'
	colorTarget      = "229" // bright gold

	// Star glyphs by magnitude
	glyphStarBright = '✶' // mag < 1.5
	glyphStarMedium = '✸' // mag 1.5-3.0
	glyphStarDim    = '·'

	colorStarBright = "255"
	colorStarMedium = "250"
	colorStarDim    = "244"
)

// SkyPanel draws the sky around the queried object: bright stars, the
// horizon with cardinal points, and the object itself. The view is centered
// on the object's azimuth and spans altitudes 0-60°; higher objects are
// pinned to the top row.
type SkyPanel struct {
	width  int
	height int
}

// NewSkyPanel creates a panel with a default size.
func NewSkyPanel() SkyPanel {
	return SkyPanel{width: 60, height: 12}
}

// SetSize resizes the panel. Sizes below 10x4 are raised to that minimum.
func (p SkyPanel) SetSize(width, height int) SkyPanel {
	p.width = max(10, width)
	p.height = max(4, height)
	return p
}

// Render draws the panel. target is the object's position seen from obs at
// Julian day jd.
func (p SkyPanel) Render(target astro.Horizontal, name string, obs angle.GeoCoord, jd float64) string {
	width, height := p.width, p.height
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := range canvas {
		canvas[y] = []rune(strings.Repeat(" ", width))
		colors[y] = make([]lipgloss.Color, width)
		for x := range colors[y] {
			colors[y][x] = "236"
		}
	}
	horizonY := height - 2
	camAz := target.Az.Degrees()

	for _, star := range astro.Stars() {
		h := astro.ToHorizontal(star.Position, obs, jd)
		if h.Alt <= 0 {
			continue
		}
		x, y, ok := p.project(camAz, h.Az.Degrees(), h.Alt.Degrees())
		if !ok || y >= horizonY {
			continue
		}
		canvas[y][x], colors[y][x] = starGlyph(star.Mag)
	}

	for x := 0; x < width; x++ {
		canvas[horizonY][x] = '─'
		colors[horizonY][x] = "60"
	}
	for _, c := range []struct {
		label rune
		az    float64
	}{{'N', 0}, {'E', 90}, {'S', 180}, {'W', 270}} {
		if x, _, ok := p.project(camAz, c.az, 0); ok {
			canvas[horizonY][x] = c.label
			colors[horizonY][x] = "252"
		}
	}

	// The object sits at the horizontal center.
	tx := p.column(0)
	ty := horizonY
	glyph := glyphTargetBelow
	if alt := target.Alt.Degrees(); alt > 0 {
		glyph = glyphTarget
		ty = max(0, p.row(alt))
	}
	canvas[ty][tx] = glyph
	colors[ty][tx] = colorTarget
	for i, r := range []rune(name) {
		x := tx + 2 + i
		if x >= width {
			break
		}
		canvas[ty][x] = r
		colors[ty][x] = colorTarget
	}

	var b strings.Builder
	for y := range canvas {
		for x := range canvas[y] {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// project maps az/el to a canvas cell relative to a camera looking at camAz.
func (p SkyPanel) project(camAz, az, el float64) (int, int, bool) {
	dAz := angle.Angle(az - camAz).Wrap180().Degrees()
	if dAz < -fovAz/2 || dAz >= fovAz/2 || el > fovEl {
		return 0, 0, false
	}
	return p.column(dAz), p.row(el), true
}

func (p SkyPanel) column(dAz float64) int {
	return min(p.width-1, int((dAz+fovAz/2)/fovAz*float64(p.width)))
}

func (p SkyPanel) row(el float64) int {
	horizonY := p.height - 2
	return int((fovEl - el) / fovEl * float64(horizonY))
}

func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}
