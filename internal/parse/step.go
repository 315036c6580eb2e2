// Package parse converts user tokens (dates, steps, angles, locations and
// ephemeris ranges) into typed values. Every parser is an ordered chain of
// trial forms; a form either declines, succeeds, or fails hard when the token
// has its shape but bad content.
package parse

import (
	"math"
	"strconv"
	"strings"

	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/skyerr"
)

// stepUnit maps a unit suffix to a step constructor. Calendar units only
// accept whole counts.
type stepUnit struct {
	suffix   string
	calendar bool
	scale    float64 // months for calendar units, seconds otherwise
}

// Longer suffixes first so "min" and "mon" win over single letters.
var stepUnits = []stepUnit{
	{suffix: "mon", calendar: true, scale: 1},
	{suffix: "min", scale: 60},
	{suffix: "y", calendar: true, scale: 12},
	{suffix: "w", scale: 7 * instant.SecondsPerDay},
	{suffix: "d", scale: instant.SecondsPerDay},
	{suffix: "h", scale: 3600},
	{suffix: "s", scale: 1},
}

// Step parses an interval such as 1d, -6h, 30min, 1mon or 2y.
func Step(token string) (instant.Step, error) {
	s, ok, err := tryStep(token)
	if err != nil {
		return instant.Step{}, err
	}
	if !ok {
		return instant.Step{}, skyerr.Parse("step", token, "expected <number><unit> with unit y, mon, w, d, h, min or s")
	}
	return s, nil
}

// tryStep declines tokens that do not look like <number><unit>.
func tryStep(token string) (instant.Step, bool, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	for _, u := range stepUnits {
		num, found := strings.CutSuffix(s, u.suffix)
		if !found || num == "" {
			continue
		}
		n, ok := number(num)
		if !ok {
			continue
		}
		if u.calendar {
			if n != math.Trunc(n) {
				return instant.Step{}, true, skyerr.Parse("step", token, "years and months must be whole numbers")
			}
			return instant.Months(int(n * u.scale)), true, nil
		}
		return instant.Seconds(n * u.scale), true, nil
	}
	return instant.Step{}, false, nil
}

// number parses a finite decimal literal.
func number(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
