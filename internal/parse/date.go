package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/skyerr"
)

// DateParser turns date tokens into Instants. Relative offsets are applied to
// the base the caller supplies.
type DateParser struct {
	clock instant.Clock
}

// NewDateParser creates a parser reading "now" from clock.
func NewDateParser(clock instant.Clock) *DateParser {
	return &DateParser{clock: clock}
}

// dateForm tries one textual shape. ok=false declines; a non-nil error is
// final.
type dateForm func(p *DateParser, s string, base instant.Instant) (instant.Instant, bool, error)

// Priority order matters: "-5d" is a relative offset, never a negative ISO
// year, and "2451545j" is a Julian day before anything else sees it.
var dateForms = []dateForm{
	(*DateParser).now,
	(*DateParser).unixPrefix,
	(*DateParser).julian,
	(*DateParser).unixSuffix,
	(*DateParser).relative,
	(*DateParser).rfc3339,
	(*DateParser).iso,
}

// Parse converts token to an Instant.
func (p *DateParser) Parse(token string, base instant.Instant) (instant.Instant, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	for _, form := range dateForms {
		at, ok, err := form(p, s, base)
		if err != nil {
			return instant.Instant{}, err
		}
		if ok {
			return at, nil
		}
	}
	return instant.Instant{}, skyerr.Parse("date", token,
		"expected now, @unix, <n>j, <n>jd, [+-]<n><unit> or YYYY-MM-DD[THH:MM[:SS]]")
}

func (p *DateParser) now(s string, _ instant.Instant) (instant.Instant, bool, error) {
	if s != "now" {
		return instant.Instant{}, false, nil
	}
	return instant.Now(p.clock), true, nil
}

func (p *DateParser) unixPrefix(s string, _ instant.Instant) (instant.Instant, bool, error) {
	rest, found := strings.CutPrefix(s, "@")
	if !found {
		return instant.Instant{}, false, nil
	}
	sec, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return instant.Instant{}, true, skyerr.Parse("date", s, "expected integer Unix seconds after @")
	}
	return instant.FromUnix(float64(sec)), true, nil
}

func (p *DateParser) julian(s string, _ instant.Instant) (instant.Instant, bool, error) {
	for _, suffix := range []string{"jd", "j"} {
		if num, found := strings.CutSuffix(s, suffix); found {
			if n, ok := number(num); ok {
				return instant.FromJD(n), true, nil
			}
		}
	}
	return instant.Instant{}, false, nil
}

func (p *DateParser) unixSuffix(s string, _ instant.Instant) (instant.Instant, bool, error) {
	if num, found := strings.CutSuffix(s, "u"); found {
		if n, ok := number(num); ok {
			return instant.FromUnix(n), true, nil
		}
	}
	return instant.Instant{}, false, nil
}

func (p *DateParser) relative(s string, base instant.Instant) (instant.Instant, bool, error) {
	if !strings.HasPrefix(s, "+") && !strings.HasPrefix(s, "-") {
		return instant.Instant{}, false, nil
	}
	step, ok, err := tryStep(s)
	if err != nil || !ok {
		return instant.Instant{}, ok, err
	}
	return base.Add(step), true, nil
}

func (p *DateParser) rfc3339(s string, _ instant.Instant) (instant.Instant, bool, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.ToUpper(s))
	if err != nil {
		return instant.Instant{}, false, nil
	}
	return instant.FromTime(t), true, nil
}

var isoDate = regexp.MustCompile(
	`^([+-]?\d{1,6})-(\d{1,2})-(\d{1,2})(?:[t ](\d{1,2})(?::(\d{1,2})(?::(\d{1,2}(?:\.\d+)?))?)?)?z?$`)

// iso accepts YYYY-MM-DD with optional time. Out-of-range fields roll over.
func (p *DateParser) iso(s string, _ instant.Instant) (instant.Instant, bool, error) {
	m := isoDate.FindStringSubmatch(s)
	if m == nil {
		return instant.Instant{}, false, nil
	}
	field := func(i int) int {
		if m[i] == "" {
			return 0
		}
		n, _ := strconv.Atoi(m[i])
		return n
	}
	var sec float64
	if m[6] != "" {
		sec, _ = strconv.ParseFloat(m[6], 64)
	}
	return instant.FromCalendar(field(1), time.Month(field(2)), field(3), field(4), field(5), sec), true, nil
}
