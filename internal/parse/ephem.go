package parse

import (
	"fmt"
	"strings"

	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/series"
	"github.com/litescript/skyq/internal/skyerr"
)

// Ephemeris parses "start,step,end". An empty start means base. Relative
// start and end tokens are resolved against base.
func (p *DateParser) Ephemeris(token string, base instant.Instant) (series.Spec, error) {
	parts := strings.Split(token, ",")
	if len(parts) != 3 {
		return series.Spec{}, skyerr.Parse("ephemeris range", token, "expected start,step,end")
	}
	start := base
	if s := strings.TrimSpace(parts[0]); s != "" {
		var err error
		if start, err = p.Parse(s, base); err != nil {
			return series.Spec{}, fmt.Errorf("ephemeris start: %w", err)
		}
	}
	step, err := Step(parts[1])
	if err != nil {
		return series.Spec{}, fmt.Errorf("ephemeris step: %w", err)
	}
	end, err := p.Parse(parts[2], base)
	if err != nil {
		return series.Spec{}, fmt.Errorf("ephemeris end: %w", err)
	}
	return series.Spec{Start: start, Step: step, End: end}, nil
}
