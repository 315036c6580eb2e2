package property

import (
	"errors"

	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/catalog"
	"github.com/litescript/skyq/internal/ephem"
	"github.com/litescript/skyq/internal/instant"
	"github.com/litescript/skyq/internal/skyerr"
	"github.com/litescript/skyq/internal/value"
)

// Context is everything one evaluation needs besides the property.
type Context struct {
	Object   catalog.Object
	At       instant.Instant
	Location *angle.GeoCoord
}

// Evaluator computes property values through an ephemeris provider.
type Evaluator struct {
	Provider ephem.Provider
}

// Evaluate computes s for ctx. Provider failures are wrapped as evaluation
// errors; unsupported combinations that slipped past Check become
// requirement errors.
func (e Evaluator) Evaluate(s Spec, ctx Context) (value.Value, error) {
	if err := Check(s, ctx.Object, ctx.Location != nil); err != nil {
		return nil, err
	}
	v, err := e.evaluate(s, ctx)
	if err != nil {
		if errors.Is(err, skyerr.ErrUnsupported) {
			return nil, skyerr.Unsupported(s.Kind.String(), ctx.Object.Name)
		}
		return nil, skyerr.Evaluation(s.Kind.String(), ctx.Object.Name, err)
	}
	return v, nil
}

func (e Evaluator) evaluate(s Spec, ctx Context) (value.Value, error) {
	p, b, t := e.Provider, ctx.Object.Body, ctx.At
	switch s.Kind {
	case Equatorial:
		eq, err := p.Equatorial(b, t)
		return value.Equatorial(eq), err
	case Horizontal:
		h, err := p.Horizontal(b, t, *ctx.Location)
		return value.Horizontal(h), err
	case Ecliptic:
		ecl, err := p.Ecliptic(b, t)
		return value.Ecliptic(ecl), err
	case Distance:
		d, err := p.Distance(b, t)
		return value.Distance(d), err
	case Magnitude:
		m, err := p.Magnitude(b, t)
		return value.Magnitude(m), err
	case AngDia:
		a, err := p.AngularDiameter(b, t)
		return value.Angle(a), err
	case Phase, PhaseEmoji, PhaseName, IllumFrac:
		ph, err := p.Phase(b, t)
		if err != nil {
			return nil, err
		}
		// Without a location the northern glyphs are used.
		north := ctx.Location == nil || ctx.Location.North()
		switch s.Kind {
		case PhaseEmoji:
			return value.Text(ph.Emoji(north)), nil
		case PhaseName:
			return value.Text(ph.Name()), nil
		case IllumFrac:
			return value.Illumination(ph.Fraction), nil
		}
		return value.Phase{Phase: ph, North: north}, nil
	case Rise:
		at, err := p.Rise(b, t, *ctx.Location)
		return value.Time(at), err
	case Set:
		at, err := p.Set(b, t, *ctx.Location)
		return value.Time(at), err
	case AngBetween:
		a, err := p.Separation(b, s.Secondary.Body, t)
		return value.Angle(a), err
	}
	return nil, errors.New("unknown property kind")
}
