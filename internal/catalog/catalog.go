// Package catalog resolves user-supplied object names to bodies.
package catalog

import (
	"strings"

	"github.com/litescript/skyq/internal/astro"
	"github.com/litescript/skyq/internal/parse"
	"github.com/litescript/skyq/internal/skyerr"
	"github.com/litescript/skyq/internal/suggest"
)

// MaxSuggestions caps the near matches attached to a resolution error.
const MaxSuggestions = 5

// LatLongPrefix introduces a synthetic fixed-point object.
const LatLongPrefix = "latlong:"

// Object is a resolved catalog entry.
type Object struct {
	Name string
	Body astro.Body
}

// Catalog is an immutable set of named objects.
type Catalog struct {
	objects []Object
	index   map[string]int
}

// New builds a catalog from bodies in display order. Later bodies with a
// name already present are ignored.
func New(bodies ...astro.Body) *Catalog {
	c := &Catalog{index: make(map[string]int, len(bodies))}
	for _, b := range bodies {
		key := Normalize(b.Name)
		if _, dup := c.index[key]; dup {
			continue
		}
		c.index[key] = len(c.objects)
		c.objects = append(c.objects, Object{Name: b.Name, Body: b})
	}
	return c
}

// Default returns the Sun, the Moon, the planets and the bright stars.
func Default() *Catalog {
	bodies := []astro.Body{astro.Sun, astro.Moon}
	for _, p := range astro.Planets() {
		bodies = append(bodies, astro.PlanetBody(p))
	}
	bodies = append(bodies, astro.Stars()...)
	return New(bodies...)
}

// Normalize folds case and drops spaces, underscores and hyphens.
func Normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// Resolve finds the object called name. "latlong:<lat>,<long>" builds a
// fixed point without consulting the catalog.
func (c *Catalog) Resolve(name string) (Object, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) >= len(LatLongPrefix) && strings.EqualFold(trimmed[:len(LatLongPrefix)], LatLongPrefix) {
		return fixedPoint(trimmed[len(LatLongPrefix):])
	}
	if i, ok := c.index[Normalize(name)]; ok {
		return c.objects[i], nil
	}
	return Object{}, skyerr.Resolution("object", name, suggest.Rank(Normalize(name), c.Names(), MaxSuggestions))
}

func fixedPoint(coords string) (Object, error) {
	g, err := parse.LatLong(coords)
	if err != nil {
		return Object{}, err
	}
	if g == nil {
		return Object{}, skyerr.Parse("location", coords, "latlong: needs lat,long")
	}
	b := astro.FixedPoint(*g)
	return Object{Name: b.Name, Body: b}, nil
}

// Names lists canonical names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.objects))
	for i, o := range c.objects {
		names[i] = o.Name
	}
	return names
}

// Objects returns a copy of the catalog entries.
func (c *Catalog) Objects() []Object {
	out := make([]Object, len(c.objects))
	copy(out, c.objects)
	return out
}

// Len returns the number of named objects.
func (c *Catalog) Len() int { return len(c.objects) }
