package property

import (
	"strings"

	"github.com/litescript/skyq/internal/catalog"
	"github.com/litescript/skyq/internal/parse"
	"github.com/litescript/skyq/internal/skyerr"
	"github.com/litescript/skyq/internal/suggest"
)

// Spec is a resolved property: a Kind plus, for AngBetween, the object to
// measure against.
type Spec struct {
	Kind      Kind
	Secondary *catalog.Object
}

// Title is the column heading.
func (s Spec) Title() string {
	if s.Kind == AngBetween && s.Secondary != nil {
		return kinds[s.Kind].title + " " + s.Secondary.Name
	}
	return kinds[s.Kind].title
}

// Key is the record field name for structured output.
func (s Spec) Key() string {
	if s.Kind == AngBetween && s.Secondary != nil {
		return kinds[s.Kind].key + "_" + keyName(s.Secondary.Name)
	}
	return kinds[s.Kind].key
}

// keyName lowercases name and replaces runs of other characters with "_".
func keyName(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// Registry maps aliases to property kinds. Parameterized aliases resolve
// their object through the catalog.
type Registry struct {
	catalog *catalog.Catalog
	aliases map[string]Kind
}

// NewRegistry creates a registry resolving secondary objects through c.
func NewRegistry(c *catalog.Catalog) *Registry {
	r := &Registry{catalog: c, aliases: make(map[string]Kind)}
	for k, info := range kinds {
		for _, a := range info.aliases {
			r.aliases[a] = k
		}
	}
	return r
}

// ResolveAll splits each argument on top-level commas and resolves every
// alias in order. Duplicates are kept.
func (r *Registry) ResolveAll(args []string) ([]Spec, error) {
	var specs []Spec
	for _, arg := range args {
		for _, alias := range parse.SplitList(arg) {
			s, err := r.Resolve(alias)
			if err != nil {
				return nil, err
			}
			specs = append(specs, s)
		}
	}
	return specs, nil
}

// Resolve parses a single alias such as "mag" or "angbetween:{sirius}".
func (r *Registry) Resolve(alias string) (Spec, error) {
	name, param, hasParam := strings.Cut(strings.TrimSpace(alias), ":")
	name = strings.ToLower(strings.TrimSpace(name))

	k, ok := r.aliases[name]
	if !ok {
		return Spec{}, skyerr.Resolution("property", alias, suggest.Rank(name, r.Names(), catalog.MaxSuggestions))
	}
	needsObject := k.Requires()&NeedsSecondary != 0
	switch {
	case hasParam && !needsObject:
		return Spec{}, &skyerr.Error{Kind: skyerr.KindResolution, Subject: "property", Input: alias,
			Reason: name + " takes no parameter"}
	case !hasParam && needsObject:
		return Spec{}, &skyerr.Error{Kind: skyerr.KindResolution, Subject: "property", Input: alias,
			Reason: name + " needs an object, as in " + name + ":{sirius}"}
	case !needsObject:
		return Spec{Kind: k}, nil
	}

	param = strings.TrimSpace(param)
	param = strings.TrimPrefix(param, "{")
	param = strings.TrimSuffix(param, "}")
	if strings.TrimSpace(param) == "" {
		return Spec{}, &skyerr.Error{Kind: skyerr.KindResolution, Subject: "property", Input: alias,
			Reason: name + " needs an object, as in " + name + ":{sirius}"}
	}
	obj, err := r.catalog.Resolve(param)
	if err != nil {
		return Spec{}, err
	}
	return Spec{Kind: k, Secondary: &obj}, nil
}

// Names lists every alias, canonical aliases first in display order.
func (r *Registry) Names() []string {
	var names []string
	for _, k := range Kinds() {
		names = append(names, kinds[k].aliases...)
	}
	return names
}

// Check verifies that s can be evaluated for obj before any evaluation runs.
func Check(s Spec, obj catalog.Object, hasLocation bool) error {
	if !s.Kind.Supports(obj.Body.Kind) {
		return skyerr.Unsupported(s.Kind.String(), obj.Name)
	}
	req := s.Kind.Requires()
	if req&NeedsLocation != 0 && !hasLocation {
		return skyerr.Requirement(s.Kind.String(), obj.Name, "requires a location (-l)")
	}
	if req&NeedsSecondary != 0 && s.Secondary == nil {
		return skyerr.Requirement(s.Kind.String(), obj.Name, "requires an object to measure against")
	}
	return nil
}
