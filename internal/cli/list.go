package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/litescript/skyq/internal/catalog"
	"github.com/litescript/skyq/internal/property"
)

// writeList prints every object and property alias.
func writeList(w io.Writer, c *catalog.Catalog) {
	fmt.Fprintln(w, "Objects:")
	for _, o := range c.Objects() {
		fmt.Fprintf(w, "  %-16s %s\n", o.Name, o.Body.Kind)
	}
	fmt.Fprintf(w, "  %-16s %s\n", catalog.LatLongPrefix+"<lat,long>", "fixed point")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Properties:")
	for _, k := range property.Kinds() {
		aliases := k.Aliases()
		name := aliases[0]
		if k.Requires()&property.NeedsSecondary != 0 {
			name += ":{object}"
		}
		line := fmt.Sprintf("  %-20s", name)
		if len(aliases) > 1 {
			line += " also " + strings.Join(aliases[1:], ", ")
		}
		if k.Requires()&property.NeedsLocation != 0 {
			line += " (needs -l)"
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
