package catalog

import (
	"regexp"
	"sort"

	"github.com/promptcomb/promptcomb/odometer"
)

// refPattern matches one __name__ reference. The inner class is lazy so
// consecutive references never fuse across their delimiters.
var refPattern = regexp.MustCompile(`__([A-Za-z0-9][A-Za-z0-9_-]*?)__`)

// Refs returns the distinct wildcard names referenced by tpl, sorted
// ascending. Names are reported whether or not the catalog knows them.
func Refs(tpl string) []string {
	matches := refPattern.FindAllStringSubmatch(tpl, -1)
	seen := make(map[string]bool, len(matches))
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			refs = append(refs, m[1])
		}
	}
	sort.Strings(refs)
	return refs
}

// ReplaceRefs rewrites every __name__ reference in tpl with the string
// resolve returns for it. When resolve reports false the reference is left
// verbatim, so typos and not-yet-defined wildcards stay visible in output.
func ReplaceRefs(tpl string, resolve func(name string) (string, bool)) string {
	return refPattern.ReplaceAllStringFunc(tpl, func(match string) string {
		name := refPattern.FindStringSubmatch(match)[1]
		if out, ok := resolve(name); ok {
			return out
		}
		return match
	})
}

// Dimensions derives the ordered dimension list for tpl against the
// catalog's current contents:
//
//   - When the catalog holds at least one theme, ThemeDim comes first, so
//     theme fragments are the slowest wheel of the composition odometer.
//   - Referenced wildcards follow in ascending name order. References the
//     catalog does not know, and wildcards with empty value lists, carry no
//     choices and are skipped.
//
// The order is deterministic for a given template and catalog, which is
// what keeps composition IDs stable across sessions.
func (c *Catalog) Dimensions(tpl string) odometer.Dims {
	refs := Refs(tpl)
	dims := make(odometer.Dims, 0, len(refs)+1)
	if len(c.themes) > 0 {
		dims = append(dims, odometer.Dim{ID: ThemeDim, Card: len(c.themes)})
	}
	for _, name := range refs {
		values, ok := c.wildcards[name]
		if !ok || len(values) == 0 {
			continue
		}
		dims = append(dims, odometer.Dim{ID: name, Card: len(values)})
	}
	return dims
}
