package compose

import (
	"fmt"

	"github.com/promptcomb/promptcomb/catalog"
	"github.com/promptcomb/promptcomb/odometer"
)

// Render substitutes tpl's wildcard references with the values vec selects
// and appends the selected theme fragment, if the catalog carries themes.
//
// Substitution rules:
//
//   - A reference the catalog does not know, or whose list is empty, stays
//     verbatim in the output. Broken references should be visible, not
//     silently blanked.
//   - A dimension missing from vec renders its first value (index 0),
//     mirroring how encoding treats missing dimensions.
//   - An index outside the value list is a caller bug: ErrIndexRange.
//
// The theme fragment is appended after a ", " separator and substitutes
// references against the same vec, so themes can reuse wildcards. An empty
// fragment appends nothing.
func Render(c *catalog.Catalog, tpl string, vec odometer.Vector) (string, error) {
	if c == nil {
		return "", ErrCatalogNil
	}

	var rangeErr error
	substitute := func(name string) (string, bool) {
		n := c.Len(name)
		if n == 0 {
			return "", false
		}
		idx := vec[name]
		if idx < 0 || idx >= n {
			if rangeErr == nil {
				rangeErr = fmt.Errorf("%w: %q index %d, %d values", ErrIndexRange, name, idx, n)
			}
			return "", false
		}
		v, _ := c.Value(name, idx)
		return v, true
	}

	out := catalog.ReplaceRefs(tpl, substitute)
	if rangeErr != nil {
		return "", rangeErr
	}

	if n := c.Len(catalog.ThemeDim); n > 0 {
		idx := vec[catalog.ThemeDim]
		if idx < 0 || idx >= n {
			return "", fmt.Errorf("%w: %q index %d, %d values", ErrIndexRange, catalog.ThemeDim, idx, n)
		}
		frag, _ := c.Value(catalog.ThemeDim, idx)
		frag = catalog.ReplaceRefs(frag, substitute)
		if rangeErr != nil {
			return "", rangeErr
		}
		switch {
		case frag == "":
			// nothing to append
		case out == "":
			out = frag
		default:
			out = out + ", " + frag
		}
	}
	return out, nil
}

// At renders the composition with the given ID: the template's dimensions
// are derived from the catalog, the ID is decoded (normalizing it into
// range) and the resulting indices are rendered.
func At(c *catalog.Catalog, tpl string, id int64) (string, error) {
	if c == nil {
		return "", ErrCatalogNil
	}
	vec, err := odometer.Decode(id, c.Dimensions(tpl))
	if err != nil {
		return "", err
	}
	return Render(c, tpl, vec)
}
