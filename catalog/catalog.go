// Package catalog stores the wildcard lists and theme fragments that back
// template dimensions, and discovers which of them a template uses.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ThemeDim is the reserved dimension ID for the theme fragment list. The
// leading '#' keeps it disjoint from wildcard names, which never start
// with one.
const ThemeDim = "#theme"

// Sentinel errors for catalog operations.
var (
	// ErrName is returned for wildcard names that cannot appear between
	// __ delimiters without ambiguity.
	ErrName = errors.New("catalog: invalid wildcard name")

	// ErrYAML wraps parse failures of a catalog document.
	ErrYAML = errors.New("catalog: malformed document")
)

// namePattern admits alphanumerics, '-' and '_', starting alphanumeric.
// A trailing '_' is rejected separately: it would fuse with the closing
// __ delimiter of a reference.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Catalog is an in-memory, single-goroutine store of wildcard value lists
// plus one ordered theme list. All accessors return copies; mutation goes
// through the Set/Delete methods only.
type Catalog struct {
	wildcards map[string][]string
	themes    []string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{wildcards: make(map[string][]string)}
}

// SetWildcard stores values (copied) under name, replacing any previous
// list. An empty list is legal and simply contributes no dimension.
func (c *Catalog) SetWildcard(name string, values []string) error {
	if !namePattern.MatchString(name) || strings.HasSuffix(name, "_") {
		return fmt.Errorf("%w: %q", ErrName, name)
	}
	if c.wildcards == nil {
		c.wildcards = make(map[string][]string)
	}
	c.wildcards[name] = append([]string(nil), values...)
	return nil
}

// DeleteWildcard removes name from the catalog. Unknown names are a no-op.
func (c *Catalog) DeleteWildcard(name string) {
	delete(c.wildcards, name)
}

// SetThemes replaces the theme fragment list (copied). Order matters: it is
// the dimension's index order.
func (c *Catalog) SetThemes(themes []string) {
	c.themes = append([]string(nil), themes...)
}

// Values returns a copy of the value list stored under name, in index
// order. The theme list is addressed by ThemeDim.
func (c *Catalog) Values(name string) ([]string, bool) {
	if name == ThemeDim {
		if len(c.themes) == 0 {
			return nil, false
		}
		return append([]string(nil), c.themes...), true
	}
	v, ok := c.wildcards[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), v...), true
}

// Themes returns a copy of the theme fragment list.
func (c *Catalog) Themes() []string {
	return append([]string(nil), c.themes...)
}

// Names returns every wildcard name in ascending order. ThemeDim is not a
// wildcard and is never listed.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.wildcards))
	for name := range c.wildcards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns how many values are stored under name, zero for unknown
// names. ThemeDim reports the theme count.
func (c *Catalog) Len(name string) int {
	if name == ThemeDim {
		return len(c.themes)
	}
	return len(c.wildcards[name])
}

// Value returns the value at idx within name's list, or false when the
// name is unknown or idx is out of range.
func (c *Catalog) Value(name string, idx int) (string, bool) {
	var list []string
	if name == ThemeDim {
		list = c.themes
	} else {
		list = c.wildcards[name]
	}
	if idx < 0 || idx >= len(list) {
		return "", false
	}
	return list[idx], true
}

// IndexOfValue reports the index of value within dim's current list, or
// false when either the dimension or the value is unknown. Duplicate values
// resolve to the first occurrence.
//
// This satisfies the resolver contract of the preview package, so pinned
// values survive list edits by re-resolving here on every step.
func (c *Catalog) IndexOfValue(dim, value string) (int, bool) {
	var list []string
	if dim == ThemeDim {
		list = c.themes
	} else {
		list = c.wildcards[dim]
	}
	for i, v := range list {
		if v == value {
			return i, true
		}
	}
	return 0, false
}
