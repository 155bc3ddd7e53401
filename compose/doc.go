// Package compose turns (template, catalog, composition ID) triples into
// rendered text.
//
// What it does
//
//   - Render: substitute a template's __name__ references with the values
//     an index vector selects, then append the selected theme fragment.
//   - At: render the composition a single ID denotes.
//   - Walk: visit a range of the composition space in ID order, with
//     offset, limit and context cancellation.
//   - Sample: draw random compositions reproducibly.
//
// Unknown references
//
// A reference without a backing value list renders verbatim. The surface
// that shows the output is the place a typo should be visible.
//
// Determinism
//
// Walk order is the odometer's ID order. Sample uses an injected
// *rand.Rand or a seed-derived generator; seed 0 selects a fixed default
// stream. Identical inputs produce identical output everywhere.
//
// Errors
//
//   - ErrCatalogNil, ErrCallbackNil: missing collaborators.
//   - ErrIndexRange: an index vector that does not fit the catalog.
//   - ErrSampleSize: negative sample count.
//   - ErrOptionViolation: invalid functional option.
//   - ErrStopWalk: returned BY a callback to end a walk early; Walk
//     itself then returns nil.
//
// Match with errors.Is.
//
// Usage
//
//	text, err := compose.At(cat, "a __tone__ study, __size__", 5)
//	if err != nil { ... }
//
//	err = compose.Walk(cat, tpl, func(id int64, text string) error {
//		fmt.Println(id, text)
//		return nil
//	}, compose.WithLimit(10))
package compose
