// Package promptcomb is your in-memory engine for indexing, navigating,
// and rendering every combination of a wildcard prompt template.
//
// 🚀 What is promptcomb?
//
//	A small, deterministic library that brings together:
//		• Odometer indexing: one int64 ID per combination, decode & encode both ways
//		• Catalogs: named wildcard lists + theme fragments, YAML in, values out
//		• Preview sessions: bucket windows, pinned dimensions, next/prev/shuffle
//		• Composition: render any ID to text, walk or sample the whole space
//
// ✨ Why choose promptcomb?
//
//   - Deterministic everywhere – same inputs, same IDs, same text, any platform
//   - Pins hold values, not slots – edit your lists, pins re-resolve by content
//   - Sentinel errors – every failure matchable with errors.Is
//   - Single-goroutine by contract – no locks to reason about, share State instead
//
// Under the hood, everything is organized under four subpackages:
//
//	odometer/ — mixed-radix ID ↔ index-vector math over ordered dimensions
//	catalog/  — wildcard & theme storage, __name__ discovery, YAML parsing
//	preview/  — windows, pins, navigation steps & shareable session state
//	compose/  — rendering, ordered walks & reproducible random samples
//
// Quick taste:
//
//	cat, _ := catalog.ParseYAML(doc)
//	dims := cat.Dimensions(tpl)
//	sess := preview.NewSession(8)
//	id, _ := sess.Advance(preview.Next, dims, cat)
//	text, _ := compose.At(cat, tpl, id)
//
// Dive into each package's doc.go for the full contracts, determinism notes
// and error taxonomies.
//
//	go get github.com/promptcomb/promptcomb
package promptcomb
