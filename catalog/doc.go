// SPDX-License-Identifier: MIT
// Package: designpatterns/catalog

// Package catalog is the index of every runnable pattern demo in the
// module: sixteen classics across the three chapters, each registered
// under a stable name with its category, a one-line brief and a run
// function.
//
// What
//
//   - Demo describes one demonstration: Name, Category, Brief, Doc (the
//     package holding the full write-up) and Run.
//   - Register / MustRegister add demos; the authoritative list for this
//     module lives in demos.go, spelled out literally so the full catalogue
//     is readable in one screen. No reflection, no magic self-registration.
//   - Lookup, Names, Demos and ByCategory query the registry; Run executes
//     a demo by name against any io.Writer.
//
// Why
//
//	The pattern packages are deliberately independent of each other; the
//	catalog is the one place that knows them all, which is what a browsing
//	CLI or a test sweep needs. Pattern packages never import the catalog,
//	so the dependency arrow points one way only.
//
// Usage
//
//	_ = catalog.Run("decorator", os.Stdout)
//	for _, d := range catalog.Demos() {
//	    fmt.Printf("%-22s %-10s %s\n", d.Name, d.Category, d.Brief)
//	}
//
// Errors
//
//   - ErrUnknownDemo - Lookup/Run on a name nobody registered.
//   - ErrEmptyName, ErrNilRun, ErrBadCategory, ErrDuplicateDemo -
//     Register misuse; MustRegister panics on them at start-up instead.
package catalog
