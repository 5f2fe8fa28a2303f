// Package builder demonstrates the Builder pattern: constructing a complex
// object step by step, with a director keeping the reusable recipes.
//
// What
//
//   - Car is the product: an immutable snapshot of model, color, sunroof
//     and GPS. Once built, a Car never changes.
//   - CarBuilder accumulates those fields through chained setters over the
//     one required attribute (the color); Build takes the snapshot.
//   - Director stores canned construction routines (LuxuryCar, EconomyCar)
//     so common recipes are written once and reused.
//   - Spec and SpecBuilder replay the pattern over a wider part set: a
//     touring-car datasheet assembled from engine, transmission, seats,
//     trip computer and GPS navigator.
//
// Why
//
//	A car with N optional features needs up to 2^N constructors, or one
//	giant constructor whose call sites read as a parade of booleans.
//	The builder replaces both with named, chainable steps; the director
//	replaces copy-pasted step sequences with shared recipes.
//
// Usage
//
//	car := builder.NewCarBuilder("Blue").
//	    Model("Lexus").
//	    Sunroof(true).
//	    GPS(true).
//	    Build()
//	fmt.Println(car) // Model: Lexus Color: Blue Has sunroof: true Has gps: true
//
// Trade-offs
//
//   - Build returns a value, so built cars are immutable by construction;
//     mutating the builder afterwards never rewrites history.
//   - One more type per product (two with a director); for a struct with a
//     single optional field, a plain constructor is still the better tool.
package builder
