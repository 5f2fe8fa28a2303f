// Package designpatterns is a teaching catalogue of the classic
// Gang-of-Four design patterns, each reworked as an independent,
// self-contained Go demonstration.
//
// 🚀 What is Design-Patterns?
//
//	A dependency-light playground that walks through:
//		• Creational patterns: Abstract Factory, Factory Method, Builder, Singleton, Prototype
//		• Structural patterns: Adapter, Decorator, Composite, Facade
//		• Behavioral patterns: Chain of Responsibility, Command, State, Iterator,
//		  Template Method, Observer, Strategy
//
// ✨ Why this catalogue?
//
//   - Beginner-friendly – one pattern per package, a few dozen lines each
//   - Idiomatic – interfaces + composition instead of class hierarchies,
//     sentinel errors instead of exceptions, closures instead of reflection
//   - Runnable – every pattern ships a Demo that prints the classic
//     illustrative transcript, pinned by Example tests
//   - Self-contained – no pattern package imports another; there is no
//     shared runtime and no state outlives a demo run
//
// Each pattern package follows the same shape: a doc.go with the pattern's
// motivation and trade-offs, the implementation, a Demo(w io.Writer) that
// wires the textbook scenario, and tests that pin both the API behavior and
// the printed transcript.
//
// The catalogue itself is browsable in two ways:
//
//	catalog/       - registry mapping demo names to runnable closures
//	cmd/patterns/  - CLI: `patterns list`, `patterns run <name>`, `patterns info <name>`
//
// Quick taste:
//
//	var out bytes.Buffer
//	if err := decorator.Demo(&out); err != nil { ... }
//	// Base coffee: $1.00
//	// Base coffee, sugar: $2.00
//	// Base coffee, sugar, milk: $3.00
//
// Dive into any package's doc.go for the problem it solves, when to reach
// for it, and when not to.
package designpatterns
