// Package singleton demonstrates the Singleton pattern: one shared instance,
// constructed lazily on first request and handed to every caller thereafter.
//
// What
//
//   - Product is the shared instance; its name is fixed at construction.
//   - GetInstance returns the one Product. The name argument matters only on
//     the very first call anywhere in the process: later callers receive the
//     existing instance no matter what name they ask for (first-wins).
//
// Why
//
//	Some resources must exist exactly once per process: a database handle, a
//	configuration root, a hardware port. The singleton gives every client
//	the same object through one access point instead of a mutable global.
//
// The textbook lazy null-check is racy: two goroutines arriving at once can
// each construct an instance. Construction here is guarded by sync.Once, so
// concurrent first access still yields exactly one Product.
//
// Usage
//
//	p1 := singleton.GetInstance("Mobile")
//	p2 := singleton.GetInstance("TV") // too late, p2 is the Mobile instance
//	fmt.Println(p1 == p2)            // true
//
// Trade-offs
//
//   - Global access makes call sites short and hides the dependency, which
//     is exactly what makes singleton-heavy code hard to test.
//   - There is deliberately no reset hook: a process gets one instance, so
//     order-sensitive demos pick their name on first touch.
package singleton
