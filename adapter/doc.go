// Package adapter demonstrates the Adapter pattern: wrapping an object with
// an incompatible interface so existing client code can use it untouched.
//
// What
//
//   - RoundPeg is the target interface: anything with a Radius.
//   - RoundHole is the existing client; Fits accepts any RoundPeg.
//   - SquarePeg speaks width, not radius, so the hole cannot test it.
//   - SquarePegAdapter wraps a square peg and reports the radius of the
//     smallest circle containing the square (width × √2 ⁄ 2), which is
//     exactly what the hole needs to know.
//
// Why
//
//	The hole's Fits method predates square pegs and should not change for
//	them. The peg class might not even be ours to change. The adapter sits
//	between the two and does the unit conversion; neither side is aware of
//	it.
//
// Usage
//
//	hole := adapter.NewRoundHole(5)
//	square := adapter.NewSquarePeg(5)
//	hole.Fits(adapter.NewSquarePegAdapter(square)) // true: 5·√2/2 ≈ 3.54
//
// A width-5 square fits a radius-5 hole; a width-10 square (radius ≈ 7.07)
// does not. The boundary is inclusive: a peg of exactly the hole's radius
// fits.
package adapter
