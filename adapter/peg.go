package adapter

import "math"

// RoundPeg is the interface the hole was built against. Anything that can
// state a radius qualifies.
type RoundPeg interface {
	Radius() float64
}

// RoundHole is the existing client code: it checks round pegs and knows
// nothing about squares.
type RoundHole struct {
	radius float64
}

// NewRoundHole returns a hole of the given radius.
func NewRoundHole(radius float64) RoundHole {
	return RoundHole{radius: radius}
}

// Radius returns the hole's radius.
func (h RoundHole) Radius() float64 { return h.radius }

// Fits reports whether the peg drops into the hole. The boundary is
// inclusive: a peg of exactly the hole's radius fits.
func (h RoundHole) Fits(peg RoundPeg) bool {
	return h.radius >= peg.Radius()
}

type roundPeg struct {
	radius float64
}

// NewRoundPeg returns a plain round peg of the given radius.
func NewRoundPeg(radius float64) RoundPeg {
	return roundPeg{radius: radius}
}

func (p roundPeg) Radius() float64 { return p.radius }

// SquarePeg is the incompatible type: it measures itself by width and has
// no notion of a radius.
type SquarePeg struct {
	width float64
}

// NewSquarePeg returns a square peg of the given side width.
func NewSquarePeg(width float64) SquarePeg {
	return SquarePeg{width: width}
}

// Width returns the peg's side width.
func (p SquarePeg) Width() float64 { return p.width }

// SquarePegAdapter presents a square peg as a RoundPeg. The peg itself is
// untouched and unaware of the adaptation.
type SquarePegAdapter struct {
	peg SquarePeg
}

// NewSquarePegAdapter wraps a square peg for use wherever a RoundPeg is
// expected.
func NewSquarePegAdapter(peg SquarePeg) SquarePegAdapter {
	return SquarePegAdapter{peg: peg}
}

// Radius translates width into round-peg terms: the radius of the smallest
// circle that contains the square, width·√2/2.
func (a SquarePegAdapter) Radius() float64 {
	return a.peg.Width() * math.Sqrt2 / 2
}
