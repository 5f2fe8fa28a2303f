package adapter

import (
	"fmt"
	"io"
)

// Demo drops a round peg and then an adapted square peg into the same hole.
// The hole's Fits call is identical in both lines; only the adapter knows a
// square was involved.
func Demo(w io.Writer) error {
	hole := NewRoundHole(5)

	peg := NewRoundPeg(5)
	fmt.Fprintln(w, "does peg fit:", hole.Fits(peg))

	square := NewSquarePeg(5)
	fmt.Fprintln(w, "does peg fit:", hole.Fits(NewSquarePegAdapter(square)))
	return nil
}
