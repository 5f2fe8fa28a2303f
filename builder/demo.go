package builder

import (
	"fmt"
	"io"
)

// Demo orders a luxury and an economy car in the same color through the
// director, then prints both snapshots.
func Demo(w io.Writer) error {
	director := NewDirector(NewCarBuilder("Blue"))
	fmt.Fprintln(w, "Luxury car:", director.LuxuryCar())
	fmt.Fprintln(w, "Economy car:", director.EconomyCar())
	return nil
}

// SpecDemo prints the sports-car datasheet built by the canned recipe.
func SpecDemo(w io.Writer) error {
	fmt.Fprintln(w, SportsCarSpec())
	return nil
}
