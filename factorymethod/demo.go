package factorymethod

import (
	"fmt"
	"io"
)

// Demo prices a delivery by road and then by air. The client side below is
// kind names only; swapping carriers is a string change.
func Demo(w io.Writer) error {
	for _, kind := range []string{KindRoad, KindAir} {
		transport, err := New(kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Transport cost: %d\n", transport.Cost())
	}
	return nil
}
