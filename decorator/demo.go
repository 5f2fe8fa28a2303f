package decorator

import (
	"fmt"
	"io"
)

// Demo builds one order a layer at a time, pricing it after each add-on.
// Every line goes through the same two Coffee calls; the variable just
// holds a deeper stack each time.
func Demo(w io.Writer) error {
	coffee := NewBaseCoffee()
	fmt.Fprintf(w, "%s: $%.2f\n", coffee.Description(), coffee.Cost())

	coffee = WithSugar(coffee)
	fmt.Fprintf(w, "%s: $%.2f\n", coffee.Description(), coffee.Cost())

	coffee = WithMilk(coffee)
	fmt.Fprintf(w, "%s: $%.2f\n", coffee.Description(), coffee.Cost())
	return nil
}
