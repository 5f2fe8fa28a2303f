package abstractfactory

import (
	"fmt"
	"io"
)

// Demo furnishes a showroom in each built-in style, one family at a time.
// Client code below never names a concrete variant: the style string is the
// only thing that changes between sections.
func Demo(w io.Writer) error {
	for _, style := range []string{StyleVictorian, StyleArtDeco, StyleModern} {
		factory, err := Factory(style)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "****%s Furniture****\n", style)
		fmt.Fprintln(w, factory.Chair().SitOn())
		fmt.Fprintln(w, factory.Sofa().LieOn())
		fmt.Fprintln(w, factory.CoffeeTable().KeepThings())
		fmt.Fprintln(w)
	}
	return nil
}

// MealDemo runs the combo-meal variation: same pattern, different kitchen.
func MealDemo(w io.Writer) error {
	for _, combo := range []string{ComboVeg, ComboNonVeg} {
		factory, err := Combo(combo)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, factory.OrderBurger().Prepare())
		fmt.Fprintln(w, factory.OrderFries().Prepare())
	}
	return nil
}
