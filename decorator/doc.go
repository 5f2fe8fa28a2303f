// Package decorator demonstrates the Decorator pattern: layering add-on
// behaviour around an object at runtime instead of subclassing every
// combination ahead of time.
//
// What
//
//   - Coffee is the component interface: a Description and a Cost.
//   - NewBaseCoffee is the innermost component ($1.00).
//   - WithSugar, WithMilk (+$1.00 each) and WithWhippedCream (+$1.50) wrap
//     any Coffee, forward the calls inward, and add their own increment and
//     description suffix on the way out.
//
// Why
//
//	A menu with N add-ons has 2^N combinations. One type per combination
//	(CoffeeWithMilk, CoffeeWithMilkAndSugar, ...) buries the shop in types
//	that each encode one fixed mix. Wrapping composes the same add-ons at
//	order time: any mix, any depth, no new types.
//
// Order matters for the description (suffixes append outward-in), not for
// the cost (addition commutes). "Base coffee, sugar, milk" and
// "Base coffee, milk, sugar" both cost $3.00.
//
// Usage
//
//	coffee := decorator.WithMilk(decorator.WithSugar(decorator.NewBaseCoffee()))
//	fmt.Printf("%s: $%.2f\n", coffee.Description(), coffee.Cost())
//	// Base coffee, sugar, milk: $3.00
package decorator
