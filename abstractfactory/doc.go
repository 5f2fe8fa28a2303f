// Package abstractfactory demonstrates the Abstract Factory pattern:
// building families of related products without naming their concrete types.
//
// What
//
//   - Product interfaces Chair, Sofa and CoffeeTable describe what a client
//     can do with each piece of furniture.
//   - FurnitureFactory is the abstract factory: one method per product, so a
//     single factory value always yields a matching family.
//   - Three families ship out of the box: Victorian, Art Deco and Modern.
//   - A style registry maps a style name to a factory constructor, so client
//     code orders by name and never touches a concrete variant
//     (the variants are unexported on purpose).
//
// Why
//
//	Imagine a furniture shop simulator. Customers get quite mad when they
//	receive non-matching furniture, so a Victorian order must yield a
//	Victorian chair AND a Victorian sofa AND a Victorian coffee table.
//	Hard-wiring variant selection into client code means touching that code
//	every time the vendor catalog changes; the factory family guarantees
//	consistency, and the registry keeps selection open for extension.
//
// A second serving
//
//	The combo-meal half of the package (Burger, Fries, ComboMealFactory)
//	replays the same idea at a fast-food counter: a Veg combo never yields a
//	non-veg burger. See MealDemo.
//
// Usage
//
//	factory, err := abstractfactory.Factory("Victorian")
//	if err != nil {
//	    // ErrUnknownStyle: nobody registered that style
//	}
//	fmt.Println(factory.Chair().SitOn()) // "Sitting on Victorian Chair"
//
// Trade-offs
//
//   - Product family consistency is guaranteed by construction.
//   - New families plug in via RegisterStyle without touching client code
//     (Open/Closed), at the price of one more interface and a registry.
//   - Adding a new product KIND (say, Wardrobe) still touches every family.
//
// Errors
//
//   - ErrUnknownStyle / ErrUnknownCombo - lookup of an unregistered name.
//   - ErrEmptyStyle, ErrNilConstructor, ErrDuplicateStyle - registration
//     misuse; the registry never panics.
package abstractfactory
