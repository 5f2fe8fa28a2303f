// Package prototype demonstrates the Prototype pattern: objects that copy
// themselves, so client code clones through an interface without ever
// learning the concrete type.
//
// What
//
//   - Shape is the prototype interface: Clone for a detached field-wise
//     copy, Equal for value comparison, String for display.
//   - Circle and Rectangle implement it; each clones itself in one line.
//   - Demo clones a mixed []Shape and verifies every copy is a fresh object
//     carrying identical field values.
//
// Why
//
//	Copying an object from outside means reading every field, which breaks
//	on unexported state and couples the copier to each concrete type. When
//	all you hold is an interface value you cannot even name the type to
//	copy. Delegating the copy to the object itself removes both problems.
//
// Clone versus Equal
//
//	Clone returns a different object (pointer identity differs), Equal
//	compares field values (type included). A correct clone therefore
//	satisfies both: s.Clone() != s, and s.Clone().Equal(s).
//
// Usage
//
//	var s prototype.Shape = &prototype.Circle{X: 10, Y: 10, Radius: 10, Color: "Red"}
//	c := s.Clone()          // no type switch, no field-by-field copying
//	fmt.Println(c != s)     // true: distinct objects
//	fmt.Println(c.Equal(s)) // true: identical values
package prototype
