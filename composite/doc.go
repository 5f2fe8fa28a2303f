// Package composite demonstrates the Composite pattern: treating a single
// shape and a whole group of shapes through one interface, so client code
// moves a thousand-element drawing the same way it moves one circle.
//
// What
//
//   - Graphic is the component interface: Move and Draw.
//   - Circle and Rectangle are leaves; each reports its own operation.
//   - CompoundShape is the composite: it holds child Graphics (leaves or
//     further groups, any depth) and implements Graphic by recursing into
//     every child first, then reporting on the group itself.
//
// Why
//
//	A graphics editor that groups shapes needs "move the selection" to work
//	whether the selection is one rectangle or a tree of nested groups. If
//	client code had to distinguish the two, every operation would grow a
//	type switch. With the composite, the tree shape is invisible at the
//	call site.
//
// Output discipline
//
//	Shapes report to the io.Writer they were constructed with, children in
//	insertion order, each group's own line after its children's. That makes
//	a traversal's transcript deterministic and easy to pin in tests.
//
// Usage
//
//	group := composite.NewCompoundShape(w, composite.NewCircle(w), composite.NewRectangle(w))
//	group.Move(10, 20) // circle line, rectangle line, then the group line
package composite
