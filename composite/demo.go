package composite

import "io"

// Demo groups a circle and a rectangle, then moves and draws the group.
// Both calls land on the CompoundShape; the leaves are never addressed
// directly.
func Demo(w io.Writer) error {
	group := NewCompoundShape(w, NewCircle(w), NewRectangle(w))
	group.Move(10, 20)
	group.Draw()
	return nil
}
