package composite

import (
	"fmt"
	"io"
)

// Graphic is the component interface: one shape or a whole group, the
// client cannot tell and does not care.
type Graphic interface {
	// Move relocates the graphic to (x, y), reporting the move.
	Move(x, y int)
	// Draw renders the graphic, reporting the drawing.
	Draw()
}

// Circle is a leaf graphic.
type Circle struct {
	w io.Writer
}

// NewCircle returns a circle reporting to w.
func NewCircle(w io.Writer) *Circle { return &Circle{w: w} }

// Move reports the circle's relocation.
func (c *Circle) Move(x, y int) {
	fmt.Fprintf(c.w, "Moving circle to (%d, %d)\n", x, y)
}

// Draw reports the circle's rendering.
func (c *Circle) Draw() {
	fmt.Fprintln(c.w, "Drawing a circle")
}

// Rectangle is a leaf graphic.
type Rectangle struct {
	w io.Writer
}

// NewRectangle returns a rectangle reporting to w.
func NewRectangle(w io.Writer) *Rectangle { return &Rectangle{w: w} }

// Move reports the rectangle's relocation.
func (r *Rectangle) Move(x, y int) {
	fmt.Fprintf(r.w, "Moving rectangle to (%d, %d)\n", x, y)
}

// Draw reports the rectangle's rendering.
func (r *Rectangle) Draw() {
	fmt.Fprintln(r.w, "Drawing a rectangle")
}

// CompoundShape is the composite: a Graphic made of other Graphics, nested
// groups included. Operations visit children in insertion order before
// reporting on the group itself.
type CompoundShape struct {
	w        io.Writer
	children []Graphic
}

// NewCompoundShape returns a group reporting to w, pre-filled with the
// given children.
func NewCompoundShape(w io.Writer, children ...Graphic) *CompoundShape {
	return &CompoundShape{w: w, children: children}
}

// Add appends children to the group.
func (s *CompoundShape) Add(children ...Graphic) {
	s.children = append(s.children, children...)
}

// Remove drops the first child equal to g, reporting whether one was found.
func (s *CompoundShape) Remove(g Graphic) bool {
	for i, child := range s.children {
		if child == g {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of direct children.
func (s *CompoundShape) Len() int { return len(s.children) }

// Move relocates every child, then the group.
func (s *CompoundShape) Move(x, y int) {
	for _, child := range s.children {
		child.Move(x, y)
	}
	fmt.Fprintf(s.w, "Moving compound shape to (%d, %d)\n", x, y)
}

// Draw renders every child, then the group.
func (s *CompoundShape) Draw() {
	for _, child := range s.children {
		child.Draw()
	}
	fmt.Fprintln(s.w, "Drawing a compound shape")
}
