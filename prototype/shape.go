package prototype

import "fmt"

// Shape is the prototype interface. Implementations are pointer-backed so
// that interface identity (==) distinguishes an original from its clone
// while Equal compares the underlying field values.
type Shape interface {
	// Clone returns a detached field-wise copy of the shape.
	Clone() Shape
	// Equal reports whether other has the same concrete type and the same
	// field values.
	Equal(other Shape) bool
	// String renders the shape with all of its fields.
	String() string
}

// Circle is a prototype-capable shape.
type Circle struct {
	X, Y   int
	Color  string
	Radius int
}

// Clone returns an independent copy of the circle.
func (c *Circle) Clone() Shape {
	copied := *c
	return &copied
}

// Equal reports field-wise equality with another circle.
func (c *Circle) Equal(other Shape) bool {
	o, ok := other.(*Circle)
	if !ok {
		return false
	}
	return *c == *o
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle: [radius = %d, x = %d, y = %d, color = %s]",
		c.Radius, c.X, c.Y, c.Color)
}

// Rectangle is a prototype-capable shape.
type Rectangle struct {
	X, Y    int
	Color   string
	Length  int
	Breadth int
}

// Clone returns an independent copy of the rectangle.
func (r *Rectangle) Clone() Shape {
	copied := *r
	return &copied
}

// Equal reports field-wise equality with another rectangle.
func (r *Rectangle) Equal(other Shape) bool {
	o, ok := other.(*Rectangle)
	if !ok {
		return false
	}
	return *r == *o
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle: [length = %d, breadth = %d, x = %d, y = %d, color = %s]",
		r.Length, r.Breadth, r.X, r.Y, r.Color)
}
