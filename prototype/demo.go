package prototype

import (
	"fmt"
	"io"
)

// Demo fills a mixed shape list, clones the whole list through the Shape
// interface alone, then checks each pair: different objects, identical
// values. The cloning loop never mentions Circle or Rectangle.
func Demo(w io.Writer) error {
	circle := &Circle{X: 10, Y: 10, Radius: 10, Color: "Red"}
	rectangle := &Rectangle{X: 20, Y: 20, Length: 15, Breadth: 25, Color: "Blue"}

	shapes := []Shape{circle, circle.Clone(), rectangle, rectangle.Clone()}

	copies := make([]Shape, 0, len(shapes))
	for _, shape := range shapes {
		copies = append(copies, shape.Clone())
	}

	for i, shape := range shapes {
		if shape != copies[i] {
			fmt.Fprintf(w, "%d: Shapes are different objects (yay!)\n", i)
			if shape.Equal(copies[i]) {
				fmt.Fprintf(w, "%d: And they are identical (yay!)\n", i)
			} else {
				fmt.Fprintf(w, "%d: But they are not identical (booo!)\n", i)
			}
		} else {
			fmt.Fprintf(w, "%d: Shape objects are the same (booo!)\n", i)
		}
	}
	return nil
}
