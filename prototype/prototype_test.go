package prototype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MSREDDY199/Design-Patterns/prototype"
)

func TestClone_DistinctButIdentical(t *testing.T) {
	cases := []struct {
		name  string
		shape prototype.Shape
	}{
		{"circle", &prototype.Circle{X: 10, Y: 10, Radius: 10, Color: "Red"}},
		{"rectangle", &prototype.Rectangle{X: 20, Y: 20, Length: 15, Breadth: 25, Color: "Blue"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clone := tc.shape.Clone()
			require.NotNil(t, clone)
			assert.False(t, clone == tc.shape, "clone must be a different object")
			assert.True(t, clone.Equal(tc.shape), "clone must carry identical fields")
			assert.Equal(t, tc.shape.String(), clone.String())
		})
	}
}

func TestClone_Detached(t *testing.T) {
	original := &prototype.Circle{X: 1, Y: 2, Radius: 3, Color: "Green"}
	clone := original.Clone()

	original.Radius = 99
	original.Color = "Black"

	c, ok := clone.(*prototype.Circle)
	require.True(t, ok)
	assert.Equal(t, 3, c.Radius, "mutating the original must not touch the clone")
	assert.Equal(t, "Green", c.Color)
	assert.False(t, clone.Equal(original))
}

func TestEqual_FieldAndTypeSensitive(t *testing.T) {
	a := &prototype.Rectangle{X: 1, Y: 1, Length: 2, Breadth: 3, Color: "Blue"}
	b := &prototype.Rectangle{X: 1, Y: 1, Length: 2, Breadth: 3, Color: "Blue"}
	c := &prototype.Rectangle{X: 1, Y: 1, Length: 2, Breadth: 4, Color: "Blue"}
	d := &prototype.Circle{X: 1, Y: 1, Radius: 2, Color: "Blue"}

	assert.True(t, a.Equal(b), "same fields, same type")
	assert.False(t, a.Equal(c), "one differing field")
	assert.False(t, a.Equal(d), "different concrete type")
	assert.False(t, d.Equal(a), "different concrete type, reversed")
}
