package adapter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MSREDDY199/Design-Patterns/adapter"
)

func TestFits_RoundPegs(t *testing.T) {
	hole := adapter.NewRoundHole(5)

	assert.True(t, hole.Fits(adapter.NewRoundPeg(5)), "boundary is inclusive")
	assert.True(t, hole.Fits(adapter.NewRoundPeg(4.9)))
	assert.False(t, hole.Fits(adapter.NewRoundPeg(5.1)))
}

func TestSquarePegAdapter_Radius(t *testing.T) {
	cases := []struct {
		width float64
		want  float64
	}{
		{2, math.Sqrt2},
		{5, 5 * math.Sqrt2 / 2},
		{10, 10 * math.Sqrt2 / 2},
	}
	for _, tc := range cases {
		got := adapter.NewSquarePegAdapter(adapter.NewSquarePeg(tc.width)).Radius()
		assert.InDelta(t, tc.want, got, 1e-12, "width %v", tc.width)
	}
}

func TestFits_AdaptedSquarePegs(t *testing.T) {
	hole := adapter.NewRoundHole(5)

	// width 5 -> radius ~3.54, drops in; width 10 -> ~7.07, does not.
	small := adapter.NewSquarePegAdapter(adapter.NewSquarePeg(5))
	large := adapter.NewSquarePegAdapter(adapter.NewSquarePeg(10))

	assert.True(t, hole.Fits(small))
	assert.False(t, hole.Fits(large))

	// The wrapped peg is untouched by adaptation.
	assert.Equal(t, 5.0, adapter.NewSquarePeg(5).Width())
}
