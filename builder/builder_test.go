package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MSREDDY199/Design-Patterns/builder"
)

// TestBuild_Snapshot pins the core guarantee: a built car is detached from
// its builder, later steps rewrite later builds only.
func TestBuild_Snapshot(t *testing.T) {
	b := builder.NewCarBuilder("Blue").Model("Lexus")

	first := b.Build()
	second := b.Sunroof(true).GPS(true).Build()

	assert.False(t, first.HasSunroof(), "earlier snapshot must not change")
	assert.False(t, first.HasGPS())
	assert.True(t, second.HasSunroof())
	assert.True(t, second.HasGPS())
	assert.Equal(t, "Lexus", first.Model())
	assert.Equal(t, "Blue", second.Color())
}

func TestCar_StringIncludesEveryField(t *testing.T) {
	car := builder.NewCarBuilder("Green").Model("Kei").GPS(true).Build()
	s := car.String()
	assert.Contains(t, s, "Model: Kei")
	assert.Contains(t, s, "Color: Green")
	assert.Contains(t, s, "Has sunroof: false")
	assert.Contains(t, s, "Has gps: true")
}

func TestDirector_Recipes(t *testing.T) {
	director := builder.NewDirector(builder.NewCarBuilder("Blue"))

	luxury := director.LuxuryCar()
	require.Equal(t, "Lexus", luxury.Model())
	assert.True(t, luxury.HasSunroof())
	assert.True(t, luxury.HasGPS())

	// Same director, same builder: the economy recipe must fully reset the
	// option steps, not inherit the luxury ones.
	economy := director.EconomyCar()
	assert.False(t, economy.HasSunroof())
	assert.False(t, economy.HasGPS())
	assert.Equal(t, luxury.Color(), economy.Color())
}

func TestSpecBuilder_StepByStep(t *testing.T) {
	spec := builder.NewSpecBuilder().
		Type(builder.SUV).
		Seats(5).
		Engine(builder.NewEngine(2.5, 12000)).
		Transmission(builder.Manual).
		TripComputer().
		Build()

	assert.Equal(t, builder.SUV, spec.Type())
	assert.Equal(t, 5, spec.Seats())
	assert.InDelta(t, 2.5, spec.Engine().Volume(), 1e-9)
	assert.InDelta(t, 12000, spec.Engine().Mileage(), 1e-9)
	assert.Equal(t, builder.Manual, spec.Transmission())
	assert.True(t, spec.HasTripComputer())
	assert.False(t, spec.HasGPSNavigator(), "unfitted part stays off")
}

func TestCannedSpecs(t *testing.T) {
	sports := builder.SportsCarSpec()
	assert.Equal(t, builder.SportsCar, sports.Type())
	assert.Equal(t, 2, sports.Seats())
	assert.True(t, sports.HasTripComputer())
	assert.True(t, sports.HasGPSNavigator())

	city := builder.CityCarSpec()
	assert.Equal(t, builder.CityCar, city.Type())
	assert.Equal(t, 4, city.Seats())
	assert.False(t, city.HasTripComputer())
	assert.False(t, city.HasGPSNavigator())
}
