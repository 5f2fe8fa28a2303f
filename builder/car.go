package builder

import "fmt"

// Car is an immutable snapshot of one configured vehicle. Only a CarBuilder
// can produce it; there is no way to mutate a Car after Build.
type Car struct {
	model   string
	color   string
	sunroof bool
	gps     bool
}

// Model returns the car's model name.
func (c Car) Model() string { return c.model }

// Color returns the car's paint color.
func (c Car) Color() string { return c.color }

// HasSunroof reports whether the sunroof option was selected.
func (c Car) HasSunroof() bool { return c.sunroof }

// HasGPS reports whether the GPS option was selected.
func (c Car) HasGPS() bool { return c.gps }

// String renders the full configuration, every field included.
func (c Car) String() string {
	return fmt.Sprintf("Model: %s Color: %s Has sunroof: %t Has gps: %t",
		c.model, c.color, c.sunroof, c.gps)
}

// CarBuilder accumulates a car configuration through chained steps.
// The zero value is unusable: start from NewCarBuilder, which takes the one
// attribute every car must have.
type CarBuilder struct {
	model   string
	color   string
	sunroof bool
	gps     bool
}

// NewCarBuilder starts a configuration in the given color. Options default
// to off and the model to empty until the corresponding step runs.
func NewCarBuilder(color string) *CarBuilder {
	return &CarBuilder{color: color}
}

// Model sets the model name.
func (b *CarBuilder) Model(model string) *CarBuilder {
	b.model = model
	return b
}

// Sunroof toggles the sunroof option.
func (b *CarBuilder) Sunroof(on bool) *CarBuilder {
	b.sunroof = on
	return b
}

// GPS toggles the GPS option.
func (b *CarBuilder) GPS(on bool) *CarBuilder {
	b.gps = on
	return b
}

// Build takes the snapshot. The returned Car is detached from the builder:
// further steps on b affect later builds only.
func (b *CarBuilder) Build() Car {
	return Car{
		model:   b.model,
		color:   b.color,
		sunroof: b.sunroof,
		gps:     b.gps,
	}
}

// Director keeps reusable construction recipes over any builder, so a
// showroom does not re-spell the same step sequence per order.
type Director struct {
	builder *CarBuilder
}

// NewDirector wires a director to the builder it will drive.
func NewDirector(b *CarBuilder) *Director {
	return &Director{builder: b}
}

// LuxuryCar runs the full-feature recipe: Lexus with sunroof and GPS.
func (d *Director) LuxuryCar() Car {
	return d.builder.Model("Lexus").Sunroof(true).GPS(true).Build()
}

// EconomyCar runs the base recipe: same model, no extras.
func (d *Director) EconomyCar() Car {
	return d.builder.Model("Lexus").Sunroof(false).GPS(false).Build()
}
