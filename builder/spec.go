package builder

import (
	"fmt"
	"strings"
)

// CarType classifies a touring-car datasheet.
type CarType string

// Built-in car types.
const (
	CityCar   CarType = "City car"
	SportsCar CarType = "Sports car"
	SUV       CarType = "SUV"
)

// Transmission names the gearbox fitted to a touring car.
type Transmission string

// Built-in transmissions.
const (
	SingleSpeed   Transmission = "single speed"
	Manual        Transmission = "manual"
	Automatic     Transmission = "automatic"
	SemiAutomatic Transmission = "semi-automatic"
)

// Engine is a component part: displacement in litres plus the mileage the
// unit already has on it.
type Engine struct {
	volume  float64
	mileage float64
}

// NewEngine returns an engine part with the given displacement and mileage.
func NewEngine(volume, mileage float64) Engine {
	return Engine{volume: volume, mileage: mileage}
}

// Volume returns the engine displacement in litres.
func (e Engine) Volume() float64 { return e.volume }

// Mileage returns the distance the engine has already run.
func (e Engine) Mileage() float64 { return e.mileage }

// String renders the part line used on the datasheet.
func (e Engine) String() string {
	return fmt.Sprintf("volume - %.1f; mileage - %.1f", e.volume, e.mileage)
}

// Spec is the manufacturer's datasheet for one configured touring car:
// the same builder idea as Car, over a wider set of component parts.
type Spec struct {
	carType      CarType
	seats        int
	engine       Engine
	transmission Transmission
	tripComputer bool
	gpsNavigator bool
}

// Type returns the datasheet's car type.
func (s Spec) Type() CarType { return s.carType }

// Seats returns the seat count.
func (s Spec) Seats() int { return s.seats }

// Engine returns the fitted engine part.
func (s Spec) Engine() Engine { return s.engine }

// Transmission returns the fitted gearbox.
func (s Spec) Transmission() Transmission { return s.transmission }

// HasTripComputer reports whether a trip computer is fitted.
func (s Spec) HasTripComputer() bool { return s.tripComputer }

// HasGPSNavigator reports whether a GPS navigator is fitted.
func (s Spec) HasGPSNavigator() bool { return s.gpsNavigator }

// String renders the multi-line datasheet.
func (s Spec) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Type of car: %s\n", s.carType)
	fmt.Fprintf(&sb, "Count of seats: %d\n", s.seats)
	fmt.Fprintf(&sb, "Engine: %s\n", s.engine)
	fmt.Fprintf(&sb, "Transmission: %s\n", s.transmission)
	fmt.Fprintf(&sb, "Trip computer: %s\n", fitted(s.tripComputer))
	fmt.Fprintf(&sb, "GPS navigator: %s", fitted(s.gpsNavigator))
	return sb.String()
}

func fitted(on bool) string {
	if on {
		return "present"
	}
	return "n/a"
}

// SpecBuilder accumulates a touring-car datasheet one part at a time.
type SpecBuilder struct {
	spec Spec
}

// NewSpecBuilder starts an empty datasheet.
func NewSpecBuilder() *SpecBuilder {
	return &SpecBuilder{}
}

// Type sets the car type.
func (b *SpecBuilder) Type(t CarType) *SpecBuilder {
	b.spec.carType = t
	return b
}

// Seats sets the seat count.
func (b *SpecBuilder) Seats(n int) *SpecBuilder {
	b.spec.seats = n
	return b
}

// Engine fits an engine part.
func (b *SpecBuilder) Engine(e Engine) *SpecBuilder {
	b.spec.engine = e
	return b
}

// Transmission fits a gearbox.
func (b *SpecBuilder) Transmission(t Transmission) *SpecBuilder {
	b.spec.transmission = t
	return b
}

// TripComputer fits a trip computer.
func (b *SpecBuilder) TripComputer() *SpecBuilder {
	b.spec.tripComputer = true
	return b
}

// GPSNavigator fits a GPS navigator.
func (b *SpecBuilder) GPSNavigator() *SpecBuilder {
	b.spec.gpsNavigator = true
	return b
}

// Build takes the datasheet snapshot, detached from the builder.
func (b *SpecBuilder) Build() Spec {
	return b.spec
}

// SportsCarSpec is a canned recipe: two seats, big engine, full electronics.
func SportsCarSpec() Spec {
	return NewSpecBuilder().
		Type(SportsCar).
		Seats(2).
		Engine(NewEngine(3.0, 0)).
		Transmission(SemiAutomatic).
		TripComputer().
		GPSNavigator().
		Build()
}

// CityCarSpec is a canned recipe: four seats, small engine, no extras.
func CityCarSpec() Spec {
	return NewSpecBuilder().
		Type(CityCar).
		Seats(4).
		Engine(NewEngine(1.2, 0)).
		Transmission(Automatic).
		Build()
}
