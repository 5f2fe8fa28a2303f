package decorator

// Coffee is the component interface shared by the base drink and every
// add-on wrapper, so a fully dressed order is still just a Coffee.
type Coffee interface {
	// Description lists the base drink and every add-on, in wrapping order.
	Description() string
	// Cost totals the base price plus every add-on increment.
	Cost() float64
}

type baseCoffee struct{}

func (baseCoffee) Description() string { return "Base coffee" }
func (baseCoffee) Cost() float64       { return 1.0 }

// NewBaseCoffee returns the innermost component: a plain $1.00 coffee.
func NewBaseCoffee() Coffee { return baseCoffee{} }

type sugarDecorator struct {
	inner Coffee
}

func (d sugarDecorator) Description() string { return d.inner.Description() + ", sugar" }
func (d sugarDecorator) Cost() float64       { return d.inner.Cost() + 1.0 }

// WithSugar wraps a coffee with a sugar add-on: +$1.00 and a ", sugar"
// suffix.
func WithSugar(c Coffee) Coffee { return sugarDecorator{inner: c} }

type milkDecorator struct {
	inner Coffee
}

func (d milkDecorator) Description() string { return d.inner.Description() + ", milk" }
func (d milkDecorator) Cost() float64       { return d.inner.Cost() + 1.0 }

// WithMilk wraps a coffee with a milk add-on: +$1.00 and a ", milk" suffix.
func WithMilk(c Coffee) Coffee { return milkDecorator{inner: c} }

type whippedCreamDecorator struct {
	inner Coffee
}

func (d whippedCreamDecorator) Description() string {
	return d.inner.Description() + ", whipped cream"
}
func (d whippedCreamDecorator) Cost() float64 { return d.inner.Cost() + 1.5 }

// WithWhippedCream wraps a coffee with a whipped-cream add-on: +$1.50 and a
// ", whipped cream" suffix.
func WithWhippedCream(c Coffee) Coffee { return whippedCreamDecorator{inner: c} }
