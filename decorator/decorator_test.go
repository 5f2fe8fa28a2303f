package decorator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MSREDDY199/Design-Patterns/decorator"
)

func TestStacking_CostAndDescription(t *testing.T) {
	cases := []struct {
		name     string
		build    func() decorator.Coffee
		wantDesc string
		wantCost float64
	}{
		{
			name:     "base",
			build:    decorator.NewBaseCoffee,
			wantDesc: "Base coffee",
			wantCost: 1.0,
		},
		{
			name:     "sugar",
			build:    func() decorator.Coffee { return decorator.WithSugar(decorator.NewBaseCoffee()) },
			wantDesc: "Base coffee, sugar",
			wantCost: 2.0,
		},
		{
			name: "sugar then milk",
			build: func() decorator.Coffee {
				return decorator.WithMilk(decorator.WithSugar(decorator.NewBaseCoffee()))
			},
			wantDesc: "Base coffee, sugar, milk",
			wantCost: 3.0,
		},
		{
			name: "double sugar",
			build: func() decorator.Coffee {
				return decorator.WithSugar(decorator.WithSugar(decorator.NewBaseCoffee()))
			},
			wantDesc: "Base coffee, sugar, sugar",
			wantCost: 3.0,
		},
		{
			name: "the works",
			build: func() decorator.Coffee {
				return decorator.WithWhippedCream(decorator.WithMilk(decorator.WithSugar(decorator.NewBaseCoffee())))
			},
			wantDesc: "Base coffee, sugar, milk, whipped cream",
			wantCost: 4.5,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			coffee := tc.build()
			assert.Equal(t, tc.wantDesc, coffee.Description())
			assert.InDelta(t, tc.wantCost, coffee.Cost(), 1e-9)
		})
	}
}

// Order shows up in the description but not in the total.
func TestStacking_OrderSensitivity(t *testing.T) {
	sugarFirst := decorator.WithMilk(decorator.WithSugar(decorator.NewBaseCoffee()))
	milkFirst := decorator.WithSugar(decorator.WithMilk(decorator.NewBaseCoffee()))

	assert.NotEqual(t, sugarFirst.Description(), milkFirst.Description())
	assert.InDelta(t, sugarFirst.Cost(), milkFirst.Cost(), 1e-9)
}

// Wrapping never mutates the wrapped order: the inner stack keeps its own
// description and cost.
func TestStacking_InnerUntouched(t *testing.T) {
	inner := decorator.WithSugar(decorator.NewBaseCoffee())
	_ = decorator.WithMilk(inner)

	assert.Equal(t, "Base coffee, sugar", inner.Description())
	assert.InDelta(t, 2.0, inner.Cost(), 1e-9)
}
