package strategy_test

import (
	"os"

	"github.com/MSREDDY199/Design-Patterns/strategy"
)

func ExampleDemo() {
	_ = strategy.Demo(os.Stdout)

	// Output:
	// Paid 100 using Credit Card.
	// Paid 200 using PayPal.
	// Paid 300 using Bank Transfer.
}
