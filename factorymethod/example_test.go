package factorymethod_test

import (
	"fmt"
	"os"

	"github.com/MSREDDY199/Design-Patterns/factorymethod"
)

// ExampleNew orders a transport by kind name only.
func ExampleNew() {
	transport, err := factorymethod.New(factorymethod.KindRoad)
	if err != nil {
		fmt.Println("no such carrier:", err)
		return
	}
	fmt.Printf("Transport cost: %d\n", transport.Cost())

	// Output:
	// Transport cost: 1000
}

func ExampleDemo() {
	_ = factorymethod.Demo(os.Stdout)

	// Output:
	// Transport cost: 1000
	// Transport cost: 10000
}

// ExampleRegister plugs a brand-new carrier into the registry.
func ExampleRegister() {
	if err := factorymethod.Register("Sea", func() factorymethod.Transport {
		return seaTransport{}
	}); err != nil {
		fmt.Println("register failed:", err)
		return
	}
	transport, _ := factorymethod.New("Sea")
	fmt.Printf("Transport cost: %d\n", transport.Cost())

	// Output:
	// Transport cost: 300
}

type seaTransport struct{}

func (seaTransport) Cost() int { return 300 }
