// Package factorymethod demonstrates the Factory Method pattern:
// clients order products by kind and let registered constructors decide
// which concrete type gets built.
//
// What
//
//   - Transport is the product interface: anything with a delivery Cost.
//   - Road and air transports ship built in (1000 and 10000 respectively).
//   - Register binds a kind name to a constructor; New looks the kind up
//     and invokes it. Client code never names a concrete transport.
//
// Why
//
//	A transport company that only ever shipped by road has road costs wired
//	through its code. Introducing planes (and tomorrow, ships) should not
//	mean rewriting clients: they ask for a kind by name, the registry picks
//	the constructor. Adding a kind is one Register call (Open/Closed).
//
// The classic form of this pattern dispatches through an overridable
// factory method on a creator hierarchy; a registry of constructor funcs is
// the flat, reflection-free way to get the same open-endedness here.
//
// Usage
//
//	transport, err := factorymethod.New(factorymethod.KindRoad)
//	if err != nil {
//	    // ErrUnknownTransport: nobody registered that kind
//	}
//	fmt.Printf("Transport cost: %d\n", transport.Cost())
//
// Errors
//
//   - ErrUnknownTransport - New on a kind nobody registered.
//   - ErrEmptyKind, ErrNilConstructor, ErrDuplicateKind - Register misuse.
package factorymethod
