// Package strategy demonstrates the Strategy pattern: a family of
// interchangeable algorithms behind one interface, selected at runtime by
// the client rather than hard-wired into the context.
//
// What
//
//   - PaymentMethod is the strategy interface: Pay an amount, get the
//     receipt line back.
//   - CreditCard, PayPal and BankTransfer are the built-in strategies.
//   - Cart is the context. It holds whichever method the client selected
//     and delegates Checkout to it; it never inspects which one it has.
//   - PaymentFunc adapts a bare func to the interface, for strategies too
//     small to deserve a named type.
//
// Why
//
//	A checkout with payment logic inlined grows a conditional per provider,
//	and every new provider edits the same method everyone else is editing.
//	As strategies, each provider is its own type, the cart stays closed,
//	and swapping providers is one SetPaymentMethod call away.
//
// Checking out with no method selected returns ErrNoPaymentMethod; the
// cart refuses to guess.
//
// Usage
//
//	cart := strategy.NewCart()
//	cart.SetPaymentMethod(strategy.PayPal{})
//	receipt, err := cart.Checkout(200)
//	// "Paid 200 using PayPal.", nil
package strategy
