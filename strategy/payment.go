package strategy

import (
	"errors"
	"fmt"
)

// ErrNoPaymentMethod is returned by Checkout when no strategy is selected.
var ErrNoPaymentMethod = errors.New("strategy: no payment method selected")

// PaymentMethod is one way of settling an amount. Implementations return
// the receipt line instead of printing, so the caller owns the output.
type PaymentMethod interface {
	Pay(amount int) string
}

// PaymentFunc adapts a plain function to PaymentMethod, the way
// http.HandlerFunc adapts handlers.
type PaymentFunc func(amount int) string

// Pay calls the function itself.
func (f PaymentFunc) Pay(amount int) string { return f(amount) }

// CreditCard settles by credit card.
type CreditCard struct{}

// Pay returns the credit-card receipt line.
func (CreditCard) Pay(amount int) string {
	return fmt.Sprintf("Paid %d using Credit Card.", amount)
}

// PayPal settles through PayPal.
type PayPal struct{}

// Pay returns the PayPal receipt line.
func (PayPal) Pay(amount int) string {
	return fmt.Sprintf("Paid %d using PayPal.", amount)
}

// BankTransfer settles by wire.
type BankTransfer struct{}

// Pay returns the bank-transfer receipt line.
func (BankTransfer) Pay(amount int) string {
	return fmt.Sprintf("Paid %d using Bank Transfer.", amount)
}

// Cart is the context: it delegates checkout to the selected method and
// stays ignorant of which one that is.
type Cart struct {
	method PaymentMethod
}

// NewCart returns a cart with no payment method selected.
func NewCart() *Cart { return &Cart{} }

// SetPaymentMethod selects the strategy; it may be swapped at any time.
func (c *Cart) SetPaymentMethod(m PaymentMethod) { c.method = m }

// Checkout settles the amount with the selected method and returns the
// receipt, or ErrNoPaymentMethod when nothing is selected.
func (c *Cart) Checkout(amount int) (string, error) {
	if c.method == nil {
		return "", ErrNoPaymentMethod
	}
	return c.method.Pay(amount), nil
}
