package strategy

import (
	"fmt"
	"io"
)

// Demo checks the same cart out three times, swapping the payment method
// between purchases. The checkout line never changes; only the strategy
// plugged into it does.
func Demo(w io.Writer) error {
	cart := NewCart()

	purchases := []struct {
		method PaymentMethod
		amount int
	}{
		{CreditCard{}, 100},
		{PayPal{}, 200},
		{BankTransfer{}, 300},
	}
	for _, p := range purchases {
		cart.SetPaymentMethod(p.method)
		receipt, err := cart.Checkout(p.amount)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, receipt)
	}
	return nil
}
