package singleton

import (
	"fmt"
	"io"
)

// Demo requests the instance twice under different names. Both lines print
// the first name: the second request arrived after construction.
func Demo(w io.Writer) error {
	product1 := GetInstance("Mobile")
	product2 := GetInstance("TV")

	fmt.Fprintln(w, "product1:", product1.Name())
	fmt.Fprintln(w, "product2:", product2.Name())
	return nil
}
