package facade

import "io"

// Demo starts movie night with the single facade call.
func Demo(w io.Writer) error {
	NewHomeTheater(w).WatchMovie()
	return nil
}
