package iterator

import (
	"fmt"
	"io"
)

// Demo walks a shelf of books and a rack of magazines with the same loop.
// The first collection is a slice, the second a set; the loop cannot tell.
func Demo(w io.Writer) error {
	books := NewBookCollection()
	books.Add(NewBook("Design Patterns"))
	books.Add(NewBook("Clean Code"))
	books.Add(NewBook("Refactoring"))

	fmt.Fprintln(w, "Books:")
	it := books.Iterator()
	for it.HasNext() {
		book, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, book.Title())
	}

	magazines := NewMagazineCollection()
	magazines.Add(NewMagazine("Tech Today"))
	magazines.Add(NewMagazine("Software Weekly"))
	magazines.Add(NewMagazine("Coding Digest"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Magazines:")
	mt := magazines.Iterator()
	for mt.HasNext() {
		magazine, err := mt.Next()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, magazine.Name())
	}
	return nil
}
