package iterator

import "errors"

// ErrNoSuchElement is returned by Next once the iterator is exhausted.
var ErrNoSuchElement = errors.New("iterator: no such element")

// Iterator hands out elements one at a time. Position is private to each
// iterator: two iterators over one collection advance independently.
type Iterator[T any] interface {
	// HasNext reports whether another element remains.
	HasNext() bool
	// Next returns the next element and advances, or ErrNoSuchElement when
	// the iterator is exhausted.
	Next() (T, error)
}

// sliceIterator walks a snapshot slice. Both collections reduce their
// storage to a slice at iterator creation, so one walker serves them all.
type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

func (it *sliceIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoSuchElement
	}
	item := it.items[it.pos]
	it.pos++
	return item, nil
}
