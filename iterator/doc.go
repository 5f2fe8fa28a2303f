// Package iterator demonstrates the Iterator pattern: sequential access to
// a collection's elements without exposing how the collection stores them.
//
// What
//
//   - Iterator[T] is the traversal interface: HasNext and Next. Each
//     iterator owns its position, so several can walk one collection at
//     once, and a walk can pause and resume.
//   - BookCollection stores books in insertion order and iterates them
//     that way.
//   - MagazineCollection stores magazines as a set (duplicate names
//     collapse) and iterates them in name order.
//   - The client loop is identical for both. That is the pattern: the
//     storage difference is invisible at the call site.
//
// Why
//
//	A list, a set and a tree each have their own natural traversal code.
//	Written at every call site, that code couples clients to the concrete
//	container and gets copy-pasted around. Behind Iterator[T] a client
//	writes one loop and the collection keeps its representation private.
//
// Iterators walk a snapshot taken at creation: elements added to the
// collection afterwards appear in later iterators, never mid-walk.
//
// Usage
//
//	it := books.Iterator()
//	for it.HasNext() {
//	    book, err := it.Next()
//	    if err != nil { ... } // ErrNoSuchElement past the end
//	    fmt.Println(book.Title())
//	}
//
// Errors
//
//   - ErrNoSuchElement - Next called on an exhausted iterator. HasNext
//     first is the normal protocol; the error replaces the classic
//     exception for callers that skip it.
package iterator
