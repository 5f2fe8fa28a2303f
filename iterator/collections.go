package iterator

import "sort"

// Book is a titled element of the ordered collection.
type Book struct {
	title string
}

// NewBook returns a book with the given title.
func NewBook(title string) Book { return Book{title: title} }

// Title returns the book's title.
func (b Book) Title() string { return b.title }

// BookCollection keeps books in insertion order and iterates them that way.
type BookCollection struct {
	books []Book
}

// NewBookCollection returns an empty shelf.
func NewBookCollection() *BookCollection { return &BookCollection{} }

// Add appends a book; duplicates are allowed, order is preserved.
func (c *BookCollection) Add(book Book) {
	c.books = append(c.books, book)
}

// Len returns the number of books.
func (c *BookCollection) Len() int { return len(c.books) }

// Iterator returns a fresh iterator over a snapshot of the shelf, in
// insertion order.
func (c *BookCollection) Iterator() Iterator[Book] {
	snapshot := make([]Book, len(c.books))
	copy(snapshot, c.books)
	return &sliceIterator[Book]{items: snapshot}
}

// Magazine is a named element of the set-backed collection.
type Magazine struct {
	name string
}

// NewMagazine returns a magazine with the given name.
func NewMagazine(name string) Magazine { return Magazine{name: name} }

// Name returns the magazine's name.
func (m Magazine) Name() string { return m.name }

// MagazineCollection keeps magazines as a set keyed by name: adding the
// same name twice stores one copy. Iteration order is name-ascending, so a
// set-backed walk is still deterministic.
type MagazineCollection struct {
	magazines map[string]Magazine
}

// NewMagazineCollection returns an empty rack.
func NewMagazineCollection() *MagazineCollection {
	return &MagazineCollection{magazines: make(map[string]Magazine)}
}

// Add stores a magazine, collapsing duplicate names.
func (c *MagazineCollection) Add(magazine Magazine) {
	c.magazines[magazine.Name()] = magazine
}

// Len returns the number of distinct magazines.
func (c *MagazineCollection) Len() int { return len(c.magazines) }

// Iterator returns a fresh iterator over a snapshot of the rack, in name
// order.
func (c *MagazineCollection) Iterator() Iterator[Magazine] {
	snapshot := make([]Magazine, 0, len(c.magazines))
	for _, m := range c.magazines {
		snapshot = append(snapshot, m)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].Name() < snapshot[j].Name()
	})
	return &sliceIterator[Magazine]{items: snapshot}
}
