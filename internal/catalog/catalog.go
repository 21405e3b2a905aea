package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotFound is returned when no book matches a title.
var ErrNotFound = errors.New("book not found")

// NotFoundError carries the title that was searched for.
type NotFoundError struct {
	Title string
}

// Error uses the catalog's German display wording, matching Book.Summary.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Buch mit dem Titel '%s' nicht gefunden.", e.Title)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Book is a single catalog entry.
type Book struct {
	Title  string
	Author string
	Year   uint
}

// Summary formats the book for display, e.g. "Der Herr der Ringe von J.R.R. Tolkien (1954)".
func (b Book) Summary() string {
	return fmt.Sprintf("%s von %s (%d)", b.Title, b.Author, b.Year)
}

func (b Book) String() string {
	return b.Summary()
}

// Catalog keeps books in insertion order. Titles are not unique.
//
// A Catalog is not safe for concurrent use; callers sharing one across
// goroutines must serialise access themselves.
type Catalog struct {
	books []Book
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Insert appends b. No validation happens here.
func (c *Catalog) Insert(b Book) {
	c.books = append(c.books, b)
}

// Remove deletes the first book whose title equals title exactly.
// Later books with the same title are kept.
func (c *Catalog) Remove(title string) error {
	i := c.indexOf(title)
	if i < 0 {
		return &NotFoundError{Title: title}
	}
	c.books = slices.Delete(c.books, i, i+1)
	return nil
}

// FindByTitle returns the first book whose title equals title exactly.
func (c *Catalog) FindByTitle(title string) (Book, bool) {
	i := c.indexOf(title)
	if i < 0 {
		return Book{}, false
	}
	return c.books[i], true
}

// FindByAuthor returns every book by author in insertion order.
// The result is empty, never nil, when nothing matches.
func (c *Catalog) FindByAuthor(author string) []Book {
	out := make([]Book, 0)
	for _, b := range c.books {
		if b.Author == author {
			out = append(out, b)
		}
	}
	return out
}

// Len reports the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Books returns a copy of all books in insertion order.
func (c *Catalog) Books() []Book {
	return slices.Clone(c.books)
}

func (c *Catalog) indexOf(title string) int {
	return slices.IndexFunc(c.books, func(b Book) bool { return b.Title == title })
}
