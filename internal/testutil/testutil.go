package testutil

import "bookshelf/internal/catalog"

// TestBook is the book used in most examples.
var TestBook = catalog.Book{
	Title:  "Der Herr der Ringe",
	Author: "J.R.R. Tolkien",
	Year:   1954,
}

// TolkienBooks are two books by the same author, in publication order.
var TolkienBooks = []catalog.Book{
	{Title: "Der Hobbit", Author: "J.R.R. Tolkien", Year: 1937},
	TestBook,
}

// OtherBook is by a different author than every Tolkien fixture.
var OtherBook = catalog.Book{
	Title:  "Programming Rust",
	Author: "Jim Blandy and Jason Orendorff",
	Year:   2017,
}

// NewCatalog returns a catalog holding books in the given order.
func NewCatalog(books ...catalog.Book) *catalog.Catalog {
	c := catalog.New()
	for _, b := range books {
		c.Insert(b)
	}
	return c
}
