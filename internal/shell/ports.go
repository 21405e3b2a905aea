package shell

import "bookshelf/internal/catalog"

//go:generate mockgen -destination=mocks/mock_library.go -package=mocks bookshelf/internal/shell Library

// Library defines the catalog operations the shell drives.
type Library interface {
	Insert(b catalog.Book)
	Remove(title string) error
	FindByTitle(title string) (catalog.Book, bool)
	FindByAuthor(author string) []catalog.Book
}

// LineReader reads one line of input after showing prompt. It returns
// io.EOF when input is exhausted.
type LineReader interface {
	Prompt(prompt string) (string, error)
}
