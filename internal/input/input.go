// Package input turns raw user text into catalog books. It owns the
// trimming and emptiness/year checks the catalog itself never performs.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bookshelf/internal/catalog"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrEmptyField is returned when title or author is blank.
	ErrEmptyField = errors.New("title and author cannot be empty")
	// ErrInvalidYear is returned when the year is not a non-negative integer.
	ErrInvalidYear = errors.New("invalid year")
)

var validate = validator.New()

type draft struct {
	Title  string `validate:"required"`
	Author string `validate:"required"`
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseYear parses a trimmed, non-negative decimal year.
func ParseYear(s string) (uint, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, s)
	}
	return uint(n), nil
}

// Book trims title and author, rejects blanks and returns the book.
func Book(title, author string, year uint) (catalog.Book, error) {
	d, err := newDraft(title, author)
	if err != nil {
		return catalog.Book{}, err
	}
	return d.book(year), nil
}

// ParseBook is Book with the year still as text. Blank fields are
// reported before a bad year.
func ParseBook(title, author, year string) (catalog.Book, error) {
	d, err := newDraft(title, author)
	if err != nil {
		return catalog.Book{}, err
	}
	y, err := ParseYear(year)
	if err != nil {
		return catalog.Book{}, err
	}
	return d.book(y), nil
}

func newDraft(title, author string) (draft, error) {
	d := draft{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
	}
	if err := validate.Struct(d); err != nil {
		return draft{}, ErrEmptyField
	}
	return d, nil
}

func (d draft) book(year uint) catalog.Book {
	return catalog.Book{Title: d.Title, Author: d.Author, Year: year}
}
