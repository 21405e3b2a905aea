// Package seed loads an initial set of books from a YAML file such as
//
//	books:
//	  - title: Der Hobbit
//	    author: J.R.R. Tolkien
//	    year: 1937
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"bookshelf/internal/catalog"
	"bookshelf/internal/input"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type entry struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   *uint  `yaml:"year"`
}

type document struct {
	Books []entry `yaml:"books"`
}

// ErrMultipleDocuments is returned when a seed file holds more than one
// YAML document.
var ErrMultipleDocuments = errors.New("seed must be a single YAML document")

// Inserter is the part of the catalog seeding needs.
type Inserter interface {
	Insert(b catalog.Book)
}

// Decode reads and validates every entry. Nothing is returned unless all
// entries are valid.
func Decode(r io.Reader) ([]catalog.Book, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []catalog.Book{}, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := dec.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrMultipleDocuments
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	books := make([]catalog.Book, 0, len(doc.Books))
	for i, e := range doc.Books {
		var year uint
		if e.Year != nil {
			year = *e.Year
		}
		b, err := input.Book(e.Title, e.Author, year)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i+1, err)
		}
		if e.Year == nil {
			return nil, fmt.Errorf("seed entry %d: %w", i+1, input.ErrInvalidYear)
		}
		books = append(books, b)
	}
	return books, nil
}

// LoadFile decodes path and inserts its books into dst in file order.
func LoadFile(path string, dst Inserter, log *zap.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	books, err := Decode(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	for _, b := range books {
		dst.Insert(b)
	}

	log.Info("seed loaded", zap.String("path", path), zap.Int("books", len(books)))
	return len(books), nil
}
