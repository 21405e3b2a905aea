// Package shell implements the menu-driven command loop on top of a
// Library. Every user mistake is reported and the loop carries on; Run
// only returns an error when reading input fails.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"bookshelf/internal/catalog"
	"bookshelf/internal/input"

	"go.uber.org/zap"
)

const menu = `What action would you like to perform?
1. List books by author
2. Add a book
3. Remove a book
4. Find a book by title
5. Quit
`

// Shell reads menu choices from a LineReader and applies them to a Library.
type Shell struct {
	lib    Library
	in     LineReader
	out    io.Writer
	log    *zap.Logger
	prompt string
}

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt sets the prompt shown when asking for a menu choice.
func WithPrompt(p string) Option {
	return func(s *Shell) {
		s.prompt = p
	}
}

// New returns a shell prompting with "> " unless WithPrompt says otherwise.
// A nil log discards log output.
func New(lib Library, in LineReader, out io.Writer, log *zap.Logger, opts ...Option) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Shell{
		lib:    lib,
		in:     in,
		out:    out,
		log:    log,
		prompt: "> ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu and dispatches choices until the user quits or
// input ends.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)

		line, err := s.in.Prompt(s.prompt)
		if err != nil {
			return s.stop(err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "1":
			err = s.listByAuthor()
		case "2":
			err = s.addBook()
		case "3":
			err = s.removeBook()
		case "4":
			err = s.findByTitle()
		case "5", "q", "quit", "exit":
			fmt.Fprintln(s.out, "Quitting...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out, "Quitting...")
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

func (s *Shell) listByAuthor() error {
	author, err := s.in.Prompt("Author: ")
	if err != nil {
		return err
	}
	author = strings.TrimSpace(author)

	books := s.lib.FindByAuthor(author)
	if len(books) == 0 {
		fmt.Fprintf(s.out, "No books found for author %q.\n", author)
		return nil
	}
	fmt.Fprintln(s.out, "All books:")
	for _, b := range books {
		fmt.Fprintln(s.out, b.Summary())
	}
	return nil
}

func (s *Shell) addBook() error {
	fmt.Fprintln(s.out, "Enter the book details:")

	var fields [3]string
	for i, p := range []string{"Title: ", "Author: ", "Year: "} {
		v, err := s.in.Prompt(p)
		if err != nil {
			return err
		}
		fields[i] = v
	}

	b, err := input.ParseBook(fields[0], fields[1], fields[2])
	switch {
	case errors.Is(err, input.ErrEmptyField):
		s.log.Info("book rejected", zap.Error(err))
		fmt.Fprintln(s.out, "Title and author cannot be empty!")
		return nil
	case errors.Is(err, input.ErrInvalidYear):
		s.log.Info("book rejected", zap.Error(err))
		fmt.Fprintf(s.out, "Invalid year %q. Please enter a non-negative number.\n", strings.TrimSpace(fields[2]))
		return nil
	}

	s.lib.Insert(b)
	s.log.Debug("book.added", zap.String("title", b.Title), zap.String("author", b.Author), zap.Uint("year", b.Year))
	fmt.Fprintln(s.out, "Book added successfully!")
	return nil
}

func (s *Shell) removeBook() error {
	title, err := s.in.Prompt("Title of the book to remove: ")
	if err != nil {
		return err
	}
	title = strings.TrimSpace(title)

	if err := s.lib.Remove(title); err != nil {
		var nf *catalog.NotFoundError
		if errors.As(err, &nf) {
			s.log.Info("remove: no such book", zap.String("title", nf.Title))
			fmt.Fprintln(s.out, err)
			return nil
		}
		s.log.Warn("remove failed", zap.String("title", title), zap.Error(err))
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}

	s.log.Debug("book.removed", zap.String("title", title))
	fmt.Fprintln(s.out, "Book removed successfully!")
	return nil
}

func (s *Shell) findByTitle() error {
	title, err := s.in.Prompt("Title: ")
	if err != nil {
		return err
	}
	title = strings.TrimSpace(title)

	b, ok := s.lib.FindByTitle(title)
	if !ok {
		fmt.Fprintf(s.out, "No book titled %q.\n", title)
		return nil
	}
	fmt.Fprintln(s.out, b.Summary())
	return nil
}
