package shell

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"bookshelf/internal/catalog"
	"bookshelf/internal/shell/mocks"
	"bookshelf/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedReader replays lines and then reports io.EOF.
type scriptedReader struct {
	lines   []string
	prompts []string
}

func (r *scriptedReader) Prompt(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

type mockLineReader struct {
	mock.Mock
}

func (m *mockLineReader) Prompt(prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func runSession(t *testing.T, lib Library, lines ...string) (string, *scriptedReader) {
	t.Helper()
	in := &scriptedReader{lines: lines}
	var out bytes.Buffer
	err := New(lib, in, &out, zap.NewNop()).Run()
	require.NoError(t, err)
	return out.String(), in
}

func TestShell_AddThenFind(t *testing.T) {
	c := catalog.New()

	out, _ := runSession(t, c,
		"2", "  Der Herr der Ringe ", "J.R.R. Tolkien", " 1954",
		"4", "Der Herr der Ringe",
		"5",
	)

	assert.Contains(t, out, "Enter the book details:\n")
	assert.Contains(t, out, "Book added successfully!\n")
	assert.Contains(t, out, "Der Herr der Ringe von J.R.R. Tolkien (1954)\n")
	assert.True(t, strings.HasSuffix(out, "Quitting...\n"))
	assert.Equal(t, []catalog.Book{testutil.TestBook}, c.Books())
}

func TestShell_ListByAuthor(t *testing.T) {
	c := testutil.NewCatalog(testutil.TolkienBooks[0], testutil.OtherBook, testutil.TolkienBooks[1])

	out, _ := runSession(t, c, "1", " J.R.R. Tolkien\n", "1", "Nobody", "quit")

	assert.Contains(t, out, "All books:\nDer Hobbit von J.R.R. Tolkien (1937)\nDer Herr der Ringe von J.R.R. Tolkien (1954)\n")
	assert.NotContains(t, out, "Programming Rust")
	assert.Contains(t, out, `No books found for author "Nobody".`)
}

func TestShell_Remove(t *testing.T) {
	c := testutil.NewCatalog(testutil.TolkienBooks...)

	out, _ := runSession(t, c, "3", "Der Hobbit", "3", "Der Hobbit", "4", "Der Hobbit", "5")

	assert.Contains(t, out, "Book removed successfully!\n")
	assert.Contains(t, out, "Buch mit dem Titel 'Der Hobbit' nicht gefunden.\n")
	assert.Contains(t, out, `No book titled "Der Hobbit".`)
	assert.Equal(t, []catalog.Book{testutil.TestBook}, c.Books())
}

func TestShell_RemoveFromEmptyCatalog(t *testing.T) {
	out, _ := runSession(t, catalog.New(), "3", "Anything", "5")
	assert.Contains(t, out, "Buch mit dem Titel 'Anything' nicht gefunden.\n")
	assert.NotContains(t, out, "Error:")
}

func TestShell_AddRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "non numeric year",
			lines: []string{"2", "Title", "Author", "abc"},
			want:  `Invalid year "abc". Please enter a non-negative number.`,
		},
		{
			name:  "negative year",
			lines: []string{"2", "Title", "Author", "-5"},
			want:  `Invalid year "-5". Please enter a non-negative number.`,
		},
		{
			name:  "empty title",
			lines: []string{"2", "   ", "Author", "2000"},
			want:  "Title and author cannot be empty!",
		},
		{
			name:  "empty author",
			lines: []string{"2", "Title", "", "2000"},
			want:  "Title and author cannot be empty!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := catalog.New()

			out, _ := runSession(t, c, append(tt.lines, "5")...)

			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "Book added successfully!")
			assert.Equal(t, 0, c.Len())
			// The menu is shown again after the error.
			assert.Equal(t, 2, strings.Count(out, "What action would you like to perform?"))
		})
	}
}

func TestShell_InvalidChoice(t *testing.T) {
	out, _ := runSession(t, catalog.New(), "9", "", "add", "5")
	assert.Equal(t, 3, strings.Count(out, "Invalid choice. Please try again.\n"))
}

func TestShell_QuitWords(t *testing.T) {
	for _, word := range []string{"5", " 5 ", "q", "QUIT", "exit"} {
		t.Run(word, func(t *testing.T) {
			out, in := runSession(t, catalog.New(), word, "1")
			assert.True(t, strings.HasSuffix(out, "Quitting...\n"))
			assert.Equal(t, []string{"1"}, in.lines)
		})
	}
}

func TestShell_EndOfInput(t *testing.T) {
	t.Run("at menu", func(t *testing.T) {
		out, _ := runSession(t, catalog.New())
		assert.Equal(t, menu+"Quitting...\n", out)
	})

	t.Run("while adding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lib := mocks.NewMockLibrary(ctrl)

		out, _ := runSession(t, lib, "2", "Title")
		assert.True(t, strings.HasSuffix(out, "Quitting...\n"))
	})
}

func TestShell_Prompts(t *testing.T) {
	in := &scriptedReader{lines: []string{"2", "T", "A", "1", "5"}}
	var out bytes.Buffer

	err := New(catalog.New(), in, &out, nil, WithPrompt("shelf> ")).Run()

	require.NoError(t, err)
	assert.Equal(t, []string{"shelf> ", "Title: ", "Author: ", "Year: ", "shelf> "}, in.prompts)
}

func TestShell_PassesTrimmedInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lib := mocks.NewMockLibrary(ctrl)

	gomock.InOrder(
		lib.EXPECT().FindByAuthor("J.R.R. Tolkien").Return([]catalog.Book{}),
		lib.EXPECT().Remove("Der Hobbit").Return(nil),
		lib.EXPECT().FindByTitle("Der Hobbit").Return(catalog.Book{}, false),
		lib.EXPECT().Insert(catalog.Book{Title: "Der Hobbit", Author: "J.R.R. Tolkien", Year: 1937}),
	)

	runSession(t, lib,
		"1", "  J.R.R. Tolkien  ",
		"3", "\tDer Hobbit\n",
		"4", " Der Hobbit",
		"2", " Der Hobbit ", " J.R.R. Tolkien", "1937 ",
		"5",
	)
}

func TestShell_RemoveReportsLibraryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lib := mocks.NewMockLibrary(ctrl)
	lib.EXPECT().Remove("X").Return(errors.New("locked"))

	out, _ := runSession(t, lib, "3", "X", "5")

	assert.Contains(t, out, "Error: locked\n")
}

func TestShell_ReadErrors(t *testing.T) {
	t.Run("end of input quits", func(t *testing.T) {
		in := new(mockLineReader)
		in.On("Prompt", "> ").Return("", io.EOF)
		var out bytes.Buffer

		err := New(catalog.New(), in, &out, nil).Run()

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "Quitting...\n"))
		in.AssertExpectations(t)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		boom := errors.New("terminal gone")
		in := new(mockLineReader)
		in.On("Prompt", "> ").Return("1", nil).Once()
		in.On("Prompt", "Author: ").Return("", boom).Once()
		var out bytes.Buffer

		err := New(catalog.New(), in, &out, nil).Run()

		assert.ErrorIs(t, err, boom)
		assert.NotContains(t, out.String(), "Quitting...")
		in.AssertExpectations(t)
	})
}
