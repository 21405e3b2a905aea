package main

import (
	"errors"
	"io"
	"os"

	"bookshelf/internal/input"

	"github.com/peterh/liner"
	"go.uber.org/zap"
)

// terminal adapts liner to shell.LineReader and keeps non-blank lines in
// the history.
type terminal struct {
	state       *liner.State
	historyFile string
	log         *zap.Logger
}

func openTerminal(historyFile string, log *zap.Logger) *terminal {
	t := &terminal{
		state:       liner.NewLiner(),
		historyFile: historyFile,
		log:         log,
	}
	t.state.SetCtrlCAborts(true)
	loadHistory(t.state, historyFile, log)
	return t
}

// Prompt reports Ctrl-C as io.EOF so the shell ends the session.
func (t *terminal) Prompt(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if err != nil {
		return "", promptError(err)
	}
	if !input.IsBlank(line) {
		t.state.AppendHistory(line)
	}
	return line, nil
}

func (t *terminal) Close() {
	saveHistory(t.state, t.historyFile, t.log)
	if err := t.state.Close(); err != nil {
		t.log.Debug("close terminal", zap.Error(err))
	}
}

func promptError(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) {
		return io.EOF
	}
	return err
}

type historyReader interface {
	ReadHistory(r io.Reader) (int, error)
}

type historyWriter interface {
	WriteHistory(w io.Writer) (int, error)
}

// loadHistory is a no-op when path is empty or does not exist yet.
func loadHistory(h historyReader, path string, log *zap.Logger) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn("read history", zap.String("path", path), zap.Error(err))
		}
		return
	}
	defer f.Close()

	if _, err := h.ReadHistory(f); err != nil {
		log.Warn("read history", zap.String("path", path), zap.Error(err))
	}
}

func saveHistory(h historyWriter, path string, log *zap.Logger) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Warn("write history", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	if _, err := h.WriteHistory(f); err != nil {
		log.Warn("write history", zap.String("path", path), zap.Error(err))
	}
}
