package main

import (
	"fmt"
	"io"
	"os"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/logging"
	"bookshelf/internal/seed"
	"bookshelf/internal/shell"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// lineSource is a shell.LineReader that owns a resource.
type lineSource interface {
	shell.LineReader
	Close()
}

// openFunc opens the input once configuration and logging are ready.
type openFunc func(cfg config.Config, log *zap.Logger) lineSource

func main() {
	config.LoadEnvFiles()

	open := func(cfg config.Config, log *zap.Logger) lineSource {
		return openTerminal(cfg.HistoryFile, log)
	}
	if err := newApp(catalog.New(), open, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "shelf: %v\n", err)
		os.Exit(1)
	}
}

func newApp(lib *catalog.Catalog, open openFunc, out io.Writer) *cli.App {
	return &cli.App{
		Name:   "shelf",
		Usage:  "keep a small in-memory book catalog",
		Flags:  config.Flags(),
		Writer: out,
		Action: func(c *cli.Context) error {
			return run(c, lib, open, out)
		},
	}
}

func run(c *cli.Context, lib *catalog.Catalog, open openFunc, out io.Writer) error {
	cfg, err := config.FromCLI(c)
	if err != nil {
		return err
	}

	log, err := logging.New("shelf", cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.SeedFile != "" {
		if _, err := seed.LoadFile(cfg.SeedFile, lib, log); err != nil {
			return err
		}
	}

	in := open(cfg, log)
	defer in.Close()

	if err := shell.New(lib, in, out, log, shell.WithPrompt(cfg.Prompt)).Run(); err != nil {
		log.Error("shell stopped", zap.Error(err))
		return err
	}
	return nil
}
