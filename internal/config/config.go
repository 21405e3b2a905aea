package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// Flag names, also used to read values back from a cli.Context.
const (
	FlagPrompt   = "prompt"
	FlagHistory  = "history"
	FlagSeed     = "seed"
	FlagLogLevel = "log-level"
)

// Config holds the settings for one shelf session.
type Config struct {
	Prompt      string
	HistoryFile string
	SeedFile    string
	LogLevel    string
}

// LoadEnvFiles reads .env and .env.local if present.
func LoadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Flags returns the command-line flags, each bound to a SHELF_* env var.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagPrompt,
			Value:   "> ",
			Usage:   "input prompt",
			EnvVars: []string{"SHELF_PROMPT"},
		},
		&cli.StringFlag{
			Name:    FlagHistory,
			Usage:   "file to keep line history in (empty disables it)",
			EnvVars: []string{"SHELF_HISTORY"},
		},
		&cli.StringFlag{
			Name:    FlagSeed,
			Usage:   "YAML file with books to load at start-up",
			EnvVars: []string{"SHELF_SEED"},
		},
		&cli.StringFlag{
			Name:    FlagLogLevel,
			Value:   "warn",
			Usage:   "debug, info, warn or error",
			EnvVars: []string{"SHELF_LOG_LEVEL"},
		},
	}
}

// FromCLI reads the flag values into a Config and validates it.
func FromCLI(c *cli.Context) (Config, error) {
	cfg := Config{
		Prompt:      c.String(FlagPrompt),
		HistoryFile: strings.TrimSpace(c.String(FlagHistory)),
		SeedFile:    strings.TrimSpace(c.String(FlagSeed)),
		LogLevel:    strings.ToLower(strings.TrimSpace(c.String(FlagLogLevel))),
	}
	return cfg, cfg.Validate()
}

// Validate checks that LogLevel is one the logger understands.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
}
