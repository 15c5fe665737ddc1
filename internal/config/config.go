package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BookJSONPath string `env:"XQBOOK_JSON_PATH"    envDefault:"opening_book.json"`
	BookBinPath  string `env:"XQBOOK_BIN_PATH"     envDefault:"opening_book.bin"`
	BookDBPath   string `env:"XQBOOK_DB_PATH"`
	ZobristSeed  uint64 `env:"XQBOOK_ZOBRIST_SEED" envDefault:"0"`
}

// FromEnv reads the XQBOOK_* environment variables, falling back to the
// defaults above.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// WithArgs overrides the book paths with positional command arguments:
// args[0] is the JSON source, args[1] the binary output.
func (c Config) WithArgs(args []string) Config {
	if len(args) > 0 && args[0] != "" {
		c.BookJSONPath = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		c.BookBinPath = args[1]
	}
	return c
}
