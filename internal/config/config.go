// internal/config/config.go
//
// Runtime configuration for the hangman binary.
//
// Values come from the environment, optionally seeded from a `.env` file:
//   LOG_LEVEL=info               zerolog level
//   HANGMAN_LIVES=0              lives per round, 0 = one per letter of the word
//   HANGMAN_MIN_LENGTH=0         shortest allowed secret word, 0 = no limit
//   HANGMAN_MAX_LENGTH=0         longest allowed secret word, 0 = no limit
//   HANGMAN_CATEGORY=            category tag from the word list
//   HANGMAN_WORDS_FILE=          word list file instead of the embedded one
//   HANGMAN_DB=                  SQLite word catalog (seeded from the word list when empty)
//   HANGMAN_WORD_API=            remote random-word endpoint instead of a local list
//   HANGMAN_TIME_LIMIT=0s        round time limit, 0 = none
//   HANGMAN_DAILY=false          same word for everyone on a given UTC day
//   HANGMAN_DAILY_SALT=hangman   salt for the daily word

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/hangman/internal/words"
)

// ErrInvalid marks configuration values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every setting read from the environment; see the file header.
type Config struct {
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	Lives     int           `env:"HANGMAN_LIVES" envDefault:"0"`
	MinLength int           `env:"HANGMAN_MIN_LENGTH" envDefault:"0"`
	MaxLength int           `env:"HANGMAN_MAX_LENGTH" envDefault:"0"`
	Category  string        `env:"HANGMAN_CATEGORY"`
	WordsFile string        `env:"HANGMAN_WORDS_FILE"`
	DBPath    string        `env:"HANGMAN_DB"`
	WordAPI   string        `env:"HANGMAN_WORD_API"`
	TimeLimit time.Duration `env:"HANGMAN_TIME_LIMIT" envDefault:"0s"`
	Daily     bool          `env:"HANGMAN_DAILY" envDefault:"false"`
	DailySalt string        `env:"HANGMAN_DAILY_SALT" envDefault:"hangman"`
}

// Load reads `.env` (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads Config from the current environment and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no round could be played with.
func (c Config) Validate() error {
	switch {
	case c.Lives < 0:
		return fmt.Errorf("%w: HANGMAN_LIVES must be >= 0, got %d", ErrInvalid, c.Lives)
	case c.MinLength < 0 || c.MaxLength < 0:
		return fmt.Errorf("%w: word length limits must be >= 0", ErrInvalid)
	case c.MaxLength > 0 && c.MinLength > c.MaxLength:
		return fmt.Errorf("%w: HANGMAN_MIN_LENGTH %d exceeds HANGMAN_MAX_LENGTH %d", ErrInvalid, c.MinLength, c.MaxLength)
	case c.TimeLimit < 0:
		return fmt.Errorf("%w: HANGMAN_TIME_LIMIT must be >= 0", ErrInvalid)
	case c.WordAPI != "" && (c.WordsFile != "" || c.DBPath != ""):
		return fmt.Errorf("%w: HANGMAN_WORD_API cannot be combined with HANGMAN_WORDS_FILE or HANGMAN_DB", ErrInvalid)
	}
	return nil
}

// Filter returns the word selection filter.
func (c Config) Filter() words.Filter {
	return words.Filter{
		MinLength: c.MinLength,
		MaxLength: c.MaxLength,
		Category:  c.Category,
	}
}
