// main.go
//
// Entry point for terminal hangman.
// Responsibilities:
//   - Load config (.env + environment) and set up zerolog on stderr.
//   - Pick the word catalog: word API, SQLite, or the in-memory word list.
//   - Select a secret word, start a session, and hand it to the console player.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// run plays one round: pick a word, build the session, hand it to the console.
func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	catalog, closeCatalog, err := openCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCatalog()

	var rng words.Rand = words.CryptoRand{}
	if cfg.Daily {
		rng = daily.Rand{Date: time.Now(), Salt: cfg.DailySalt}
	}

	word, err := words.NewSource(catalog, rng).Select(ctx, cfg.Filter())
	if err != nil {
		return fmt.Errorf("select word: %w", err)
	}

	lives := cfg.Lives
	if lives == 0 {
		lives = len(word)
	}
	s, err := game.New(word, lives)
	if err != nil {
		return err
	}
	log.Debug().Str("session", s.ID).Int("lives", lives).Int("length", len(word)).Msg("round started")

	p := console.New(in, out)
	p.TimeLimit = cfg.TimeLimit
	p.Log = log.Logger

	res, err := p.Play(ctx, s)
	if err != nil {
		return err
	}
	log.Info().
		Str("session", s.ID).
		Str("outcome", string(res.Outcome)).
		Bool("timedOut", res.TimedOut).
		Int("guesses", res.Guesses).
		Msg("round finished")
	return nil
}

// openCatalog picks the word catalog:
//  1. HANGMAN_WORD_API → remote random words.
//  2. HANGMAN_DB → SQLite catalog, seeded from the word list when empty.
//  3. otherwise → in-memory catalog from HANGMAN_WORDS_FILE or the embedded list.
func openCatalog(ctx context.Context, cfg config.Config) (words.Catalog, func(), error) {
	noop := func() {}

	if cfg.WordAPI != "" {
		log.Debug().Str("endpoint", cfg.WordAPI).Msg("using word api")
		return words.NewAPICatalog(cfg.WordAPI), noop, nil
	}

	entries, err := loadEntries(cfg.WordsFile)
	if err != nil {
		return nil, noop, err
	}

	if cfg.DBPath == "" {
		return store.NewMemoryStore(entries...), noop, nil
	}

	db, err := store.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return nil, noop, fmt.Errorf("open word db: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("close word db")
		}
	}
	n, err := db.Count(ctx)
	if err != nil {
		closeDB()
		return nil, noop, fmt.Errorf("count words: %w", err)
	}
	if n == 0 {
		if err := db.Add(ctx, entries...); err != nil {
			closeDB()
			return nil, noop, fmt.Errorf("seed word db: %w", err)
		}
		log.Info().Str("db", cfg.DBPath).Int("words", len(entries)).Msg("seeded word db")
	}
	return db, closeDB, nil
}

func loadEntries(path string) ([]words.Entry, error) {
	if path == "" {
		return assets.DefaultWords()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return words.Parse(f)
}
