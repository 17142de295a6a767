// internal/words/source.go
//
// Random secret word selection.
// Responsibilities:
//   - Ask a Catalog for candidate entries and re-apply the filter.
//   - Collapse entries to distinct words, so a word listed under several
//     categories is drawn no more often than any other.
//   - Pick one word through an injectable Rand.
//
// Notes:
//   - Candidate order is the catalog's order with later duplicates dropped,
//     so deterministic sources (daily.Rand, seeded math/rand) stay stable.

package words

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrEmptyCandidateSet is returned when no catalog word satisfies a filter.
var ErrEmptyCandidateSet = errors.New("no word matches the request")

// Catalog supplies candidate entries for a filter.
// Implementations may over-deliver; Source re-applies the filter.
type Catalog interface {
	Candidates(ctx context.Context, f Filter) ([]Entry, error)
}

// Rand is the random source used for selection.
// *math/rand.Rand satisfies it, which keeps tests deterministic.
type Rand interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// CryptoRand draws from crypto/rand, or from Reader when set.
// Like math/rand, it panics rather than return a made-up index.
type CryptoRand struct {
	Reader io.Reader
}

func (c CryptoRand) Intn(n int) int {
	r := c.Reader
	if r == nil {
		r = rand.Reader
	}
	nBig, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("words: crypto random source failed: %v", err))
	}
	return int(nBig.Int64())
}

// Source selects secret words from a Catalog.
type Source struct {
	catalog Catalog
	rng     Rand
}

// NewSource builds a Source. A nil rng falls back to CryptoRand.
func NewSource(c Catalog, rng Rand) *Source {
	if rng == nil {
		rng = CryptoRand{}
	}
	return &Source{catalog: c, rng: rng}
}

// Select returns one word drawn uniformly from the distinct words matching f.
// The catalog is never modified.
func (s *Source) Select(ctx context.Context, f Filter) (string, error) {
	entries, err := s.catalog.Candidates(ctx, f)
	if err != nil {
		return "", fmt.Errorf("load candidates: %w", err)
	}

	candidates := distinctWords(entries, f)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyCandidateSet, f)
	}

	i := s.rng.Intn(len(candidates))
	if i < 0 || i >= len(candidates) {
		return "", fmt.Errorf("random source returned %d for %d candidates", i, len(candidates))
	}
	return candidates[i], nil
}

// distinctWords keeps valid words matching f, first occurrence only.
func distinctWords(entries []Entry, f Filter) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !IsWord(e.Word) || !f.Match(e) {
			continue
		}
		if _, dup := seen[e.Word]; dup {
			continue
		}
		seen[e.Word] = struct{}{}
		out = append(out, e.Word)
	}
	return out
}
