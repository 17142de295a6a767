// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Create sessions from a secret word and a life count.
//   - Validate and apply single-letter guesses.
//   - Render the masked word.
//   - Derive the outcome: in_progress → won/lost.
//
// Notes:
//   - Validation always precedes mutation, so a rejected guess leaves the
//     session exactly as it was.
//   - Letters are normalized with words.Normalize, so "a" and "A" are the
//     same guess and the secret word is stored upper case.
package game

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/words"
)

// New constructs a session for word with the given number of lives.
func New(word string, lives int) (*Session, error) {
	w := words.Normalize(word)
	if !words.IsWord(w) {
		return nil, fmt.Errorf("%w: secret word %q must be non-empty letters A-Z", ErrInvalidConfiguration, word)
	}
	if lives <= 0 {
		return nil, fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfiguration, lives)
	}

	letters := make(map[rune]struct{}, len(w))
	for _, r := range w {
		letters[r] = struct{}{}
	}
	return &Session{
		ID:        uuid.NewString(),
		word:      w,
		letters:   letters,
		correct:   make(map[rune]struct{}),
		incorrect: make(map[rune]struct{}),
		lives:     lives,
	}, nil
}

// Guess validates and applies one letter.
//
// Validation order:
//   - Session must still be in progress (ErrSessionOver).
//   - Input must normalize to one letter A–Z (ErrInvalidGuess).
//   - Letter must not have been guessed before (ErrDuplicateGuess).
//
// A letter present in the word reveals every occurrence at once; a miss
// costs exactly one life.
func (s *Session) Guess(input string) (GuessResult, error) {
	if st := s.Status(); st.Terminal() {
		return GuessResult{}, fmt.Errorf("%w: round already %s", ErrSessionOver, st)
	}

	letter, ok := parseLetter(input)
	if !ok {
		return GuessResult{}, fmt.Errorf("%w: %q is not a single letter", ErrInvalidGuess, input)
	}
	if s.guessed(letter) {
		return GuessResult{}, fmt.Errorf("%w: %q", ErrDuplicateGuess, letter)
	}

	_, hit := s.letters[letter]
	if hit {
		s.correct[letter] = struct{}{}
	} else {
		s.incorrect[letter] = struct{}{}
		s.lives--
	}
	s.history = append(s.history, letter)

	return GuessResult{
		Letter:  letter,
		Correct: hit,
		Outcome: s.Status(),
		Lives:   s.lives,
	}, nil
}

// Masked returns the word with unrevealed letters replaced by Placeholder.
func (s *Session) Masked() string {
	var b strings.Builder
	b.Grow(len(s.word))
	for _, r := range s.word {
		if _, ok := s.correct[r]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// Status derives the outcome from the revealed letters and lives.
func (s *Session) Status() Outcome {
	if len(s.correct) == len(s.letters) {
		return Won
	}
	if s.lives == 0 {
		return Lost
	}
	return InProgress
}

// Word returns the secret word.
func (s *Session) Word() string { return s.word }

// Lives returns the lives remaining.
func (s *Session) Lives() int { return s.lives }

// Correct returns the correctly guessed letters, sorted.
func (s *Session) Correct() []rune { return sortedRunes(s.correct) }

// Incorrect returns the missed letters, sorted.
func (s *Session) Incorrect() []rune { return sortedRunes(s.incorrect) }

// History returns accepted guesses in the order they were made.
func (s *Session) History() []rune { return append([]rune(nil), s.history...) }

func (s *Session) guessed(r rune) bool {
	if _, ok := s.correct[r]; ok {
		return true
	}
	_, ok := s.incorrect[r]
	return ok
}

// parseLetter normalizes input and accepts exactly one rune in A–Z.
func parseLetter(input string) (rune, bool) {
	n := words.Normalize(input)
	if utf8.RuneCountInString(n) != 1 || !words.IsWord(n) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(n)
	return r, true
}

func sortedRunes(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
