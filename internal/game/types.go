// internal/game/types.go
//
// Core type definitions for the hangman engine.
// Defines:
//   - Outcome: derived state of a round (in_progress/won/lost).
//   - GuessResult: what a single accepted guess did.
//   - Session: state for a single round.

package game

// Outcome is the derived state of a round.
type Outcome string

const (
	InProgress Outcome = "in_progress"
	Won        Outcome = "won"
	Lost       Outcome = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool { return o == Won || o == Lost }

// Placeholder replaces unrevealed letters in the masked word.
const Placeholder = '_'

// GuessResult describes the effect of one accepted guess.
type GuessResult struct {
	Letter  rune    // normalized guess, A–Z
	Correct bool    // letter appears in the secret word
	Outcome Outcome // outcome after the guess
	Lives   int     // lives remaining after the guess
}

// Session holds the state of one hangman round.
// Outcome is never stored; Status recomputes it from the fields below.
type Session struct {
	ID        string            // random UUID, for log correlation only
	word      string            // secret word, upper case A–Z
	letters   map[rune]struct{} // distinct letters of word
	correct   map[rune]struct{} // guessed letters present in word
	incorrect map[rune]struct{} // guessed letters absent from word
	history   []rune            // accepted guesses in order
	lives     int               // lives remaining, never negative
}
