// internal/game/errors.go
//
// Sentinel errors returned by the engine. Callers match them with errors.Is;
// the engine wraps them with the offending input for display.
// None of them leaves the session modified.

package game

import "errors"

var (
	// ErrInvalidConfiguration: empty or non-alphabetic word, or lives <= 0.
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	// ErrInvalidGuess: the guess is not exactly one letter A–Z.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrDuplicateGuess: the letter was already guessed this round.
	ErrDuplicateGuess = errors.New("letter already guessed")
	// ErrSessionOver: the round already ended in a win or a loss.
	ErrSessionOver = errors.New("game finished")
)
