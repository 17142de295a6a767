// internal/console/console.go
//
// Terminal driver for one hangman round.
// Responsibilities:
//   - Prompt with the masked word and read one guess per line.
//   - Forward guesses to the session and print what happened.
//   - Re-prompt on invalid or repeated guesses.
//   - Enforce an optional round time limit, checked before every prompt.
//
// The session is the only source of truth; the driver never changes it
// except through Guess. A timed out round is reported as lost without
// touching the session.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

// Result summarizes a finished round.
type Result struct {
	Outcome  game.Outcome
	TimedOut bool
	Guesses  int
}

// Player runs rounds over a line-oriented reader and a writer.
type Player struct {
	in  *bufio.Scanner
	out io.Writer

	TimeLimit time.Duration    // 0 disables the limit
	Now       func() time.Time // clock, overridable in tests
	Log       zerolog.Logger
}

// New returns a Player reading guesses from in and writing to out.
func New(in io.Reader, out io.Writer) *Player {
	return &Player{
		in:  bufio.NewScanner(in),
		out: out,
		Now: time.Now,
		Log: zerolog.Nop(),
	}
}

// Play drives s until it reaches a terminal outcome or time runs out.
// It returns an error only when input ends early or ctx is cancelled.
func (p *Player) Play(ctx context.Context, s *game.Session) (Result, error) {
	log := p.Log.With().Str("session", s.ID).Logger()
	start := p.Now()
	res := Result{}

	p.printf("Start guessing...\n")
	for s.Status() == game.InProgress {
		if err := ctx.Err(); err != nil {
			res.Outcome = s.Status()
			return res, err
		}
		if p.TimeLimit > 0 && p.Now().Sub(start) > p.TimeLimit {
			p.printf("\nYou are out of time! ")
			res.TimedOut = true
			log.Info().Dur("limit", p.TimeLimit).Msg("round timed out")
			break
		}

		p.printf("%s guess a character: ", s.Masked())
		line, err := p.readLine()
		if err != nil {
			res.Outcome = s.Status()
			return res, err
		}

		g, err := s.Guess(line)
		switch {
		case errors.Is(err, game.ErrDuplicateGuess):
			p.printf("You've already tried character '%s'. Try another one\n", words.Normalize(line))
			continue
		case errors.Is(err, game.ErrInvalidGuess):
			p.printf("'%s' is not a single letter. Try again\n", strings.TrimSpace(line))
			continue
		case err != nil:
			res.Outcome = s.Status()
			return res, err
		}

		res.Guesses++
		log.Debug().
			Str("letter", string(g.Letter)).
			Bool("correct", g.Correct).
			Int("lives", g.Lives).
			Str("outcome", string(g.Outcome)).
			Msg("guess")
		if !g.Correct && g.Lives > 0 {
			p.printf("Wrong\nYou have %d more guesses\n", g.Lives)
		}
	}

	res.Outcome = s.Status()
	if res.TimedOut {
		res.Outcome = game.Lost
	}
	if res.Outcome == game.Won {
		p.printf("%s You win\n", s.Word())
	} else {
		p.printf("You lose. The word is %s\n", s.Word())
	}
	return res, nil
}

func (p *Player) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read guess: %w", err)
		}
		return "", fmt.Errorf("read guess: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

func (p *Player) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
