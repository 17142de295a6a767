package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	masked    string
	status    Outcome
	lives     int
	correct   []rune
	incorrect []rune
	history   []rune
}

func snap(s *Session) snapshot {
	return snapshot{
		masked:    s.Masked(),
		status:    s.Status(),
		lives:     s.Lives(),
		correct:   s.Correct(),
		incorrect: s.Incorrect(),
		history:   s.History(),
	}
}

func mustNew(t *testing.T, word string, lives int) *Session {
	t.Helper()
	s, err := New(word, lives)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := mustNew(t, "apple", 3)
	assert.Equal(t, "APPLE", s.Word())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, InProgress, s.Status())
	assert.Equal(t, "_____", s.Masked())
	assert.NotEmpty(t, s.ID)
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name  string
		word  string
		lives int
	}{
		{"empty word", "", 3},
		{"blank word", "   ", 3},
		{"non alphabetic word", "r2d2", 3},
		{"accented word", "café", 3},
		{"zero lives", "cat", 0},
		{"negative lives", "cat", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.word, tt.lives)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, s)
		})
	}
}

func TestScenarioCatWon(t *testing.T) {
	s := mustNew(t, "CAT", 2)

	steps := []struct {
		guess   string
		correct bool
		masked  string
		lives   int
		outcome Outcome
	}{
		{"c", true, "C__", 2, InProgress},
		{"a", true, "CA_", 2, InProgress},
		{"z", false, "CA_", 1, InProgress},
		{"t", true, "CAT", 1, Won},
	}
	for _, st := range steps {
		res, err := s.Guess(st.guess)
		require.NoError(t, err, st.guess)
		assert.Equal(t, st.correct, res.Correct, st.guess)
		assert.Equal(t, st.outcome, res.Outcome, st.guess)
		assert.Equal(t, st.lives, res.Lives, st.guess)
		assert.Equal(t, st.masked, s.Masked(), st.guess)
		assert.Equal(t, st.outcome, s.Status(), st.guess)
	}
	assert.Equal(t, s.Word(), s.Masked())
	assert.Equal(t, []rune{'Z'}, s.Incorrect())
	assert.Equal(t, []rune{'C', 'A', 'Z', 'T'}, s.History())
}

func TestScenarioDogLost(t *testing.T) {
	s := mustNew(t, "DOG", 1)

	res, err := s.Guess("x")
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, 0, res.Lives)
	assert.Equal(t, Lost, res.Outcome)
	assert.Equal(t, Lost, s.Status())

	before := snap(s)
	_, err = s.Guess("d")
	assert.ErrorIs(t, err, ErrSessionOver)
	assert.Equal(t, before, snap(s))
}

func TestDuplicateGuessLeavesStateUnchanged(t *testing.T) {
	s := mustNew(t, "CAT", 2)
	_, err := s.Guess("c")
	require.NoError(t, err)

	before := snap(s)
	for _, g := range []string{"c", "C", " c "} {
		_, err = s.Guess(g)
		assert.ErrorIs(t, err, ErrDuplicateGuess, g)
		assert.Equal(t, before, snap(s), g)
	}
}

func TestDuplicateIncorrectGuessCostsNothing(t *testing.T) {
	s := mustNew(t, "CAT", 3)
	_, err := s.Guess("q")
	require.NoError(t, err)

	_, err = s.Guess("Q")
	assert.ErrorIs(t, err, ErrDuplicateGuess)
	assert.Equal(t, 2, s.Lives())
}

func TestInvalidGuess(t *testing.T) {
	for _, g := range []string{"", "ab", "5", " ", "\u00e9", "e\u0301", "\u00df", "?", "\n"} {
		s := mustNew(t, "CAT", 2)
		before := snap(s)
		_, err := s.Guess(g)
		assert.ErrorIs(t, err, ErrInvalidGuess, "%q", g)
		assert.Equal(t, before, snap(s), "%q", g)
	}
}

func TestCaseInsensitiveGuess(t *testing.T) {
	s := mustNew(t, "cat", 2)
	res, err := s.Guess("A")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 'A', res.Letter)
	assert.Equal(t, "_A_", s.Masked())
}

func TestRepeatedLetterRevealsAllOccurrences(t *testing.T) {
	s := mustNew(t, "banana", 1)

	res, err := s.Guess("a")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, "_A_A_A", s.Masked())

	_, err = s.Guess("n")
	require.NoError(t, err)
	res, err = s.Guess("b")
	require.NoError(t, err)
	assert.Equal(t, Won, res.Outcome)
	assert.Equal(t, "BANANA", s.Masked())
	assert.Len(t, s.History(), 3)
}

func TestWonSessionRejectsGuesses(t *testing.T) {
	s := mustNew(t, "AA", 1)
	_, err := s.Guess("a")
	require.NoError(t, err)
	require.Equal(t, Won, s.Status())

	before := snap(s)
	for _, g := range []string{"b", "a", "", "ab"} {
		_, err = s.Guess(g)
		assert.ErrorIs(t, err, ErrSessionOver, "%q", g)
	}
	assert.Equal(t, before, snap(s))
}

func TestReadsAreIdempotent(t *testing.T) {
	s := mustNew(t, "hangman", 4)
	for _, g := range []string{"a", "x"} {
		_, err := s.Guess(g)
		require.NoError(t, err)
	}
	m, st := s.Masked(), s.Status()
	for i := 0; i < 5; i++ {
		assert.Equal(t, m, s.Masked())
		assert.Equal(t, st, s.Status())
	}
}

func TestHistoryIsACopy(t *testing.T) {
	s := mustNew(t, "cat", 2)
	_, err := s.Guess("c")
	require.NoError(t, err)

	h := s.History()
	h[0] = 'Q'
	assert.Equal(t, []rune{'C'}, s.History())
}

// Random play: lives never increase or go negative, and once the round
// is over nothing changes.
func TestRandomPlayInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	wordList := []string{"cat", "banana", "hangman", "zebra", "quiz", "mississippi"}

	for round := 0; round < 300; round++ {
		s := mustNew(t, wordList[rng.Intn(len(wordList))], 1+rng.Intn(6))
		prevLives := s.Lives()

		for i := 0; i < 40; i++ {
			guess := string(rune('a' + rng.Intn(26)))
			over := s.Status().Terminal()
			before := snap(s)

			_, err := s.Guess(guess)
			if over {
				assert.ErrorIs(t, err, ErrSessionOver)
				assert.Equal(t, before, snap(s))
			}

			assert.LessOrEqual(t, s.Lives(), prevLives)
			assert.GreaterOrEqual(t, s.Lives(), 0)
			prevLives = s.Lives()
		}
	}
}

// Guessing every letter of the word before running out always wins.
func TestGuessingAllLettersWins(t *testing.T) {
	for _, w := range []string{"cat", "banana", "mississippi", "a"} {
		s := mustNew(t, w, 1)
		seen := map[rune]bool{}
		for _, r := range s.Word() {
			if seen[r] {
				continue
			}
			seen[r] = true
			_, err := s.Guess(string(r))
			require.NoError(t, err)
		}
		assert.Equal(t, Won, s.Status(), w)
		assert.Equal(t, s.Word(), s.Masked(), w)
	}
}
