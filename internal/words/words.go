// internal/words/words.go
//
// Word list primitives shared by every word catalog.
//
// Responsibilities:
//   - Normalize raw text into the canonical word form (NFC, upper case, trimmed).
//   - Decide whether a normalized string is a playable word (A–Z only).
//   - Parse word list files into catalog entries.
//   - Describe and apply selection filters (length range, category).
//
// Word list format:
//   # comment
//   apple              (uncategorized)
//   animals tiger      (category, word)
//
// Constraints:
//   • Words are normalized to upper case A–Z; anything else is dropped.
//   • Categories are normalized to lower case.
//   • Duplicate (category, word) pairs are kept once, first occurrence wins.

package words

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Entry is a single catalog row.
type Entry struct {
	Word     string // normalized, upper case
	Category string // lower case, may be empty
}

// Filter narrows the candidate set. Zero values mean "no constraint".
type Filter struct {
	MinLength int
	MaxLength int
	Category  string
}

// Match reports whether e satisfies every constraint of f.
func (f Filter) Match(e Entry) bool {
	n := len(e.Word)
	if f.MinLength > 0 && n < f.MinLength {
		return false
	}
	if f.MaxLength > 0 && n > f.MaxLength {
		return false
	}
	if c := NormalizeCategory(f.Category); c != "" && c != e.Category {
		return false
	}
	return true
}

// String renders the filter for error messages and logs.
func (f Filter) String() string {
	var parts []string
	switch {
	case f.MinLength > 0 && f.MaxLength > 0:
		parts = append(parts, fmt.Sprintf("length %d-%d", f.MinLength, f.MaxLength))
	case f.MinLength > 0:
		parts = append(parts, fmt.Sprintf("length >= %d", f.MinLength))
	case f.MaxLength > 0:
		parts = append(parts, fmt.Sprintf("length <= %d", f.MaxLength))
	}
	if c := NormalizeCategory(f.Category); c != "" {
		parts = append(parts, "category "+c)
	}
	if len(parts) == 0 {
		return "any word"
	}
	return strings.Join(parts, ", ")
}

// Normalize trims s, composes it to NFC and upper-cases it.
// Composition makes "e" + combining acute a single rune, so it is
// rejected as a non-letter rather than counted as two characters.
func Normalize(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return cases.Upper(language.Und).String(s)
}

// NormalizeCategory lower-cases and trims a category tag.
func NormalizeCategory(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// IsWord reports whether s is a non-empty run of upper case A–Z.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Parse reads a word list, one entry per line.
// Lines that do not hold a valid word are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	var out []Entry
	seen := make(map[Entry]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var e Entry
		switch fields := strings.Fields(line); len(fields) {
		case 1:
			e.Word = Normalize(fields[0])
		case 2:
			e.Category = NormalizeCategory(fields[0])
			e.Word = Normalize(fields[1])
		default:
			continue
		}
		if !IsWord(e.Word) {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return out, nil
}
