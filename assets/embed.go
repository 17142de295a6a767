package assets

import (
	"embed"

	"github.com/robalobadob/hangman/internal/words"
)

//go:embed words.txt
var FS embed.FS

// DefaultWords parses the embedded word list.
func DefaultWords() ([]words.Entry, error) {
	f, err := FS.Open("words.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return words.Parse(f)
}
