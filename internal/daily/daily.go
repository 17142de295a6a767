// internal/daily/daily.go
//
// Daily word mode: every player gets the same secret word on a given UTC day.
// Responsibilities:
//   - DateKey: the UTC calendar day a time falls on.
//   - WordIndex: a stable index for (day, salt) via HMAC-SHA256.
//   - Rand: a words.Rand that always answers with the day's index.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Rand picks the same candidate for every player on a given UTC day.
// It satisfies words.Rand.
type Rand struct {
	Date time.Time
	Salt string
}

func (r Rand) Intn(n int) int { return WordIndex(r.Date, r.Salt, n) }
