// internal/words/api.go
//
// Remote word catalog backed by a random-word HTTP API.
// Responsibilities:
//   - Request batches of random words, forwarding an exact length when the
//     filter pins one.
//   - Retry a few batches when a length range matches nothing yet.
//   - Normalize the response and drop anything that is not A–Z.
//
// Remote words carry no category, so a category filter yields no entries.

package words

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultAPIEndpoint serves a JSON array of random words.
	DefaultAPIEndpoint = "https://random-word-api.herokuapp.com/word"

	defaultAPIBatch    = 25
	defaultAPIAttempts = 3
	defaultAPITimeout  = 10 * time.Second
)

// APICatalog fetches fresh batches of random words on every request.
type APICatalog struct {
	Endpoint string
	Batch    int // words per request
	Attempts int // requests per Candidates call before giving up
	Client   *http.Client
}

// NewAPICatalog returns a catalog for endpoint with a 10s client timeout.
func NewAPICatalog(endpoint string) *APICatalog {
	if endpoint == "" {
		endpoint = DefaultAPIEndpoint
	}
	return &APICatalog{
		Endpoint: endpoint,
		Batch:    defaultAPIBatch,
		Attempts: defaultAPIAttempts,
		Client:   &http.Client{Timeout: defaultAPITimeout},
	}
}

// Candidates fetches batches until one holds a word matching f, or the
// attempts run out. Only the matching words are returned.
func (a *APICatalog) Candidates(ctx context.Context, f Filter) ([]Entry, error) {
	if NormalizeCategory(f.Category) != "" {
		return nil, nil
	}

	attempts := a.Attempts
	if attempts <= 0 {
		attempts = defaultAPIAttempts
	}
	// an exact length is filtered server side, one batch is enough
	if f.MinLength > 0 && f.MinLength == f.MaxLength {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		batch, err := a.fetch(ctx, f)
		if err != nil {
			return nil, err
		}
		var out []Entry
		for _, e := range batch {
			if f.Match(e) {
				out = append(out, e)
			}
		}
		if len(out) > 0 {
			return out, nil
		}
	}
	return nil, nil
}

func (a *APICatalog) fetch(ctx context.Context, f Filter) ([]Entry, error) {
	u, err := url.Parse(a.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("word api endpoint: %w", err)
	}
	q := u.Query()
	batch := a.Batch
	if batch <= 0 {
		batch = defaultAPIBatch
	}
	q.Set("number", strconv.Itoa(batch))
	if f.MinLength > 0 && f.MinLength == f.MaxLength {
		q.Set("length", strconv.Itoa(f.MinLength))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	client := a.Client
	if client == nil {
		client = &http.Client{Timeout: defaultAPITimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("word api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("word api: status %d", resp.StatusCode)
	}

	var raw []string
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("word api: decode: %w", err)
	}

	out := make([]Entry, 0, len(raw))
	for _, w := range raw {
		if w = Normalize(w); IsWord(w) {
			out = append(out, Entry{Word: w})
		}
	}
	return out, nil
}
