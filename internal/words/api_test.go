package words

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPICatalogCandidates(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`["apple","Mango","ice-cream",""]`))
	}))
	defer srv.Close()

	c := NewAPICatalog(srv.URL + "/word")
	entries, err := c.Candidates(context.Background(), Filter{MinLength: 5, MaxLength: 5})
	require.NoError(t, err)

	assert.Equal(t, []Entry{{Word: "APPLE"}, {Word: "MANGO"}}, entries)
	assert.Equal(t, []string{"5"}, gotQuery["length"])
	assert.Equal(t, []string{"25"}, gotQuery["number"])
}

func TestAPICatalogLengthRangeNotForwarded(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`["apple"]`))
	}))
	defer srv.Close()

	_, err := NewAPICatalog(srv.URL).Candidates(context.Background(), Filter{MinLength: 3, MaxLength: 6})
	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "length")
}

func TestAPICatalogStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewAPICatalog(srv.URL).Candidates(context.Background(), Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestAPICatalogBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewAPICatalog(srv.URL).Candidates(context.Background(), Filter{})
	assert.Error(t, err)
}

func TestAPICatalogCategoryYieldsNothing(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, _ = w.Write([]byte(`["apple"]`))
	}))
	defer srv.Close()

	src := NewSource(NewAPICatalog(srv.URL), fixedRand(0))
	_, err := src.Select(context.Background(), Filter{Category: "fruit"})
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
	assert.False(t, called)
}

func TestAPICatalogThroughSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["cat","tiger","elephant"]`))
	}))
	defer srv.Close()

	src := NewSource(NewAPICatalog(srv.URL), fixedRand(0))
	w, err := src.Select(context.Background(), Filter{MinLength: 4, MaxLength: 6})
	require.NoError(t, err)
	assert.Equal(t, "TIGER", w)
}

func TestAPICatalogRetriesLengthRange(t *testing.T) {
	batches := []string{`["cat","dog"]`, `["ox"]`, `["elephant","cat"]`}
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		_, _ = w.Write([]byte(batches[n-1]))
	}))
	defer srv.Close()

	entries, err := NewAPICatalog(srv.URL).Candidates(context.Background(), Filter{MinLength: 8})
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Word: "ELEPHANT"}}, entries)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAPICatalogGivesUpAfterAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`["cat"]`))
	}))
	defer srv.Close()

	c := NewAPICatalog(srv.URL)
	c.Attempts = 2
	_, err := NewSource(c, fixedRand(0)).Select(context.Background(), Filter{MinLength: 10})
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAPICatalogExactLengthSingleRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	entries, err := NewAPICatalog(srv.URL).Candidates(context.Background(), Filter{MinLength: 6, MaxLength: 6})
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, int32(1), calls.Load())
}
