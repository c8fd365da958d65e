package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingsSite(t *testing.T, overall string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search/professors/100", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if !strings.Contains(q, "Smith") {
			fmt.Fprint(w, `<html><body><div>No results</div></body></html>`)
			return
		}
		fmt.Fprint(w, `<html><body>
			<div data-qa="professor-card"><a href="/professor/123">Dr. Smith</a></div>
			<div data-qa="professor-card"><a href="/professor/456">Dr. Smithers</a></div>
		</body></html>`)
	})
	mux.HandleFunc("/professor/123", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body>
			<div data-qa="rating-label overall-rating">%s</div>
			<div data-qa="rating-label would-take-again">87%%</div>
		</body></html>`, overall)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRateMyProfSourceFindsRating(t *testing.T) {
	server := ratingsSite(t, "4.8")
	source := NewRateMyProfSource(server.URL, time.Second, nil)

	rating, found, err := source.Rating(context.Background(), "Dr. Smith", "Georgia Institute of Technology")
	require.NoError(t, err)
	assert.True(t, found)
	assert.InDelta(t, 4.8, rating, 0.001)
}

func TestRateMyProfSourceNoSearchResults(t *testing.T) {
	server := ratingsSite(t, "4.8")
	source := NewRateMyProfSource(server.URL, time.Second, nil)

	_, found, err := source.Rating(context.Background(), "Dr. Nobody", "Nowhere University")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRateMyProfSourceUnparsableRating(t *testing.T) {
	server := ratingsSite(t, "N/A")
	source := NewRateMyProfSource(server.URL, time.Second, nil)

	_, found, err := source.Rating(context.Background(), "Dr. Smith", "Georgia Institute of Technology")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRateMyProfSourceOutOfRangeRating(t *testing.T) {
	server := ratingsSite(t, "9.9")
	source := NewRateMyProfSource(server.URL, time.Second, nil)

	_, found, err := source.Rating(context.Background(), "Dr. Smith", "Georgia Institute of Technology")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRateMyProfSourceUpstreamErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)
	source := NewRateMyProfSource(server.URL, time.Second, nil)

	// A refusal from the upstream is "no rating", not an error.
	_, found, err := source.Rating(context.Background(), "Dr. Smith", "Georgia Institute of Technology")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRateMyProfSourceTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	source := NewRateMyProfSource(server.URL, time.Second, nil)

	_, found, err := source.Rating(context.Background(), "Dr. Smith", "Georgia Institute of Technology")
	assert.Error(t, err)
	assert.False(t, found)
}
