package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
)

// roundTripFunc lets a test stand in for the quote service without
// touching the network.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func quoteClient(rt roundTripFunc) *Client {
	return NewClient("https://api.example.test/api/v1", &http.Client{Transport: rt})
}

func isFallback(q string) bool {
	for _, fq := range FallbackQuotes {
		if fq.Content == q {
			return true
		}
	}
	return false
}

func TestFetchRandomQuote(t *testing.T) {
	client := quoteClient(func(r *http.Request) (*http.Response, error) {
		if r.URL.Host != "api.quotable.io" {
			t.Errorf("quote request host = %q, want api.quotable.io", r.URL.Host)
		}
		body := `{"content": "Persistence beats talent.", "author": "Someone Wise"}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(body))),
			Header:     http.Header{"Content-Type": []string{"application/json"}},
		}, nil
	})

	quote := client.FetchRandomQuote(context.Background())
	if quote.Content != "Persistence beats talent." || quote.Author != "Someone Wise" {
		t.Errorf("quote = %+v, want the served quote", quote)
	}
}

func TestFetchRandomQuoteFallsBackOnNetworkError(t *testing.T) {
	client := quoteClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: no route to host")
	})

	quote := client.FetchRandomQuote(context.Background())
	if !isFallback(quote.Content) {
		t.Errorf("quote = %+v, want one of the local fallbacks", quote)
	}
	if quote.Author == "" {
		t.Error("fallback quote has no author")
	}
}

func TestFetchRandomQuoteFallsBackOnBadResponse(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"not json", http.StatusOK, "<html>nope</html>"},
		{"empty content", http.StatusOK, `{"content": "", "author": "x"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := quoteClient(func(r *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: tc.status,
					Body:       io.NopCloser(bytes.NewReader([]byte(tc.body))),
				}, nil
			})

			quote := client.FetchRandomQuote(context.Background())
			if !isFallback(quote.Content) {
				t.Errorf("quote = %+v, want one of the local fallbacks", quote)
			}
		})
	}
}
