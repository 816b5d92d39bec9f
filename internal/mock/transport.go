package mock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/consistencyhq/consistency-cli/internal/constants"
	"github.com/consistencyhq/consistency-cli/internal/logger"
)

// checkInPattern is the structural match for check-in creation: a
// numeric habit id followed by the check-in marker segment.
var checkInPattern = regexp.MustCompile(`habits/(\d+)/check-in`)

// route is one canned endpoint. The payload is generated per request so
// stateful fixtures (and the fresh login token) stay current.
type route struct {
	method  string
	path    string
	payload func() interface{}
}

// Transport is an http.RoundTripper that answers known requests from the
// fixture set and forwards everything else to the wrapped transport.
// Matched requests resolve like ordinary successful responses; unmatched
// requests behave exactly as they would without the transport installed,
// including real network errors.
type Transport struct {
	base     http.RoundTripper
	baseURL  string
	fixtures *Fixtures
	routes   []route
}

// NewTransport builds a transport over base, serving fixtures for the
// backend rooted at baseURL.
func NewTransport(base http.RoundTripper, fixtures *Fixtures, baseURL string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}

	t := &Transport{
		base:     base,
		baseURL:  strings.TrimRight(baseURL, "/"),
		fixtures: fixtures,
	}

	t.routes = []route{
		{
			method: http.MethodGet,
			path:   "/habits",
			payload: func() interface{} {
				return Payload{
					Success: true,
					Message: "Resource fetched successfully",
					Data:    fixtures.Habits(),
				}
			},
		},
		{
			method: http.MethodPost,
			path:   "/auth/login",
			payload: func() interface{} {
				// Bare shape on purpose: the real login endpoint
				// never used the envelope
				return struct {
					Token string      `json:"token"`
					User  interface{} `json:"user"`
				}{
					Token: "mock-jwt-token-" + uuid.NewString(),
					User:  fixtures.User(),
				}
			},
		},
		{
			method: http.MethodGet,
			path:   "/user/profile",
			payload: func() interface{} {
				return Payload{
					Success: true,
					Message: "Resource fetched successfully",
					Data:    seedProfile(),
				}
			},
		},
	}

	return t
}

// Enable installs a mock transport on the shared HTTP client. Calling it
// when one is already installed is a no-op returning the existing
// transport.
func Enable(client *http.Client, fixtures *Fixtures, baseURL string) *Transport {
	if t, ok := client.Transport.(*Transport); ok {
		return t
	}

	t := NewTransport(client.Transport, fixtures, baseURL)
	client.Transport = t

	logger.Debug("mock interceptor enabled", "base_url", baseURL)

	return t
}

// Disable removes a previously installed mock transport, restoring the
// transport it wrapped. Safe to call when none is installed.
func Disable(client *http.Client) {
	if t, ok := client.Transport.(*Transport); ok {
		if t.base == http.RoundTripper(http.DefaultTransport) {
			client.Transport = nil
		} else {
			client.Transport = t.base
		}
		logger.Debug("mock interceptor disabled")
	}
}

// Enabled reports whether a mock transport is installed on the client.
func Enabled(client *http.Client) bool {
	_, ok := client.Transport.(*Transport)
	return ok
}

// RoundTrip applies the matching rules in order of precedence: the
// structural check-in rule, exact relative path, exact absolute URL,
// registered path fragment (minus the quote-service denylist), then
// passthrough.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	fullURL := req.URL.String()
	relPath := req.URL.Path
	if rel, ok := strings.CutPrefix(fullURL, t.baseURL); ok {
		relPath = rel
	}

	// Rule 1: structural check-in match
	if req.Method == http.MethodPost {
		if m := checkInPattern.FindStringSubmatch(req.URL.Path); m != nil {
			habitID, _ := strconv.Atoi(m[1])
			return t.serveCheckIn(req, habitID)
		}
	}

	// Rule 2: exact relative path
	for _, r := range t.routes {
		if r.method == req.Method && r.path == relPath {
			logger.Debug("mock response", "rule", "exact", "method", req.Method, "path", relPath)
			return jsonResponse(req, 200, r.payload())
		}
	}

	// Rule 3: exact absolute URL
	for _, r := range t.routes {
		if r.method == req.Method && t.baseURL+r.path == fullURL {
			logger.Debug("mock response", "rule", "absolute", "method", req.Method, "url", fullURL)
			return jsonResponse(req, 200, r.payload())
		}
	}

	// Rule 4: registered path fragment, except the quote service
	if !strings.Contains(fullURL, constants.QuoteDenylist) {
		for _, r := range t.routes {
			if r.method == req.Method && strings.Contains(fullURL, r.path) {
				logger.Debug("mock response", "rule", "fragment", "method", req.Method, "url", fullURL)
				return jsonResponse(req, 200, r.payload())
			}
		}
	}

	// Rule 5: transparent passthrough
	return t.base.RoundTrip(req)
}

func (t *Transport) serveCheckIn(req *http.Request, habitID int) (*http.Response, error) {
	var body struct {
		Notes string `json:"notes"`
	}

	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err == nil && len(data) > 0 {
			// A malformed body behaves like an empty note, matching
			// the real backend's lenient parsing
			_ = json.Unmarshal(data, &body)
		}
	}

	payload, status := t.fixtures.CreateCheckIn(habitID, body.Notes)

	logger.Debug("mock check-in", "habit_id", habitID, "status", status)

	return jsonResponse(req, status, payload)
}

// jsonResponse synthesizes a normal *http.Response carrying the payload,
// indistinguishable to callers from a real backend reply.
func jsonResponse(req *http.Request, status int, payload interface{}) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding mock payload: %w", err)
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode:    status,
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
		Request:       req,
	}, nil
}
