// Package api is the single seam to the consistency backend. All
// response-shape normalization happens here; callers above this package
// only ever see decoded models or an *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/consistencyhq/consistency-cli/internal/constants"
	"github.com/consistencyhq/consistency-cli/internal/logger"
	"github.com/consistencyhq/consistency-cli/internal/models"
)

// Error is a non-2xx backend response in a uniform shape.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error: %d", e.Status)
}

// Client talks to the real backend over a shared *http.Client. The mock
// interceptor, when enabled, is installed on that client's transport, so
// mocked and real requests follow the same code path here.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient returns a client rooted at baseURL. If httpc is nil a client
// with the default request timeout is used.
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: constants.RequestTimeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// HTTPClient exposes the shared HTTP client so the mock interceptor can
// attach to it.
func (c *Client) HTTPClient() *http.Client {
	return c.httpc
}

// SetAuthToken sets the default Authorization header used by all
// subsequent requests.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// RemoveAuthToken clears the default Authorization header.
func (c *Client) RemoveAuthToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// Token returns the currently configured bearer token, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both auth endpoints.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// GoalRequest is the payload for POST /habits. GoalDuration is aliased
// to target_days because the backend grew a second name for the same
// field; both are sent.
type GoalRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
	GoalDuration int    `json:"goal_duration"`
	TargetDays   int    `json:"target_days"`
	GoalUnit     string `json:"goal_unit"`
}

// CheckInResult is returned by POST /habits/{id}/check-ins.
type CheckInResult struct {
	CheckIn     models.CheckIn `json:"check_in"`
	StreakCount int            `json:"streak_count"`
	Habit       models.Habit   `json:"habit"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Habits(ctx context.Context) ([]models.Habit, error) {
	var habits []models.Habit
	if err := c.do(ctx, http.MethodGet, "/habits", nil, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (c *Client) CreateGoal(ctx context.Context, req GoalRequest) (*models.Habit, error) {
	if req.TargetDays == 0 {
		req.TargetDays = req.GoalDuration
	}

	var habit models.Habit
	if err := c.do(ctx, http.MethodPost, "/habits", req, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

func (c *Client) CreateCheckIn(ctx context.Context, habitID int, notes string) (*CheckInResult, error) {
	body := struct {
		Notes string `json:"notes"`
	}{Notes: notes}

	var result CheckInResult
	path := fmt.Sprintf("/habits/%d/check-ins", habitID)
	if err := c.do(ctx, http.MethodPost, path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// do issues one request and decodes the response body into out through
// the envelope normalizer.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug("API request", "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode, Message: errorMessage(data)}
		logger.Debug("API error", "method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}

	return decodeBody(data, out)
}
