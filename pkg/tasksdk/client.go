package tasksdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the tasks API. Unauthenticated operations live here; Login
// returns a Session for everything else.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the API served at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			// Login is delayed server side, leave plenty of headroom.
			Timeout: 15 * time.Second,
		},
	}
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, fullName, username, password string) (*UserResponse, error) {
	user, err := doJSON[UserResponse](ctx, c, http.MethodPost, "/v1/users", "", RegisterRequest{
		FullName: String(fullName),
		Username: String(username),
		Password: String(password),
	}, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login opens a new session for the user.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	resp, err := doJSON[SessionResponse](ctx, c, http.MethodPost, "/v1/sessions", "", LoginRequest{
		Username: String(username),
		Password: String(password),
	}, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return newSession(c, &resp), nil
}

// Livez calls the liveness probe.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz calls the readiness probe. A degraded service answers 503 with the
// same body, which is returned together with the *APIError.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var env Response[HealthResponse]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &env.Data, parseErrorResponse(resp, body)
	}
	return &env.Data, nil
}
