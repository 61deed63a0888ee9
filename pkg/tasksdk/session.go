package tasksdk

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Session is a logged-in user. It holds the current token pair and is safe
// for concurrent use.
type Session struct {
	client *Client

	mu               sync.RWMutex
	id               string
	accessToken      string
	refreshToken     string
	accessExpiresAt  time.Time
	refreshExpiresAt time.Time
}

func newSession(client *Client, resp *SessionResponse) *Session {
	s := &Session{client: client}
	s.apply(resp)
	return s
}

func (s *Session) apply(resp *SessionResponse) {
	now := time.Now()
	s.id = resp.SessionID
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.accessExpiresAt = now.Add(time.Duration(resp.AccessTokenExpiresIn) * time.Second)
	s.refreshExpiresAt = now.Add(time.Duration(resp.RefreshTokenExpiresIn) * time.Second)
}

// ID returns the session id.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// AccessToken returns the current access token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// AccessExpiresAt is the client-side estimate of when the access token
// stops working.
func (s *Session) AccessExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessExpiresAt
}

// Refresh rotates both tokens. The previous pair stops working as soon as the
// call succeeds.
func (s *Session) Refresh(ctx context.Context) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, err := doJSON[SessionResponse](ctx, s.client, http.MethodPatch,
		"/v1/sessions/"+s.id, s.accessToken,
		RefreshRequest{RefreshToken: String(s.refreshToken)}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	s.apply(&resp)
	return &resp, nil
}

// Logout deletes the session on the server.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.RLock()
	id, token := s.id, s.accessToken
	s.mu.RUnlock()

	_, err := doJSON[LogoutResponse](ctx, s.client, http.MethodDelete, "/v1/sessions/"+id, token, nil, http.StatusOK)
	return err
}
