package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	gotToken   string
	gotPresent bool
	userID     string
	err        error
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string, present bool) (string, error) {
	s.gotToken = token
	s.gotPresent = present
	return s.userID, s.err
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name        string
		header      *string
		wantToken   string
		wantPresent bool
	}{
		{"absent", nil, "", false},
		{"empty", ptr(""), "", true},
		{"bearer prefix", ptr("Bearer abc123"), "abc123", true},
		{"lowercase prefix", ptr("bearer abc123"), "abc123", true},
		{"raw token", ptr("abc123"), "abc123", true},
		{"prefix only", ptr("Bearer"), "", true},
		{"whitespace", ptr("   "), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != nil {
				req.Header.Set("Authorization", *tt.header)
			}

			token, present := httpx.BearerToken(req)
			require.Equal(t, tt.wantToken, token)
			require.Equal(t, tt.wantPresent, present)
		})
	}
}

func TestAuthnMiddleware(t *testing.T) {
	t.Run("injects user id", func(t *testing.T) {
		auth := &stubAuthenticator{userID: "user-1"}

		var got string
		h := httpx.AuthnMiddleware(auth, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = httpx.UserIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer tok")
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, "user-1", got)
		require.Equal(t, "tok", auth.gotToken)
		require.True(t, auth.gotPresent)
	})

	t.Run("rejects with error writer", func(t *testing.T) {
		denied := errors.New("denied")
		auth := &stubAuthenticator{err: denied}

		var gotErr error
		h := httpx.AuthnMiddleware(auth, func(w http.ResponseWriter, r *http.Request, err error) {
			gotErr = err
			w.WriteHeader(http.StatusUnauthorized)
		})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.ErrorIs(t, gotErr, denied)
		require.False(t, auth.gotPresent)
	})
}

func TestWriteEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteEnvelope(rec, http.StatusCreated, map[string]string{"id": "1"}, "Task created")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "no-cache, no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"statusCode":201,"success":true,"messages":["Task created"],"data":{"id":"1"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	httpx.Cache(rec)
	httpx.WriteEnvelope(rec, http.StatusNotFound, nil)

	require.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"statusCode":404,"success":false,"messages":[]}`, rec.Body.String())
}

func ptr(s string) *string { return &s }
