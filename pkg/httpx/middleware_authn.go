package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

// Authenticator resolves the bearer credential of a request to a user id.
// present is false when the request carried no Authorization header at all.
type Authenticator interface {
	Authenticate(ctx context.Context, token string, present bool) (userID string, err error)
}

// AuthErrorWriter renders a rejected request.
type AuthErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// BearerToken returns the credential in the Authorization header with an
// optional "Bearer " prefix removed. ok is false when the header is absent.
func BearerToken(r *http.Request) (token string, ok bool) {
	values := r.Header.Values("Authorization")
	if len(values) == 0 {
		return "", false
	}

	raw := strings.TrimSpace(values[0])
	if len(raw) >= len("Bearer ") && strings.EqualFold(raw[:len("Bearer ")], "Bearer ") {
		raw = strings.TrimSpace(raw[len("Bearer "):])
	} else if strings.EqualFold(raw, "Bearer") {
		raw = ""
	}
	return raw, true
}

// AuthnMiddleware rejects requests whose credential does not authenticate
// and stores the resolved user id in the context for downstream handlers.
func AuthnMiddleware(a Authenticator, onError AuthErrorWriter) Middleware {
	if onError == nil {
		onError = func(w http.ResponseWriter, _ *http.Request, _ error) {
			WriteBearerError(w, "invalid_token")
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, present := BearerToken(r)

			userID, err := a.Authenticate(r.Context(), token, present)
			if err != nil {
				onError(w, r, err)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			ctx = slogx.With(ctx, "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WriteBearerError sets an RFC 6750 challenge header. The caller writes the
// status and body.
func WriteBearerError(w http.ResponseWriter, code string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+code+`"`)
}
