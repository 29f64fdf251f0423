package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/fileexplorer/internal/common"
)

type ctxKey string

const usernameKey ctxKey = "username"

// usernameFrom extracts the authenticated username attached by the auth
// middleware, if any.
func usernameFrom(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

// tokenFromRequest reads the session token from the HTTP-only cookie, or
// from an "Authorization: Bearer <token>" header as fallback.
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(common.TokenCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	return ""
}

// optionalAuth attaches an identity to the request context when a valid
// token is present. A missing or invalid token simply means no identity;
// the request always proceeds.
func (s *HTTPServer) optionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := tokenFromRequest(r); token != "" {
			if username, err := s.users.VerifyToken(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), usernameKey, username))
			}
		}
		next(w, r)
	}
}

// requireAuth rejects the request with a 401 JSON error unless a valid
// token is presented. No identity details leak on failure.
func (s *HTTPServer) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Authentication required"})
			return
		}
		username, err := s.users.VerifyToken(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid token"})
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), usernameKey, username)))
	}
}
