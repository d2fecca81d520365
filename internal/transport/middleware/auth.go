package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// SessionCookieName is the cookie holding the signed credential.
const SessionCookieName = "token"

type tokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Auth extracts the credential from the session cookie or the Authorization
// header, verifies it, and stores the identity in the request context.
// Requests without a credential pass through anonymously. A credential that
// fails verification also passes through anonymously, with the stale session
// cookie expired so the client stops presenting it; RequireAuth still rejects
// those requests on protected routes. Every request re-verifies, nothing is
// cached.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, fromCookie := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := verifier.Verify(token)
			if err != nil {
				if fromCookie {
					expireSessionCookie(w)
				}
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no verified identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.IdentityFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken prefers the session cookie and falls back to a bearer header.
// The second return reports whether the credential came from the cookie.
func extractToken(r *http.Request) (string, bool) {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value, true
	}
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), false
}

// expireSessionCookie tells the client to drop a credential that no longer
// verifies.
func expireSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
