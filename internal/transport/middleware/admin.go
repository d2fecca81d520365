package middleware

import (
	"net/http"

	"github.com/heartmarshall/taskboard-backend/pkg/ctxutil"
)

// RequireAdmin rejects non-admin callers with the same uniform body as a
// missing credential. The user service enforces the same rule again; this
// stops non-admin traffic at the edge.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}
		next.ServeHTTP(w, r)
	})
}
