package middleware

import (
	"encoding/json"
	"net/http"
)

const unauthorizedMessage = "No autorizado."

// writeError emits the same JSON error shape the REST handlers use.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
