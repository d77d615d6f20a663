package handlers

import (
	"net/http"

	"github.com/goccy/go-json"
)

// maxBodyBytes caps JSON request bodies; a submission is a handful of enums.
const maxBodyBytes = 64 << 10

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field messages keyed by JSON field name.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
