package web

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// apiError writes a JSON error response with a message field.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, map[string]string{"message": msg}, code)
}

// serverError logs the cause and returns an opaque 500.
func serverError(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	apiError(w, "Server error", http.StatusInternalServerError)
}

// decodeBody decodes a JSON request body into dest, writing the appropriate
// error response on failure. An empty body decodes to the zero value, matching
// clients that send no payload. Returns false when a response was written.
func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dest)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		apiError(w, "Request payload too large. Upload fewer/smaller images.", http.StatusRequestEntityTooLarge)
		return false
	}

	serverError(w, err)
	return false
}
