package web

import (
	"log/slog"
	"net/http"
)

// withCORS answers preflight requests and marks every response permissive.
// The admin console may be served from any origin.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")

		if r.Method == http.MethodOptions {
			apiJSON(w, map[string]bool{"ok": true}, http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withBodyLimit caps request bodies at MaxBodyBytes. Reads past the cap fail
// with *http.MaxBytesError, which decodeBody turns into a 413.
func withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// withRecovery collapses panics to a generic 500 so internals never leak.
func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic handling request", "path", r.URL.Path, "panic", rec)
				apiError(w, "Server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
