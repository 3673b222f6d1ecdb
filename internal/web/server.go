// Package web provides the HTTP server and JSON API handlers for the
// property store service.
package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rmagbanua/propstore/internal/auth"
	"github.com/rmagbanua/propstore/internal/logging"
	"github.com/rmagbanua/propstore/internal/store"
)

// MaxBodyBytes caps request bodies. Sized to admit a property payload with
// several inline-encoded images.
const MaxBodyBytes = 35 << 20

// Server is the property store HTTP server.
type Server struct {
	props    store.Properties
	users    store.Users
	authLog  store.AuthLog
	sessions auth.Sessions
	handler  http.Handler
}

// NewServer wires handlers over the given stores and session table.
func NewServer(props store.Properties, users store.Users, authLog store.AuthLog, sessions auth.Sessions) *Server {
	s := &Server{
		props:    props,
		users:    users,
		authLog:  authLog,
		sessions: sessions,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/properties", s.handlePublicProperties)
	mux.HandleFunc("/api/admin/login", s.handleLogin)
	mux.HandleFunc("/api/admin/auth-logs", s.handleAuthLogs)
	mux.HandleFunc("/api/admin/properties", s.handleAdminProperties)
	mux.HandleFunc("/api/admin/properties/", s.handleAdminPropertyByID)
	mux.HandleFunc("/", s.handleNotFound)

	s.handler = withRecovery(withCORS(withBodyLimit(mux)))

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("property store API listening", "addr", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.handleNotFound(w, r)
		return
	}
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	apiError(w, "Route not found", http.StatusNotFound)
}
