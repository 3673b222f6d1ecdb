package web

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rmagbanua/propstore/internal/auth"
	"github.com/rmagbanua/propstore/internal/property"
	"github.com/rmagbanua/propstore/internal/store"
)

// itemsResponse is the list envelope shared by the public and admin
// collection endpoints.
type itemsResponse struct {
	Items interface{} `json:"items"`
}

// handlePublicProperties serves the unauthenticated catalogue.
func (s *Server) handlePublicProperties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.handleNotFound(w, r)
		return
	}

	props, err := s.props.List()
	if err != nil {
		serverError(w, err)
		return
	}
	if props == nil {
		props = []property.Property{}
	}

	apiJSON(w, itemsResponse{Items: props}, http.StatusOK)
}

// handleLogin verifies admin credentials and issues a session token.
// Every attempt is recorded in the auth log before the response is written.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.handleNotFound(w, r)
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		apiError(w, "Username and password are required.", http.StatusBadRequest)
		return
	}

	var success bool
	user, err := s.users.FindUser(username)
	switch {
	case err == nil:
		success = user.Verify(req.Password)
	case errors.Is(err, store.ErrUserNotFound):
		success = false
	default:
		serverError(w, err)
		return
	}

	if err := s.authLog.AppendLog(auth.LogEntry{
		Timestamp: time.Now().UTC(),
		Username:  username,
		Success:   success,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	}); err != nil {
		serverError(w, err)
		return
	}

	if !success {
		apiError(w, "Invalid credentials.", http.StatusUnauthorized)
		return
	}

	token, _, err := s.sessions.Issue(username)
	if err != nil {
		serverError(w, err)
		return
	}

	apiJSON(w, map[string]interface{}{
		"token":       token,
		"username":    username,
		"expiresInMs": auth.SessionTTL.Milliseconds(),
	}, http.StatusOK)
}

// handleAuthLogs returns the retained login attempts, newest first.
func (s *Server) handleAuthLogs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.handleNotFound(w, r)
		return
	}
	if !s.requireSession(w, r) {
		return
	}

	logs, err := s.authLog.RecentLogs()
	if err != nil {
		serverError(w, err)
		return
	}
	if logs == nil {
		logs = []auth.LogEntry{}
	}

	apiJSON(w, itemsResponse{Items: logs}, http.StatusOK)
}

// handleAdminProperties serves the admin collection: list and create.
func (s *Server) handleAdminProperties(w http.ResponseWriter, r *http.Request) {
	if !s.requireSession(w, r) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handlePublicProperties(w, r)
	case http.MethodPost:
		s.createProperty(w, r)
	default:
		s.handleNotFound(w, r)
	}
}

func (s *Server) createProperty(w http.ResponseWriter, r *http.Request) {
	var patch property.Patch
	if !decodeBody(w, r, &patch) {
		return
	}

	rec := property.NewFromPatch(patch)
	if err := property.Validate(rec); err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := s.props.Create(rec)
	if err != nil {
		serverError(w, err)
		return
	}

	apiJSON(w, map[string]interface{}{"item": created}, http.StatusCreated)
}

// handleAdminPropertyByID routes /api/admin/properties/{id}.
func (s *Server) handleAdminPropertyByID(w http.ResponseWriter, r *http.Request) {
	if !s.requireSession(w, r) {
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/admin/properties/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 0 {
		apiError(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.updateProperty(w, r, id)
	case http.MethodDelete:
		s.deleteProperty(w, id)
	default:
		s.handleNotFound(w, r)
	}
}

func (s *Server) updateProperty(w http.ResponseWriter, r *http.Request, id int64) {
	existing, err := s.props.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		apiError(w, "Property not found", http.StatusNotFound)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}

	var patch property.Patch
	if !decodeBody(w, r, &patch) {
		return
	}

	merged := patch.Apply(existing)
	if err := property.Validate(merged); err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := s.props.Update(merged)
	if errors.Is(err, store.ErrNotFound) {
		apiError(w, "Property not found", http.StatusNotFound)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}

	apiJSON(w, map[string]interface{}{"item": updated}, http.StatusOK)
}

func (s *Server) deleteProperty(w http.ResponseWriter, id int64) {
	removed, err := s.props.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		apiError(w, "Property not found", http.StatusNotFound)
		return
	}
	if err != nil {
		serverError(w, err)
		return
	}

	apiJSON(w, map[string]interface{}{"item": removed}, http.StatusOK)
}

// requireSession validates the bearer token. Any valid session may perform
// any admin operation; there is deliberately no per-user authorization.
func (s *Server) requireSession(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := s.sessions.Validate(bearerToken(r)); !ok {
		apiError(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
