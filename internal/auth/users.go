package auth

import (
	"fmt"
	"strings"
)

// Bootstrap admin credentials, created on first run when no users exist.
// Deployments override these through configuration and should rotate the
// password immediately.
const (
	BootstrapUsername = "admin"
	BootstrapPassword = "ChangeMe123!"
)

// AdminUser is a stored admin identity. The plaintext password is never
// persisted; Salt and Hash are hex-encoded scrypt parameters.
type AdminUser struct {
	Username string `json:"username"`
	Salt     string `json:"salt"`
	Hash     string `json:"hash"`
}

// NewAdminUser creates an admin record for the given credentials.
func NewAdminUser(username, password string) (AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return AdminUser{}, fmt.Errorf("username is required")
	}
	if password == "" {
		return AdminUser{}, fmt.Errorf("password is required")
	}

	salt, hash, err := HashPassword(password)
	if err != nil {
		return AdminUser{}, err
	}

	return AdminUser{Username: username, Salt: salt, Hash: hash}, nil
}

// Verify reports whether password matches this user's stored verifier.
func (u AdminUser) Verify(password string) bool {
	return VerifyPassword(password, u.Salt, u.Hash)
}
