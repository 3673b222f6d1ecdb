// Package store defines the persistence interfaces for the property store
// service and a read-fallback wrapper for the remote backend.
package store

import (
	"errors"

	"github.com/rmagbanua/propstore/internal/auth"
	"github.com/rmagbanua/propstore/internal/property"
)

// ErrNotFound is returned when a property id is unknown.
var ErrNotFound = errors.New("property not found")

// ErrUserNotFound is returned when a username has no stored admin record.
var ErrUserNotFound = errors.New("user not found")

// Properties is the persisted property collection.
type Properties interface {
	// List returns every record in stored order.
	List() ([]property.Property, error)
	// Get returns the record with the given id or ErrNotFound.
	Get(id int64) (property.Property, error)
	// Create persists a new record, assigning a unique id, and returns it.
	Create(p property.Property) (property.Property, error)
	// Update replaces the record with p's id or returns ErrNotFound.
	Update(p property.Property) (property.Property, error)
	// Delete removes the record with the given id and returns it,
	// or ErrNotFound. Deleting twice is not an error the second caller
	// can distinguish from a never-existing id.
	Delete(id int64) (property.Property, error)
}

// Users is the persisted admin identity collection.
type Users interface {
	// FindUser returns the admin record for username or ErrUserNotFound.
	FindUser(username string) (auth.AdminUser, error)
	// CreateUser persists a new admin record.
	CreateUser(u auth.AdminUser) error
	// CountUsers returns the number of stored admin records.
	CountUsers() (int, error)
}

// AuthLog is the capped login-attempt log. Implementations retain at most
// auth.LogCap entries, dropping the oldest first.
type AuthLog interface {
	// AppendLog records one login attempt.
	AppendLog(e auth.LogEntry) error
	// RecentLogs returns the retained entries, newest first.
	RecentLogs() ([]auth.LogEntry, error)
}
