package store

import (
	"errors"
	"log/slog"

	"github.com/rmagbanua/propstore/internal/property"
)

// FallbackProperties serves reads from Primary, falling back to Local when
// the primary is unreachable so the public listing never hard-fails.
// Mutations go to Primary only; falling back on a write would silently fork
// the two copies.
type FallbackProperties struct {
	Primary Properties
	Local   Properties
}

// List implements Properties.
func (f *FallbackProperties) List() ([]property.Property, error) {
	props, err := f.Primary.List()
	if err != nil {
		slog.Warn("primary store unavailable, serving local copy", "error", err)
		return f.Local.List()
	}
	return props, nil
}

// Get implements Properties.
func (f *FallbackProperties) Get(id int64) (property.Property, error) {
	p, err := f.Primary.Get(id)
	if errors.Is(err, ErrNotFound) {
		return property.Property{}, err
	}
	if err != nil {
		slog.Warn("primary store unavailable, serving local copy", "error", err)
		return f.Local.Get(id)
	}
	return p, nil
}

// Create implements Properties.
func (f *FallbackProperties) Create(p property.Property) (property.Property, error) {
	return f.Primary.Create(p)
}

// Update implements Properties.
func (f *FallbackProperties) Update(p property.Property) (property.Property, error) {
	return f.Primary.Update(p)
}

// Delete implements Properties.
func (f *FallbackProperties) Delete(id int64) (property.Property, error) {
	return f.Primary.Delete(id)
}
