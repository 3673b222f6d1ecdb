package property

import (
	"fmt"
	"math"
)

// ValidationError describes the first rule a property record failed.
// Its message is returned verbatim to API callers.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Validate checks a fully merged record. The first failing rule
// short-circuits; callers must not persist a record that fails validation.
func Validate(p Property) error {
	required := []struct {
		name, value string
	}{
		{"name", p.Name},
		{"type", p.Type},
		{"location", p.Location},
		{"size", p.Size},
		{"features", p.Features},
		{"status", p.Status},
	}
	for _, f := range required {
		if f.value == "" {
			return invalid("%s is required", f.name)
		}
	}

	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price <= 0 {
		return invalid("price must be greater than 0")
	}
	if p.Bedrooms < 0 {
		return invalid("bedrooms must be 0 or more")
	}
	if p.Bathrooms < 0 {
		return invalid("bathrooms must be 0 or more")
	}
	if len(p.ImageURLs) > MaxImages {
		return invalid("Maximum of %d images per property.", MaxImages)
	}

	return nil
}
