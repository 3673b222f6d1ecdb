package property

import "strings"

// Patch is a partial property update. Nil fields are omitted and keep the
// value from the record the patch is applied over; this replaces the loose
// merge-then-coerce semantics of the admin console's original JSON payloads.
type Patch struct {
	Name      *string   `json:"name"`
	Type      *string   `json:"type"`
	Location  *string   `json:"location"`
	Price     *float64  `json:"price"`
	Size      *string   `json:"size"`
	Bedrooms  *float64  `json:"bedrooms"`
	Bathrooms *float64  `json:"bathrooms"`
	Features  *string   `json:"features"`
	Status    *string   `json:"status"`
	ImageURLs *[]string `json:"imageUrls"`
	ImageURL  *string   `json:"imageUrl"`
}

// Apply merges the patch over existing and returns the resulting record.
// Text fields are trimmed; the image list is normalized and ImageURL is
// recomputed. The result is not validated; call Validate on it before
// persisting. The ID of existing is always preserved.
func (pt Patch) Apply(existing Property) Property {
	out := existing.Clone()

	if pt.Name != nil {
		out.Name = strings.TrimSpace(*pt.Name)
	}
	if pt.Type != nil {
		out.Type = strings.TrimSpace(*pt.Type)
	}
	if pt.Location != nil {
		out.Location = strings.TrimSpace(*pt.Location)
	}
	if pt.Price != nil {
		out.Price = *pt.Price
	}
	if pt.Size != nil {
		out.Size = strings.TrimSpace(*pt.Size)
	}
	if pt.Bedrooms != nil {
		out.Bedrooms = int(*pt.Bedrooms)
		if float64(out.Bedrooms) != *pt.Bedrooms {
			// Preserve the fractional input so validation can reject it.
			out.Bedrooms = -1
		}
	}
	if pt.Bathrooms != nil {
		out.Bathrooms = int(*pt.Bathrooms)
		if float64(out.Bathrooms) != *pt.Bathrooms {
			out.Bathrooms = -1
		}
	}
	if pt.Features != nil {
		out.Features = strings.TrimSpace(*pt.Features)
	}
	if pt.Status != nil {
		out.Status = strings.TrimSpace(*pt.Status)
	}

	switch {
	case pt.ImageURLs != nil:
		out.ImageURLs = NormalizeImageURLs(*pt.ImageURLs)
	case pt.ImageURL != nil:
		out.ImageURLs = NormalizeImageURLs([]string{*pt.ImageURL})
	}
	out.SyncImages()

	return out
}

// NewFromPatch builds a fresh record from a patch, defaulting status to
// Available when the patch does not carry one.
func NewFromPatch(pt Patch) Property {
	base := Property{Status: StatusAvailable, ImageURLs: []string{}}
	return pt.Apply(base)
}
