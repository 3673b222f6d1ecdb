// Package property provides the property listing domain model.
package property

// Property status values used by the admin console. Presence is validated;
// the set itself is a convention, not enforced.
const (
	StatusAvailable = "Available"
	StatusUnderOCU  = "Under OCU"
)

// MaxImages is the maximum number of images a property may carry.
const MaxImages = 10

// Property represents a listed property record.
//
// ImageURL is a derived convenience field: it always equals the first entry
// of ImageURLs, or "" when the list is empty.
type Property struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Location  string   `json:"location"`
	Price     float64  `json:"price"`
	Size      string   `json:"size"`
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms int      `json:"bathrooms"`
	Features  string   `json:"features"`
	Status    string   `json:"status"`
	ImageURLs []string `json:"imageUrls"`
	ImageURL  string   `json:"imageUrl"`
}

// SyncImages recomputes the derived ImageURL field and guarantees ImageURLs
// marshals as an array rather than null.
func (p *Property) SyncImages() {
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	if len(p.ImageURLs) > 0 {
		p.ImageURL = p.ImageURLs[0]
	} else {
		p.ImageURL = ""
	}
}

// Clone returns a deep copy of p.
func (p Property) Clone() Property {
	out := p
	out.ImageURLs = make([]string, len(p.ImageURLs))
	copy(out.ImageURLs, p.ImageURLs)
	return out
}
