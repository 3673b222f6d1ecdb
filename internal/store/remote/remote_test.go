package remote

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rmagbanua/propstore/internal/property"
	"github.com/rmagbanua/propstore/internal/store"
)

// fakeHostedStore is an in-memory stand-in for the hosted properties
// collection. It speaks the same JSON record shape over REST paths.
type fakeHostedStore struct {
	t      *testing.T
	apiKey string
	nextID int64
	props  map[int64]property.Property
}

func newFakeHostedStore(t *testing.T, apiKey string) *fakeHostedStore {
	t.Helper()
	return &fakeHostedStore{t: t, apiKey: apiKey, nextID: 1, props: make(map[int64]property.Property)}
}

func (f *fakeHostedStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.apiKey != "" && r.Header.Get("x-apikey") != f.apiKey {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	switch {
	case r.URL.Path == "/properties" && r.Method == http.MethodGet:
		list := make([]property.Property, 0, len(f.props))
		for _, p := range f.props {
			list = append(list, p)
		}
		f.writeJSON(w, list)

	case r.URL.Path == "/properties" && r.Method == http.MethodPost:
		var p property.Property
		f.readJSON(r, &p)
		p.ID = f.nextID
		f.nextID++
		f.props[p.ID] = p
		f.writeJSON(w, p)

	case strings.HasPrefix(r.URL.Path, "/properties/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/properties/"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		existing, ok := f.props[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			f.writeJSON(w, existing)
		case http.MethodPut:
			var p property.Property
			f.readJSON(r, &p)
			p.ID = id
			f.props[id] = p
			f.writeJSON(w, p)
		case http.MethodDelete:
			delete(f.props, id)
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}

	default:
		http.NotFound(w, r)
	}
}

func (f *fakeHostedStore) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		f.t.Errorf("encode response: %v", err)
	}
}

func (f *fakeHostedStore) readJSON(r *http.Request, v interface{}) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		f.t.Fatalf("decode request: %v", err)
	}
}

func testClient(t *testing.T, apiKey string) (*Client, *fakeHostedStore) {
	t.Helper()
	fake := newFakeHostedStore(t, apiKey)
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return New(srv.URL, apiKey), fake
}

func TestCreateAndGet(t *testing.T) {
	c, _ := testClient(t, "")

	created, err := c.Create(property.Property{
		Name: "Hosted Villa", Type: "House", Location: "Cloudtown",
		Price: 1000000, Size: "90 sqm", Features: "None",
		Status:    property.StatusAvailable,
		ImageURLs: []string{"https://cdn.example/a.jpg"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("id = %d, want 1", created.ID)
	}
	if created.ImageURL != "https://cdn.example/a.jpg" {
		t.Errorf("imageUrl = %q, want the gallery cover", created.ImageURL)
	}

	got, err := c.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Hosted Villa" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestGetMissingMapsToNotFound(t *testing.T) {
	c, _ := testClient(t, "")

	if _, err := c.Get(42); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	c, fake := testClient(t, "")

	created, err := c.Create(property.Property{
		Name: "Hosted Lot", Type: "Lot", Location: "Cloudtown",
		Price: 500000, Size: "200 sqm", Features: "None",
		Status: property.StatusAvailable,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Status = property.StatusUnderOCU
	updated, err := c.Update(created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != property.StatusUnderOCU {
		t.Errorf("status = %q", updated.Status)
	}

	removed, err := c.Delete(created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Delete returns the record as it was before removal.
	if removed.Status != property.StatusUnderOCU {
		t.Errorf("removed status = %q", removed.Status)
	}
	if len(fake.props) != 0 {
		t.Errorf("hosted store still holds %d records", len(fake.props))
	}

	if _, err := c.Delete(created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
	if _, err := c.Update(updated); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("update after delete: err = %v, want ErrNotFound", err)
	}
}

func TestAPIKeyHeaderSent(t *testing.T) {
	c, _ := testClient(t, "secret-key")

	if _, err := c.List(); err != nil {
		t.Fatalf("list with key: %v", err)
	}

	// The same server rejects a client without the key.
	noKey := New(c.baseURL, "")
	if _, err := noKey.List(); err == nil {
		t.Error("expected an error without the api key")
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, "")
	if _, err := c.List(); err == nil {
		t.Error("expected an error for a 500 response")
	}
}
