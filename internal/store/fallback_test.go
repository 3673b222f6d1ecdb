package store

import (
	"errors"
	"testing"

	"github.com/rmagbanua/propstore/internal/property"
)

// stubProperties is a scriptable Properties implementation.
type stubProperties struct {
	props   []property.Property
	err     error
	creates int
	updates int
	deletes int
}

func (s *stubProperties) List() ([]property.Property, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.props, nil
}

func (s *stubProperties) Get(id int64) (property.Property, error) {
	if s.err != nil {
		return property.Property{}, s.err
	}
	for _, p := range s.props {
		if p.ID == id {
			return p, nil
		}
	}
	return property.Property{}, ErrNotFound
}

func (s *stubProperties) Create(p property.Property) (property.Property, error) {
	if s.err != nil {
		return property.Property{}, s.err
	}
	s.creates++
	return p, nil
}

func (s *stubProperties) Update(p property.Property) (property.Property, error) {
	if s.err != nil {
		return property.Property{}, s.err
	}
	s.updates++
	return p, nil
}

func (s *stubProperties) Delete(id int64) (property.Property, error) {
	if s.err != nil {
		return property.Property{}, s.err
	}
	s.deletes++
	return property.Property{ID: id}, nil
}

func TestFallbackReadsPreferPrimary(t *testing.T) {
	primary := &stubProperties{props: []property.Property{{ID: 1, Name: "Primary"}}}
	local := &stubProperties{props: []property.Property{{ID: 1, Name: "Local"}}}
	f := &FallbackProperties{Primary: primary, Local: local}

	props, err := f.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(props) != 1 || props[0].Name != "Primary" {
		t.Errorf("list served %+v, want the primary copy", props)
	}

	got, err := f.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Primary" {
		t.Errorf("get served %q, want the primary copy", got.Name)
	}
}

func TestFallbackReadsUseLocalWhenPrimaryFails(t *testing.T) {
	primary := &stubProperties{err: errors.New("connection refused")}
	local := &stubProperties{props: []property.Property{{ID: 1, Name: "Local"}}}
	f := &FallbackProperties{Primary: primary, Local: local}

	props, err := f.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(props) != 1 || props[0].Name != "Local" {
		t.Errorf("list served %+v, want the local copy", props)
	}

	got, err := f.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Local" {
		t.Errorf("get served %q, want the local copy", got.Name)
	}
}

func TestFallbackGetNotFoundIsAuthoritative(t *testing.T) {
	primary := &stubProperties{}
	local := &stubProperties{props: []property.Property{{ID: 7, Name: "Only local"}}}
	f := &FallbackProperties{Primary: primary, Local: local}

	// The primary answered: the record does not exist. The stale local copy
	// must not resurrect it.
	if _, err := f.Get(7); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFallbackWritesNeverTouchLocal(t *testing.T) {
	primary := &stubProperties{props: []property.Property{{ID: 1}}}
	local := &stubProperties{}
	f := &FallbackProperties{Primary: primary, Local: local}

	if _, err := f.Create(property.Property{Name: "New"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.Update(property.Property{ID: 1}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := f.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if primary.creates != 1 || primary.updates != 1 || primary.deletes != 1 {
		t.Errorf("primary saw creates=%d updates=%d deletes=%d, want 1 each",
			primary.creates, primary.updates, primary.deletes)
	}
	if local.creates+local.updates+local.deletes != 0 {
		t.Error("mutations must not reach the local copy")
	}
}

func TestFallbackWriteErrorsSurface(t *testing.T) {
	primary := &stubProperties{err: errors.New("connection refused")}
	local := &stubProperties{}
	f := &FallbackProperties{Primary: primary, Local: local}

	if _, err := f.Create(property.Property{}); err == nil {
		t.Error("create should surface the primary error")
	}
	if local.creates != 0 {
		t.Error("failed create must not fall back to local")
	}
}
