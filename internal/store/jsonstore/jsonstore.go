// Package jsonstore persists the property store's state as whole-file JSON
// documents under a single data directory. Every mutation re-reads the file,
// applies the change in memory, and rewrites the whole document; a per-file
// mutex serializes the read-modify-write cycle so concurrent admin writers
// cannot lose updates.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rmagbanua/propstore/internal/auth"
	"github.com/rmagbanua/propstore/internal/property"
	"github.com/rmagbanua/propstore/internal/store"
)

const (
	propertiesFile = "properties.json"
	adminUsersFile = "admin-users.json"
	authLogFile    = "auth-log.json"
)

// Store is a JSON-file-backed implementation of store.Properties,
// store.Users, and store.AuthLog. The process owns the files exclusively.
type Store struct {
	dir    string
	propMu sync.Mutex
	userMu sync.Mutex
	logMu  sync.Mutex
}

// Open creates the data directory if needed and seeds missing files:
// the default property catalogue, one bootstrap admin with the given
// credentials, and an empty auth log.
func Open(dir, adminUsername, adminPassword string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	s := &Store{dir: dir}

	if err := s.seed(adminUsername, adminPassword); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) seed(adminUsername, adminPassword string) error {
	propPath := s.path(propertiesFile)
	if _, err := os.Stat(propPath); os.IsNotExist(err) {
		if err := writeJSONFile(propPath, property.DefaultCatalogue()); err != nil {
			return fmt.Errorf("seeding properties: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("checking %s: %w", propPath, err)
	}

	userPath := s.path(adminUsersFile)
	if _, err := os.Stat(userPath); os.IsNotExist(err) {
		admin, err := auth.NewAdminUser(adminUsername, adminPassword)
		if err != nil {
			return fmt.Errorf("creating bootstrap admin: %w", err)
		}
		if err := writeJSONFile(userPath, []auth.AdminUser{admin}); err != nil {
			return fmt.Errorf("seeding admin users: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("checking %s: %w", userPath, err)
	}

	logPath := s.path(authLogFile)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		if err := writeJSONFile(logPath, []auth.LogEntry{}); err != nil {
			return fmt.Errorf("seeding auth log: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("checking %s: %w", logPath, err)
	}

	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// List implements store.Properties.
func (s *Store) List() ([]property.Property, error) {
	s.propMu.Lock()
	defer s.propMu.Unlock()
	return s.readProperties()
}

// Get implements store.Properties.
func (s *Store) Get(id int64) (property.Property, error) {
	s.propMu.Lock()
	defer s.propMu.Unlock()

	props, err := s.readProperties()
	if err != nil {
		return property.Property{}, err
	}
	for _, p := range props {
		if p.ID == id {
			return p, nil
		}
	}
	return property.Property{}, store.ErrNotFound
}

// Create implements store.Properties. IDs are assigned monotonically from
// the current maximum, so rapid concurrent creates cannot collide the way
// timestamp-derived ids could.
func (s *Store) Create(p property.Property) (property.Property, error) {
	s.propMu.Lock()
	defer s.propMu.Unlock()

	props, err := s.readProperties()
	if err != nil {
		return property.Property{}, err
	}

	var maxID int64
	for _, existing := range props {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	p.SyncImages()

	props = append(props, p)
	if err := s.writeProperties(props); err != nil {
		return property.Property{}, err
	}
	return p, nil
}

// Update implements store.Properties.
func (s *Store) Update(p property.Property) (property.Property, error) {
	s.propMu.Lock()
	defer s.propMu.Unlock()

	props, err := s.readProperties()
	if err != nil {
		return property.Property{}, err
	}

	for i, existing := range props {
		if existing.ID == p.ID {
			p.SyncImages()
			props[i] = p
			if err := s.writeProperties(props); err != nil {
				return property.Property{}, err
			}
			return p, nil
		}
	}
	return property.Property{}, store.ErrNotFound
}

// Delete implements store.Properties.
func (s *Store) Delete(id int64) (property.Property, error) {
	s.propMu.Lock()
	defer s.propMu.Unlock()

	props, err := s.readProperties()
	if err != nil {
		return property.Property{}, err
	}

	for i, existing := range props {
		if existing.ID == id {
			removed := existing
			props = append(props[:i], props[i+1:]...)
			if err := s.writeProperties(props); err != nil {
				return property.Property{}, err
			}
			return removed, nil
		}
	}
	return property.Property{}, store.ErrNotFound
}

// FindUser implements store.Users.
func (s *Store) FindUser(username string) (auth.AdminUser, error) {
	s.userMu.Lock()
	defer s.userMu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return auth.AdminUser{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return auth.AdminUser{}, store.ErrUserNotFound
}

// CreateUser implements store.Users.
func (s *Store) CreateUser(u auth.AdminUser) error {
	s.userMu.Lock()
	defer s.userMu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Username == u.Username {
			return fmt.Errorf("user already exists: %s", u.Username)
		}
	}
	users = append(users, u)
	return writeJSONFile(s.path(adminUsersFile), users)
}

// CountUsers implements store.Users.
func (s *Store) CountUsers() (int, error) {
	s.userMu.Lock()
	defer s.userMu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// AppendLog implements store.AuthLog, trimming to the newest auth.LogCap
// entries before writing.
func (s *Store) AppendLog(e auth.LogEntry) error {
	s.logMu.Lock()
	defer s.logMu.Unlock()

	var entries []auth.LogEntry
	if err := readJSONFile(s.path(authLogFile), &entries); err != nil {
		return err
	}

	entries = append(entries, e)
	if len(entries) > auth.LogCap {
		entries = entries[len(entries)-auth.LogCap:]
	}
	return writeJSONFile(s.path(authLogFile), entries)
}

// RecentLogs implements store.AuthLog, newest first.
func (s *Store) RecentLogs() ([]auth.LogEntry, error) {
	s.logMu.Lock()
	defer s.logMu.Unlock()

	var entries []auth.LogEntry
	if err := readJSONFile(s.path(authLogFile), &entries); err != nil {
		return nil, err
	}

	out := make([]auth.LogEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

// readProperties must be called with propMu held.
func (s *Store) readProperties() ([]property.Property, error) {
	var props []property.Property
	if err := readJSONFile(s.path(propertiesFile), &props); err != nil {
		return nil, err
	}
	for i := range props {
		props[i].SyncImages()
	}
	return props, nil
}

// writeProperties must be called with propMu held.
func (s *Store) writeProperties(props []property.Property) error {
	return writeJSONFile(s.path(propertiesFile), props)
}

// readUsers must be called with userMu held.
func (s *Store) readUsers() ([]auth.AdminUser, error) {
	var users []auth.AdminUser
	if err := readJSONFile(s.path(adminUsersFile), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// readJSONFile decodes a whole-file JSON document. A missing file leaves
// dest untouched, so callers see the zero value (empty list).
func readJSONFile(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// writeJSONFile rewrites a whole-file JSON document via a temp file and
// rename so a crash mid-write cannot truncate the document.
func writeJSONFile(path string, data interface{}) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
