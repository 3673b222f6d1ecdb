// Package sqlitestore implements the store interfaces over an embedded
// SQLite database. It is the alternative to the flat-file jsonstore for
// deployments that want transactional writes.
package sqlitestore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rmagbanua/propstore/internal/auth"
	"github.com/rmagbanua/propstore/internal/db"
	"github.com/rmagbanua/propstore/internal/property"
	"github.com/rmagbanua/propstore/internal/store"
)

// Store is a SQLite-backed implementation of store.Properties, store.Users,
// and store.AuthLog.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, runs migrations, and seeds an empty
// instance with the default catalogue and a bootstrap admin.
func Open(path, adminUsername, adminPassword string) (*Store, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: database}
	if err := s.seed(adminUsername, adminPassword); err != nil {
		closeErr := database.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close: %v)", err, closeErr)
		}
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) seed(adminUsername, adminPassword string) error {
	var propCount int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM properties").Scan(&propCount); err != nil {
		return fmt.Errorf("counting properties: %w", err)
	}
	if propCount == 0 {
		for _, p := range property.DefaultCatalogue() {
			if _, err := s.Create(p); err != nil {
				return fmt.Errorf("seeding catalogue: %w", err)
			}
		}
	}

	userCount, err := s.CountUsers()
	if err != nil {
		return err
	}
	if userCount == 0 {
		admin, err := auth.NewAdminUser(adminUsername, adminPassword)
		if err != nil {
			return fmt.Errorf("creating bootstrap admin: %w", err)
		}
		if err := s.CreateUser(admin); err != nil {
			return err
		}
	}

	return nil
}

const selectColumns = `id, name, type, location, price, size, bedrooms, bathrooms, features, status, image_urls`

// List implements store.Properties.
func (s *Store) List() ([]property.Property, error) {
	rows, err := s.db.Query(fmt.Sprintf("SELECT %s FROM properties ORDER BY id", selectColumns))
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			fmt.Printf("warning: closing rows: %v\n", cerr)
		}
	}()

	var props []property.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}

	return props, nil
}

// Get implements store.Properties.
func (s *Store) Get(id int64) (property.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = ?", selectColumns)
	p, err := scanProperty(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return property.Property{}, store.ErrNotFound
	}
	if err != nil {
		return property.Property{}, fmt.Errorf("querying property %d: %w", id, err)
	}
	return p, nil
}

// Create implements store.Properties. The seed catalogue carries fixed ids,
// so an explicit id is honored; otherwise SQLite assigns the next one.
func (s *Store) Create(p property.Property) (property.Property, error) {
	p.SyncImages()
	images, err := json.Marshal(p.ImageURLs)
	if err != nil {
		return property.Property{}, fmt.Errorf("encoding image urls: %w", err)
	}

	var result sql.Result
	if p.ID > 0 {
		result, err = s.db.Exec(
			`INSERT INTO properties (id, name, type, location, price, size, bedrooms, bathrooms, features, status, image_urls)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Type, p.Location, p.Price, p.Size, p.Bedrooms, p.Bathrooms, p.Features, p.Status, string(images),
		)
	} else {
		result, err = s.db.Exec(
			`INSERT INTO properties (name, type, location, price, size, bedrooms, bathrooms, features, status, image_urls)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.Type, p.Location, p.Price, p.Size, p.Bedrooms, p.Bathrooms, p.Features, p.Status, string(images),
		)
	}
	if err != nil {
		return property.Property{}, fmt.Errorf("inserting property: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return property.Property{}, fmt.Errorf("getting insert id: %w", err)
	}

	return s.Get(id)
}

// Update implements store.Properties.
func (s *Store) Update(p property.Property) (property.Property, error) {
	p.SyncImages()
	images, err := json.Marshal(p.ImageURLs)
	if err != nil {
		return property.Property{}, fmt.Errorf("encoding image urls: %w", err)
	}

	result, err := s.db.Exec(
		`UPDATE properties
		 SET name = ?, type = ?, location = ?, price = ?, size = ?, bedrooms = ?, bathrooms = ?,
		     features = ?, status = ?, image_urls = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		p.Name, p.Type, p.Location, p.Price, p.Size, p.Bedrooms, p.Bathrooms, p.Features, p.Status, string(images), p.ID,
	)
	if err != nil {
		return property.Property{}, fmt.Errorf("updating property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return property.Property{}, fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return property.Property{}, store.ErrNotFound
	}

	return s.Get(p.ID)
}

// Delete implements store.Properties.
func (s *Store) Delete(id int64) (property.Property, error) {
	removed, err := s.Get(id)
	if err != nil {
		return property.Property{}, err
	}

	if _, err := s.db.Exec("DELETE FROM properties WHERE id = ?", id); err != nil {
		return property.Property{}, fmt.Errorf("deleting property: %w", err)
	}

	return removed, nil
}

// FindUser implements store.Users.
func (s *Store) FindUser(username string) (auth.AdminUser, error) {
	var u auth.AdminUser
	err := s.db.QueryRow(
		"SELECT username, salt, hash FROM admin_users WHERE username = ?", username,
	).Scan(&u.Username, &u.Salt, &u.Hash)
	if err == sql.ErrNoRows {
		return auth.AdminUser{}, store.ErrUserNotFound
	}
	if err != nil {
		return auth.AdminUser{}, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

// CreateUser implements store.Users.
func (s *Store) CreateUser(u auth.AdminUser) error {
	if _, err := s.db.Exec(
		"INSERT INTO admin_users (username, salt, hash) VALUES (?, ?, ?)",
		u.Username, u.Salt, u.Hash,
	); err != nil {
		return fmt.Errorf("adding user: %w", err)
	}
	return nil
}

// CountUsers implements store.Users.
func (s *Store) CountUsers() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM admin_users").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

// AppendLog implements store.AuthLog. The insert and the trim to the newest
// auth.LogCap rows commit together; the table never holds more than the cap.
func (s *Store) AppendLog(e auth.LogEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting auth log write: %w", err)
	}
	defer func() {
		// No-op after Commit.
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(
		"INSERT INTO auth_log (timestamp, username, success, ip, user_agent) VALUES (?, ?, ?, ?, ?)",
		e.Timestamp, e.Username, e.Success, e.IP, e.UserAgent,
	); err != nil {
		return fmt.Errorf("appending auth log: %w", err)
	}

	if _, err := tx.Exec(
		`DELETE FROM auth_log WHERE id NOT IN (
			SELECT id FROM auth_log ORDER BY id DESC LIMIT ?
		)`, auth.LogCap,
	); err != nil {
		return fmt.Errorf("trimming auth log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing auth log: %w", err)
	}
	return nil
}

// RecentLogs implements store.AuthLog, newest first.
func (s *Store) RecentLogs() ([]auth.LogEntry, error) {
	rows, err := s.db.Query(
		"SELECT timestamp, username, success, ip, user_agent FROM auth_log ORDER BY id DESC LIMIT ?",
		auth.LogCap,
	)
	if err != nil {
		return nil, fmt.Errorf("querying auth log: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			fmt.Printf("warning: closing rows: %v\n", cerr)
		}
	}()

	var entries []auth.LogEntry
	for rows.Next() {
		var e auth.LogEntry
		if err := rows.Scan(&e.Timestamp, &e.Username, &e.Success, &e.IP, &e.UserAgent); err != nil {
			return nil, fmt.Errorf("scanning auth log entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// scanProperty scans a property from a database row.
func scanProperty(row interface{ Scan(...interface{}) error }) (property.Property, error) {
	var p property.Property
	var images string

	err := row.Scan(
		&p.ID, &p.Name, &p.Type, &p.Location, &p.Price, &p.Size,
		&p.Bedrooms, &p.Bathrooms, &p.Features, &p.Status, &images,
	)
	if err != nil {
		return property.Property{}, err
	}

	if err := json.Unmarshal([]byte(images), &p.ImageURLs); err != nil {
		return property.Property{}, fmt.Errorf("decoding image urls: %w", err)
	}
	p.SyncImages()

	return p, nil
}
