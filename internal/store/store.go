package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hevy-insights/internal/workout"
)

// Store is the application's local persistence layer: the auth token
// and the last fetched workout collection.
type Store struct {
	db *sql.DB
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Auth holds the stored Hevy session.
type Auth struct {
	AuthToken string
	UserID    string
	Username  string
	Email     string
}

// GetAuth retrieves the stored session.
func (s *Store) GetAuth() (*Auth, error) {
	row := s.db.QueryRow(`SELECT auth_token, user_id, username, email FROM auth WHERE id = 1`)

	var a Auth
	err := row.Scan(&a.AuthToken, &a.UserID, &a.Username, &a.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoAuth
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveAuth stores or replaces the session.
func (s *Store) SaveAuth(a *Auth) error {
	_, err := s.db.Exec(`
		INSERT INTO auth (id, auth_token, user_id, username, email)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			auth_token = excluded.auth_token,
			user_id = excluded.user_id,
			username = excluded.username,
			email = excluded.email,
			updated_at = CURRENT_TIMESTAMP`,
		a.AuthToken, a.UserID, a.Username, a.Email)
	return err
}

// DeleteAuth removes the stored session, as on logout.
func (s *Store) DeleteAuth() error {
	_, err := s.db.Exec(`DELETE FROM auth WHERE id = 1`)
	return err
}

// SaveSnapshot replaces the stored workout collection. The records
// are serialized as JSON so the §3 shapes survive unchanged.
func (s *Store) SaveSnapshot(records []workout.Record, fetchedAt time.Time) error {
	if records == nil {
		records = []workout.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshot (id, fetched_at, data)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			fetched_at = excluded.fetched_at,
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`,
		fetchedAt.Unix(), data)
	return err
}

// LoadSnapshot returns the stored workout collection and when it was
// fetched. ErrNoSnapshot when nothing has been saved.
func (s *Store) LoadSnapshot() ([]workout.Record, time.Time, error) {
	row := s.db.QueryRow(`SELECT fetched_at, data FROM snapshot WHERE id = 1`)

	var fetchedAt int64
	var data []byte
	err := row.Scan(&fetchedAt, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	var records []workout.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding snapshot: %w", workout.ErrMalformed)
	}
	return records, time.Unix(fetchedAt, 0), nil
}

// ClearSnapshot removes the stored workout collection.
func (s *Store) ClearSnapshot() error {
	_, err := s.db.Exec(`DELETE FROM snapshot WHERE id = 1`)
	return err
}
