// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/menu-survey/models"
)

var ErrSessionNotFound = errors.New("session not found")

// Store persists sessions and responses. Queries use $N placeholders, which
// both lib/pq and modernc.org/sqlite accept.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateSession inserts a new session row.
func (s *Store) CreateSession(sess *models.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, condition_type, device_type, started_at, completed_at, is_screened_out, fingerprint)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, sess.ID, sess.ConditionType, sess.DeviceType, sess.StartedAt, sess.CompletedAt, sess.IsScreenedOut, sess.Fingerprint)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// GetSession returns the session with the given id, or ErrSessionNotFound.
func (s *Store) GetSession(id string) (*models.Session, error) {
	return s.querySession(`
		SELECT id, condition_type, device_type, started_at, completed_at, is_screened_out, fingerprint
		FROM sessions WHERE id = $1
	`, id)
}

// FindSessionByFingerprint returns the session registered under the given
// resumption fingerprint, or ErrSessionNotFound.
func (s *Store) FindSessionByFingerprint(fingerprint string) (*models.Session, error) {
	return s.querySession(`
		SELECT id, condition_type, device_type, started_at, completed_at, is_screened_out, fingerprint
		FROM sessions WHERE fingerprint = $1
	`, fingerprint)
}

func (s *Store) querySession(query string, arg any) (*models.Session, error) {
	var sess models.Session
	var completedAt sql.NullTime
	var fingerprint sql.NullString

	err := s.db.QueryRow(query, arg).Scan(
		&sess.ID, &sess.ConditionType, &sess.DeviceType,
		&sess.StartedAt, &completedAt, &sess.IsScreenedOut, &fingerprint,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if completedAt.Valid {
		t := completedAt.Time
		sess.CompletedAt = &t
	}
	if fingerprint.Valid {
		f := fingerprint.String
		sess.Fingerprint = &f
	}
	return &sess, nil
}

// AllSessions returns every session, newest first (admin listing order).
func (s *Store) AllSessions() ([]models.Session, error) {
	return s.querySessions(`
		SELECT id, condition_type, device_type, started_at, completed_at, is_screened_out, fingerprint
		FROM sessions ORDER BY started_at DESC
	`)
}

// SessionsForExport returns every session in start order, the row order the
// export artifact uses.
func (s *Store) SessionsForExport() ([]models.Session, error) {
	return s.querySessions(`
		SELECT id, condition_type, device_type, started_at, completed_at, is_screened_out, fingerprint
		FROM sessions ORDER BY started_at
	`)
}

func (s *Store) querySessions(query string) ([]models.Session, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var sess models.Session
		var completedAt sql.NullTime
		var fingerprint sql.NullString
		if err := rows.Scan(
			&sess.ID, &sess.ConditionType, &sess.DeviceType,
			&sess.StartedAt, &completedAt, &sess.IsScreenedOut, &fingerprint,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if completedAt.Valid {
			t := completedAt.Time
			sess.CompletedAt = &t
		}
		if fingerprint.Valid {
			f := fingerprint.String
			sess.Fingerprint = &f
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// CompleteSession sets the completion timestamp if the session is still open.
// Idempotent, and a no-op on screened-out sessions: screen-out wins.
func (s *Store) CompleteSession(id string) error {
	_, err := s.db.Exec(`
		UPDATE sessions SET completed_at = $1
		WHERE id = $2 AND completed_at IS NULL AND is_screened_out = FALSE
	`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	return nil
}

// ScreenOutSession marks the session disqualified and terminal.
func (s *Store) ScreenOutSession(id string) error {
	_, err := s.db.Exec(`
		UPDATE sessions SET is_screened_out = TRUE, completed_at = $1
		WHERE id = $2
	`, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to screen out session: %w", err)
	}
	return nil
}

// UpsertResponse inserts or overwrites the answer for (session, question).
// The primary key on (session_id, question_id) makes this atomic: repeated
// calls, including a double-clicked Continue, never create a second row.
func (s *Store) UpsertResponse(sessionID, questionID, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO responses (session_id, question_id, response_value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, question_id)
		DO UPDATE SET response_value = excluded.response_value, updated_at = excluded.updated_at
	`, sessionID, questionID, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to upsert response: %w", err)
	}
	return nil
}

// UpdateResponse is the administrative correction path: same upsert
// semantics, but the session must exist.
func (s *Store) UpdateResponse(sessionID, questionID, value string) error {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM sessions WHERE id = $1)
	`, sessionID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return ErrSessionNotFound
	}
	return s.UpsertResponse(sessionID, questionID, value)
}

// ResponsesBySession returns questionID -> value for one session.
func (s *Store) ResponsesBySession(sessionID string) (map[string]string, error) {
	rows, err := s.db.Query(`
		SELECT question_id, response_value FROM responses
		WHERE session_id = $1 ORDER BY question_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	responses := map[string]string{}
	for rows.Next() {
		var questionID, value string
		if err := rows.Scan(&questionID, &value); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses[questionID] = value
	}
	return responses, rows.Err()
}

// AllResponses returns every stored response across all sessions.
func (s *Store) AllResponses() ([]models.Response, error) {
	rows, err := s.db.Query(`
		SELECT session_id, question_id, response_value, updated_at FROM responses
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	responses := []models.Response{}
	for rows.Next() {
		var resp models.Response
		if err := rows.Scan(&resp.SessionID, &resp.QuestionID, &resp.ResponseValue, &resp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

// DeleteSession removes a session and all its responses in one transaction,
// so no failure mode can leave orphaned response rows.
func (s *Store) DeleteSession(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM responses WHERE session_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete responses: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// Stats returns session counts by terminal state and by condition.
func (s *Store) Stats() (*models.StatsResponse, error) {
	stats := &models.StatsResponse{ByCondition: map[string]int{}}

	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&stats.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM sessions
		WHERE completed_at IS NOT NULL AND is_screened_out = FALSE
	`).Scan(&stats.Completed)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed sessions: %w", err)
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM sessions WHERE is_screened_out = TRUE
	`).Scan(&stats.ScreenedOut)
	if err != nil {
		return nil, fmt.Errorf("failed to count screened-out sessions: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT condition_type, COUNT(*) FROM sessions GROUP BY condition_type
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count by condition: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var condition string
		var count int
		if err := rows.Scan(&condition, &count); err != nil {
			return nil, fmt.Errorf("failed to scan condition count: %w", err)
		}
		stats.ByCondition[condition] = count
	}
	return stats, rows.Err()
}
