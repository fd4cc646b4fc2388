// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/menu-survey/flow"
	"github.com/danielhkuo/menu-survey/models"
	"github.com/danielhkuo/menu-survey/store"
)

// Manager owns the session lifecycle: creation with fingerprint-based
// idempotent resumption, terminal-state transitions, and the abandonment
// hint.
type Manager struct {
	store *store.Store
}

func NewManager(st *store.Store) *Manager {
	return &Manager{store: st}
}

// Start creates a session, or returns the existing one when the resumption
// fingerprint is already registered (flagged IsExisting, never mutated).
// When the store is unreachable the interview is not blocked: Start degrades
// to an ephemeral, unpersisted session, clearly flagged so exports never see
// it.
func (m *Manager) Start(deviceType, conditionType, fingerprint string) (*models.Session, error) {
	if fingerprint != "" {
		existing, err := m.store.FindSessionByFingerprint(fingerprint)
		if err == nil {
			existing.IsExisting = true
			return existing, nil
		}
		if err != store.ErrSessionNotFound {
			slog.Error("fingerprint lookup failed, starting ephemeral session", "error", err)
			return m.ephemeral(deviceType, conditionType), nil
		}
	}

	sess := &models.Session{
		ID:            uuid.NewString(),
		ConditionType: conditionType,
		DeviceType:    deviceType,
		StartedAt:     time.Now(),
	}
	if fingerprint != "" {
		sess.Fingerprint = &fingerprint
	}

	if err := m.store.CreateSession(sess); err != nil {
		// The fingerprint column is unique, so a concurrent start with the
		// same fingerprint loses the insert race; resolve it by re-reading.
		if fingerprint != "" {
			if existing, lookupErr := m.store.FindSessionByFingerprint(fingerprint); lookupErr == nil {
				existing.IsExisting = true
				return existing, nil
			}
		}
		slog.Error("session insert failed, starting ephemeral session", "error", err)
		return m.ephemeral(deviceType, conditionType), nil
	}

	slog.Info("session started",
		"session_id", sess.ID,
		"condition", conditionType,
		"device", deviceType,
	)
	return sess, nil
}

func (m *Manager) ephemeral(deviceType, conditionType string) *models.Session {
	return &models.Session{
		ID:            uuid.NewString(),
		ConditionType: conditionType,
		DeviceType:    deviceType,
		StartedAt:     time.Now(),
		Ephemeral:     true,
	}
}

// Complete marks the session finished. Idempotent, and a no-op after a
// screen-out: screen-out wins.
func (m *Manager) Complete(sessionID string) error {
	if err := m.store.CompleteSession(sessionID); err != nil {
		return err
	}
	slog.Info("session completed", "session_id", sessionID)
	return nil
}

// ScreenOut disqualifies the session. Terminal.
func (m *Manager) ScreenOut(sessionID string) error {
	if err := m.store.ScreenOutSession(sessionID); err != nil {
		return err
	}
	slog.Info("session screened out", "session_id", sessionID)
	return nil
}

// Abandon is a best-effort hint that the participant disappeared mid-survey.
// It never blocks the caller and carries no delivery guarantee: the lookup
// and log line happen on a background goroutine.
func (m *Manager) Abandon(sessionID string) {
	go func() {
		sess, err := m.store.GetSession(sessionID)
		if err != nil {
			slog.Warn("abandon hint for unknown session", "session_id", sessionID, "error", err)
			return
		}
		if sess.CompletedAt != nil || sess.IsScreenedOut {
			return
		}
		slog.Info("session abandoned", "session_id", sessionID, "condition", sess.ConditionType)
	}()
}

// Interview binds a sequencer to a persisted session: answers upsert into
// the response store fire-and-forget, and terminal transitions flow through
// the manager. Ephemeral sessions get a sequencer with no persistence.
func (m *Manager) Interview(sess *models.Session) *flow.Sequencer {
	if sess.Ephemeral {
		return flow.New(nil, nil)
	}
	rec := flow.RecorderFunc(func(questionID, value string) error {
		return m.store.UpsertResponse(sess.ID, questionID, value)
	})
	lc := flow.LifecycleFuncs{
		OnComplete:  func() error { return m.Complete(sess.ID) },
		OnScreenOut: func() error { return m.ScreenOut(sess.ID) },
	}
	return flow.New(rec, lc)
}
