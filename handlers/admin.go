// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/menu-survey/auth"
	"github.com/danielhkuo/menu-survey/cliparse"
	"github.com/danielhkuo/menu-survey/export"
	"github.com/danielhkuo/menu-survey/middleware"
	"github.com/danielhkuo/menu-survey/models"
	"github.com/danielhkuo/menu-survey/store"
)

type AdminHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAdminHandler(st *store.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg}
}

func (h *AdminHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// Responses handles GET /api/admin/responses
// Returns every session joined with its responses, newest first.
func (h *AdminHandler) Responses(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	sessions, err := h.store.AllSessions()
	if err != nil {
		slog.Error("failed to query sessions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	responses, err := h.store.AllResponses()
	if err != nil {
		slog.Error("failed to query responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	bySession := map[string]map[string]string{}
	for _, resp := range responses {
		if bySession[resp.SessionID] == nil {
			bySession[resp.SessionID] = map[string]string{}
		}
		bySession[resp.SessionID][resp.QuestionID] = resp.ResponseValue
	}

	joined := make([]models.SessionWithResponses, 0, len(sessions))
	for _, sess := range sessions {
		answers := bySession[sess.ID]
		if answers == nil {
			answers = map[string]string{}
		}
		joined = append(joined, models.SessionWithResponses{Session: sess, Responses: answers})
	}

	middleware.JSONResponse(w, http.StatusOK, joined)
}

// GetSession handles GET /api/admin/session/{id}
func (h *AdminHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	sess, err := h.store.GetSession(id)
	if errors.Is(err, store.ErrSessionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to query session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	answers, err := h.store.ResponsesBySession(id)
	if err != nil {
		slog.Error("failed to query responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionWithResponses{Session: *sess, Responses: answers})
}

// UpdateResponse handles PUT /api/admin/session/{id}/response
// The operator correction path: same upsert semantics as the interview flow.
func (h *AdminHandler) UpdateResponse(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	var req models.UpdateResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.QuestionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "questionId is required")
		return
	}

	err := h.store.UpdateResponse(id, req.QuestionID, req.ResponseValue)
	if errors.Is(err, store.ErrSessionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to update response", "error", err, "session_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update response")
		return
	}

	slog.Info("response corrected", "session_id", id, "question_id", req.QuestionID)
	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// DeleteSession handles DELETE /api/admin/session/{id}
// Removes the session and all its responses in one transaction.
func (h *AdminHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	err := h.store.DeleteSession(id)
	if errors.Is(err, store.ErrSessionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete session", "error", err, "session_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete session")
		return
	}

	slog.Info("session deleted", "session_id", id)
	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	stats, err := h.store.Stats()
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// Export handles GET /api/admin/export
// Streams the three-header CSV artifact for the analysis tooling.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	sessions, err := h.store.SessionsForExport()
	if err != nil {
		slog.Error("failed to query sessions for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export")
		return
	}

	responses, err := h.store.AllResponses()
	if err != nil {
		slog.Error("failed to query responses for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="survey_responses.csv"`)

	if err := export.WriteCSV(w, sessions, responses); err != nil {
		// Headers are already gone; all we can do is log.
		slog.Error("failed to write export", "error", err)
	}
}
