// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/menu-survey/auth"
	"github.com/danielhkuo/menu-survey/cliparse"
	"github.com/danielhkuo/menu-survey/middleware"
	"github.com/danielhkuo/menu-survey/models"
	"github.com/danielhkuo/menu-survey/session"
	"github.com/danielhkuo/menu-survey/store"
)

type SurveyHandler struct {
	manager *session.Manager
	store   *store.Store
	cfg     cliparse.Config
}

func NewSurveyHandler(manager *session.Manager, st *store.Store, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{manager: manager, store: st, cfg: cfg}
}

// Start handles POST /api/survey/start
func (h *SurveyHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req models.StartSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.DeviceType != models.DeviceMobile && req.DeviceType != models.DeviceDesktop {
		middleware.ErrorResponse(w, http.StatusBadRequest, "deviceType must be mobile or desktop")
		return
	}
	if req.ConditionType == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "conditionType is required")
		return
	}

	sess, err := h.manager.Start(req.DeviceType, req.ConditionType, req.Fingerprint)
	if err != nil {
		slog.Error("failed to start session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start survey")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sess)
}

// SaveResponse handles POST /api/survey/response
func (h *SurveyHandler) SaveResponse(w http.ResponseWriter, r *http.Request) {
	var req models.SaveResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SessionID == "" || req.QuestionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sessionId and questionId are required")
		return
	}

	if err := h.store.UpsertResponse(req.SessionID, req.QuestionID, req.ResponseValue); err != nil {
		slog.Error("failed to save response", "error", err, "session_id", req.SessionID, "question_id", req.QuestionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save response")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Complete handles POST /api/survey/complete
func (h *SurveyHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req models.SessionIDRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.SessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	if err := h.manager.Complete(req.SessionID); err != nil {
		slog.Error("failed to complete session", "error", err, "session_id", req.SessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to complete survey")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// ScreenOut handles POST /api/survey/screen-out
func (h *SurveyHandler) ScreenOut(w http.ResponseWriter, r *http.Request) {
	var req models.SessionIDRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.SessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	if err := h.manager.ScreenOut(req.SessionID); err != nil {
		slog.Error("failed to screen out session", "error", err, "session_id", req.SessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to mark screen-out")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// Abandon handles POST /api/survey/abandon. The client sends this via
// sendBeacon during page teardown, so it must answer fast and never fail
// the participant: everything past parsing is best-effort.
func (h *SurveyHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	var req models.SessionIDRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil || req.SessionID == "" {
		middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
		return
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKey)
	slog.Info("abandon hint received", "session_id", req.SessionID, "ip_hash", ipHash)
	h.manager.Abandon(req.SessionID)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
