// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/menu-survey/cliparse"
	"github.com/danielhkuo/menu-survey/handlers"
	"github.com/danielhkuo/menu-survey/middleware"
	"github.com/danielhkuo/menu-survey/session"
	"github.com/danielhkuo/menu-survey/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db)
	manager := session.NewManager(st)

	surveyHandler := handlers.NewSurveyHandler(manager, st, cfg)
	adminHandler := handlers.NewAdminHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Survey operations (participant-facing)
	mux.HandleFunc("POST /api/survey/start", middleware.WithLogging(surveyHandler.Start))
	mux.HandleFunc("POST /api/survey/response", middleware.WithLogging(surveyHandler.SaveResponse))
	mux.HandleFunc("POST /api/survey/complete", middleware.WithLogging(surveyHandler.Complete))
	mux.HandleFunc("POST /api/survey/screen-out", middleware.WithLogging(surveyHandler.ScreenOut))
	mux.HandleFunc("POST /api/survey/abandon", surveyHandler.Abandon)

	// Admin operations (operator-facing)
	mux.HandleFunc("GET /api/admin/responses", middleware.WithLogging(adminHandler.Responses))
	mux.HandleFunc("GET /api/admin/session/{id}", middleware.WithLogging(adminHandler.GetSession))
	mux.HandleFunc("PUT /api/admin/session/{id}/response", middleware.WithLogging(adminHandler.UpdateResponse))
	mux.HandleFunc("DELETE /api/admin/session/{id}", middleware.WithLogging(adminHandler.DeleteSession))
	mux.HandleFunc("GET /api/admin/stats", middleware.WithLogging(adminHandler.Stats))
	mux.HandleFunc("GET /api/admin/export", middleware.WithLogging(adminHandler.Export))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("menu-survey API v1"))
	})

	return mux
}
