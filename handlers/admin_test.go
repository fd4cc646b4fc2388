// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/menu-survey/models"
	"github.com/danielhkuo/menu-survey/store"
	"github.com/danielhkuo/menu-survey/testutil"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *store.Store, *sql.DB) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })
	st := store.New(conn)
	return NewAdminHandler(st, testutil.GetTestConfig()), st, conn
}

func adminHeaders() map[string]string {
	return map[string]string{"X-Admin-Key": "test-admin-key"}
}

func TestAdminAuthRequired(t *testing.T) {
	h, _, _ := newAdminHandler(t)

	tests := []struct {
		name string
		call func(w http.ResponseWriter, r *http.Request)
		req  *http.Request
	}{
		{"responses", h.Responses, testutil.MakeRequest("GET", "/api/admin/responses", nil, nil)},
		{"stats", h.Stats, testutil.MakeRequest("GET", "/api/admin/stats", nil, nil)},
		{"export", h.Export, testutil.MakeRequest("GET", "/api/admin/export", nil, nil)},
		{"wrong key", h.Stats, testutil.MakeRequest("GET", "/api/admin/stats", nil, map[string]string{"X-Admin-Key": "wrong"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.call(w, tt.req)
			testutil.AssertStatus(t, w, 401)
		})
	}
}

func TestAdminResponses(t *testing.T) {
	h, _, conn := newAdminHandler(t)

	answered := testutil.CreateTestSession(t, conn, "ar_menu", "mobile", "completed")
	testutil.AddTestResponse(t, conn, answered, "Q1", "yes")
	testutil.AddTestResponse(t, conn, answered, "Q4", "3")
	empty := testutil.CreateTestSession(t, conn, "menu_image_0", "desktop", "open")

	w := httptest.NewRecorder()
	h.Responses(w, testutil.MakeRequest("GET", "/api/admin/responses", nil, adminHeaders()))
	testutil.AssertStatus(t, w, 200)

	var joined []models.SessionWithResponses
	testutil.AssertJSON(t, w, &joined)
	if len(joined) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(joined))
	}

	byID := map[string]models.SessionWithResponses{}
	for _, s := range joined {
		byID[s.ID] = s
	}
	if got := byID[answered].Responses; got["Q1"] != "yes" || got["Q4"] != "3" {
		t.Errorf("Unexpected responses for answered session: %v", got)
	}
	if got := byID[empty].Responses; got == nil || len(got) != 0 {
		t.Errorf("Expected empty response map, got %v", got)
	}
}

func TestAdminGetSession(t *testing.T) {
	h, _, conn := newAdminHandler(t)
	sessionID := testutil.CreateTestSession(t, conn, "ar_menu", "mobile", "open")
	testutil.AddTestResponse(t, conn, sessionID, "Q1", "yes")

	req := testutil.MakeRequest("GET", "/api/admin/session/"+sessionID, nil, adminHeaders())
	req.SetPathValue("id", sessionID)
	w := httptest.NewRecorder()
	h.GetSession(w, req)
	testutil.AssertStatus(t, w, 200)

	var got models.SessionWithResponses
	testutil.AssertJSON(t, w, &got)
	if got.ID != sessionID || got.Responses["Q1"] != "yes" {
		t.Errorf("Unexpected session detail: %+v", got)
	}

	missing := testutil.MakeRequest("GET", "/api/admin/session/nope", nil, adminHeaders())
	missing.SetPathValue("id", "nope")
	w = httptest.NewRecorder()
	h.GetSession(w, missing)
	testutil.AssertStatus(t, w, 404)
}

func TestAdminUpdateResponse(t *testing.T) {
	h, st, conn := newAdminHandler(t)
	sessionID := testutil.CreateTestSession(t, conn, "ar_menu", "mobile", "completed")
	testutil.AddTestResponse(t, conn, sessionID, "Q18", "male")

	req := testutil.MakeRequest("PUT", "/api/admin/session/"+sessionID+"/response", models.UpdateResponseRequest{
		QuestionID:    "Q18",
		ResponseValue: "female",
	}, adminHeaders())
	req.SetPathValue("id", sessionID)
	w := httptest.NewRecorder()
	h.UpdateResponse(w, req)
	testutil.AssertStatus(t, w, 200)

	answers, err := st.ResponsesBySession(sessionID)
	if err != nil {
		t.Fatalf("ResponsesBySession failed: %v", err)
	}
	if answers["Q18"] != "female" {
		t.Errorf("Expected corrected value, got %q", answers["Q18"])
	}

	t.Run("missing session", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/api/admin/session/nope/response", models.UpdateResponseRequest{
			QuestionID:    "Q18",
			ResponseValue: "female",
		}, adminHeaders())
		req.SetPathValue("id", "nope")
		w := httptest.NewRecorder()
		h.UpdateResponse(w, req)
		testutil.AssertStatus(t, w, 404)
	})

	t.Run("missing question id", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/api/admin/session/"+sessionID+"/response", models.UpdateResponseRequest{
			ResponseValue: "female",
		}, adminHeaders())
		req.SetPathValue("id", sessionID)
		w := httptest.NewRecorder()
		h.UpdateResponse(w, req)
		testutil.AssertStatus(t, w, 400)
	})
}

func TestAdminDeleteSession(t *testing.T) {
	h, st, conn := newAdminHandler(t)
	sessionID := testutil.CreateTestSession(t, conn, "ar_menu", "mobile", "completed")
	testutil.AddTestResponse(t, conn, sessionID, "Q1", "yes")

	req := testutil.MakeRequest("DELETE", "/api/admin/session/"+sessionID, nil, adminHeaders())
	req.SetPathValue("id", sessionID)
	w := httptest.NewRecorder()
	h.DeleteSession(w, req)
	testutil.AssertStatus(t, w, 200)

	if _, err := st.GetSession(sessionID); err == nil {
		t.Error("Expected session to be gone")
	}

	// Deleting again is a 404
	w = httptest.NewRecorder()
	h.DeleteSession(w, req)
	testutil.AssertStatus(t, w, 404)
}

func TestAdminStats(t *testing.T) {
	h, _, conn := newAdminHandler(t)
	testutil.CreateTestSession(t, conn, "ar_menu", "mobile", "completed")
	testutil.CreateTestSession(t, conn, "ar_menu", "mobile", "screened_out")
	testutil.CreateTestSession(t, conn, "menu_image_1", "desktop", "open")

	w := httptest.NewRecorder()
	h.Stats(w, testutil.MakeRequest("GET", "/api/admin/stats", nil, adminHeaders()))
	testutil.AssertStatus(t, w, 200)

	var stats models.StatsResponse
	testutil.AssertJSON(t, w, &stats)
	if stats.Total != 3 || stats.Completed != 1 || stats.ScreenedOut != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.ByCondition["ar_menu"] != 2 || stats.ByCondition["menu_image_1"] != 1 {
		t.Errorf("Unexpected condition breakdown: %v", stats.ByCondition)
	}
}

func TestAdminExport(t *testing.T) {
	h, _, conn := newAdminHandler(t)
	sessionID := testutil.CreateTestSession(t, conn, "ar_menu", "mobile", "completed")
	testutil.AddTestResponse(t, conn, sessionID, "Q1", "yes")
	testutil.AddTestResponse(t, conn, sessionID, "Q18", "female")

	w := httptest.NewRecorder()
	h.Export(w, testutil.MakeRequest("GET", "/api/admin/export", nil, adminHeaders()))
	testutil.AssertStatus(t, w, 200)

	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "survey_responses.csv") {
		t.Errorf("Expected attachment disposition, got %q", cd)
	}

	rows, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("Export is not valid CSV: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected 3 header rows + 1 data row, got %d", len(rows))
	}
	data := rows[3]
	if data[0] != sessionID {
		t.Errorf("Expected session id in first column, got %q", data[0])
	}
	if data[1] != "1" {
		t.Errorf("Expected encoded condition 1, got %q", data[1])
	}
}
