// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP surface of the survey server.

# Survey Surface (participant-facing)

  - POST /api/survey/start: create or resume a session
  - POST /api/survey/response: upsert one answer
  - POST /api/survey/complete, /screen-out: terminal transitions
  - POST /api/survey/abandon: fire-and-forget teardown hint

Participant-path failures favor the interview: abandon always answers
success, and the client treats response persistence as best-effort.

# Admin Surface (operator-facing, X-Admin-Key gated)

  - GET /api/admin/responses: all sessions joined with responses
  - GET /api/admin/session/{id}, PUT .../response, DELETE .../{id}
  - GET /api/admin/stats: counts by terminal state and condition
  - GET /api/admin/export: the three-header CSV artifact

Admin-path failures are explicit: unknown sessions are 404s, database
errors are 500s, and retry is the operator's call.
*/
package handlers
