// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the survey API.

# Wire Contract

JSON field names are camelCase to match the survey client:

	{"sessionId": "...", "questionId": "Q1", "responseValue": "yes"}

# Domain Types

  - Session: one participant's interview instance, from start to a terminal
    state (completed, screened out, or abandoned)
  - Response: one stored answer, keyed by (session, question)
  - SessionWithResponses: admin-surface join of the two

# Sentinels

SkippedValue ("SKIPPED") is recorded when a participant skips a question so
the response store has an entry for every passed step, answered or not.

Ephemeral sessions are created when the database is unreachable at start:
they are flagged in the JSON payload and never appear in exports.
*/
package models
