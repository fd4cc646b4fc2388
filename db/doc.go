// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - sessions: one row per interview (condition, device, lifecycle timestamps,
    screen-out flag, optional resumption fingerprint)
  - responses: one row per answered or skipped question per session

# Relationships

	sessions 1──* responses

The responses primary key is (session_id, question_id), which is what makes
response writes an update rather than a duplicate row. The foreign key uses
ON DELETE CASCADE, and the store additionally deletes both tables in one
transaction so no engine configuration can leave orphaned responses.

# Engines

The same DDL runs on SQLite (modernc.org/sqlite, the default and the test
engine) and PostgreSQL (lib/pq). Timestamps are written by the application,
never by NOW(), to keep the two engines in agreement.
*/
package db
