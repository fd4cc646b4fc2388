// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists sessions and responses over database/sql.

# Invariants

  - At most one response row per (session, question): UpsertResponse is an
    atomic INSERT ... ON CONFLICT DO UPDATE against the table's primary key,
    so repeated or concurrent writes overwrite rather than duplicate.
  - A response always references an existing session (foreign key, and the
    admin correction path checks existence first).
  - CompleteSession never clears or overwrites a screen-out: the UPDATE is
    guarded on completed_at IS NULL AND is_screened_out = FALSE.
  - DeleteSession removes responses and the session row in one transaction.

# Concurrency

The interview flow is single-writer per session; the admin correction path
may race it and last-writer-wins is the accepted policy - there is no
versioning. Readers used by the export pipeline issue independent queries
and tolerate rows appearing between them.

# Errors

ErrSessionNotFound is returned for lookups and deletes of unknown sessions.
Everything else is a wrapped driver error for the caller to log or surface.
*/
package store
