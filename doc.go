// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Menu Survey API server.

Menu Survey runs a between-subjects restaurant menu study: each participant
is assigned one menu presentation condition (AR menu, or one of two static
menu images), walks a fixed sequence of question blocks, and lands in a
terminal state of completed or screened out. An admin surface exposes the
collected data, including a numerically encoded CSV export.

# Starting the Server

The server reads configuration from environment variables, a .env file, or
CLI flags:

	ADMIN_KEY=secret go run .

Or with flags:

	go run . -p 3001 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - ADMIN_KEY (--admin-key): Secret for the X-Admin-Key header and IP hashing

Optional settings:

  - PORT (-p): Server port (default: 3001)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:menu_survey.db;
    required for postgres)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (survey, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - session: Session lifecycle (start, resume, complete, screen out, abandon)
  - flow: Block sequencer and question catalog
  - store: Session and response persistence
  - export: Numeric CSV encoding and the three-header export format
  - auth: Admin key validation and IP hashing
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
