// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

  - WithLogging: structured request/completion logging via slog
  - JSONResponse / ErrorResponse: JSON encoding with the standard error
    envelope
  - ParseJSONBody: request body decoding
  - CORS: cross-origin headers for the survey client, including the
    X-Admin-Key header used by the admin dashboard
  - GetClientIP: best-effort client IP extraction for abandonment logging
    (the IP is hashed before it ever reaches a log line)
*/
package middleware
