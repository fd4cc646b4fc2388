// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

NewRouter wires the store and session manager once and injects them into the
handlers. Survey routes are participant-facing; admin routes require the
X-Admin-Key header. The abandon route skips request logging - it fires
during page teardown and the handler logs the hint itself.
*/
package router
