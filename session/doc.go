// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session manages the interview lifecycle.

# States

A session is exactly one of: still open, completed, or screened out.
Completion and screen-out are mutually exclusive and both stamp the
completion timestamp; once screened out, Complete never overwrites it.

# Idempotent Resumption

The client derives a non-cryptographic fingerprint from browser environment
signals and sends it with start requests. A matching fingerprint returns the
original session flagged IsExisting instead of creating a duplicate. This is
purely a same-browser resumption convenience - it is not an identity or
authentication mechanism and must never be treated as one.

# Degraded Mode

If the store is unreachable at start, the participant still gets a session:
an ephemeral one, flagged in the payload, never persisted, never exported.
The durability gap is deliberate - participant experience over write
guarantees.
*/
package session
