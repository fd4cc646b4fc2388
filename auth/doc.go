// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin-key validation and privacy-preserving IP hashing.

The admin surface is gated by a single shared key supplied in the X-Admin-Key
header and compared in constant time. This identifies an operator, nothing
more; it is not participant authentication - participants are anonymous and
identified only by their session.

HashIP produces a salted one-way hash so abandonment events can be logged
and deduplicated without ever storing raw IP addresses.
*/
package auth
