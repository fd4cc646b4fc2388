// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export turns stored sessions and responses into the CSV artifact the
analysis tooling ingests.

# Layout

Three header rows, then one row per session in start order:

	row 1: short field ids (session_id, condition_type, ..., Q1, Q10, ...)
	row 2: human-readable labels, categorical columns annotated with their
	       encoding legend
	row 3: {"ImportId":"col"} annotations
	rows:  encoded data

Question columns are the distinct question ids observed across all stored
responses, sorted lexicographically, after the fixed session metadata
columns.

# Encoding

Per-question rules: qualitative questions pass through; yes/no and
true/false map to 1/0 case-insensitively; declared ordinals (gender,
decision time, AR extent) map through fixed lookup tables; anything outside
a table passes through unchanged rather than erroring. Numeric Likert and
slider answers are already numeric text and pass through. Missing answers
are empty cells, never a placeholder word. encoding/csv handles delimiter,
quote, and newline escaping.
*/
package export
