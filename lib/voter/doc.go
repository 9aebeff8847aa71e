// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package voter holds the canonical voter record and the pure logic
// that operates on an in-memory list of them: ingest-time field
// normalization, response-shape parsing, substring search, and the
// derived result/suggestion views.
//
// The upstream API has served two schemas over its lifetime (a
// camelCase one and an electoral-roll export with upper-case column
// names). [Normalize] resolves the alias pairs exactly once, so every
// other consumer reads a single [Record] field instead of probing
// alternate keys.
//
// Nothing in this package performs I/O; [ParseDataset] takes bytes
// that a loader (see the voterstore package) already fetched.
package voter
