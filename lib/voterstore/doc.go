// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package voterstore loads the voter dataset exactly once per session.
//
// A [Loader] produces the raw records: [HTTPLoader] issues the single
// GET against the upstream API, [FileLoader] reads the same document
// from disk for offline use. [Store] wraps a Loader and guarantees the
// load happens at most once no matter how many callers ask; later calls
// observe the first outcome. There is no retry and no refresh: a failed
// load is terminal for the session.
//
// Every failure is a [*LoadError] that matches [ErrLoadFailed] under
// errors.Is. User-facing surfaces show [FailureMessage] instead of the
// underlying error text.
package voterstore
