// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package lookupui implements the interactive voter lookup terminal
// UI: a search input with a live suggestion dropdown, a result table
// (wide terminals) or card list (narrow terminals), and a modal with
// every field of the selected record.
//
// The package is split in two layers. [State] is a plain value with
// one method per UI event (query change, focus, blur, selection, load
// outcome) and a [State.Layout] decision for what the screen shows; it
// has no terminal dependencies and is what the behavioral tests
// exercise. [Model] is the bubbletea model that owns a State, maps key
// and mouse input onto its transitions, issues the one dataset load,
// and renders the result with lipgloss and the shared tui chrome.
//
// [TUILogHandler] routes slog records into the model's status bar so
// log output never writes over the alternate screen.
package lookupui
