// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface chrome for the
// lookup viewer: the color theme, ANSI-aware overlay splicing, a
// floating dropdown, a centered scrolling modal frame, and a
// scrollbar. Built on bubbletea and lipgloss.
//
// Nothing here knows about voter records. The lookupui package owns
// the data, layout, and domain-specific rendering and uses these
// pieces for consistent look and mouse hit-testing.
package tui
