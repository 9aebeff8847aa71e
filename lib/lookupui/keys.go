// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lookupui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the lookup TUI. Which bindings
// are live depends on focus: while the search input is focused,
// printable keys go to the input and only the non-printable bindings
// apply.
type KeyMap struct {
	// Result list navigation (and detail scrolling while the modal
	// is open).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Suggestion dropdown navigation while the input is focused.
	SuggestionUp   key.Binding
	SuggestionDown key.Binding

	// Open the highlighted suggestion or result.
	View key.Binding

	// Move focus between the search input and the result list.
	FocusToggle key.Binding
	FocusSearch key.Binding

	// Clear the query.
	Clear key.Binding

	// Close the detail modal.
	CloseDetail key.Binding

	// Quit outside the input; ForceQuit anywhere.
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	SuggestionUp: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous suggestion"),
	),
	SuggestionDown: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next suggestion"),
	),
	View: key.NewBinding(
		key.WithKeys("enter", "v"),
		key.WithHelp("Enter", "view"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("Tab", "switch focus"),
	),
	FocusSearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc", "ctrl+l"),
		key.WithHelp("Esc", "clear"),
	),
	CloseDetail: key.NewBinding(
		key.WithKeys("esc", "q", "enter"),
		key.WithHelp("Esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
