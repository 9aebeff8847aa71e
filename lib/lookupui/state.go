// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lookupui

import (
	"strings"
	"time"

	"github.com/bureau-foundation/voterlookup/lib/voter"
)

// SuggestionDismissDelay is how long the suggestion dropdown stays up
// after the search input loses focus, so a click on a suggestion lands
// before the dropdown disappears.
const SuggestionDismissDelay = 200 * time.Millisecond

// State is the complete UI state of a lookup session. Every method
// that changes it returns the new value; the receiver is never
// modified. Derived lists are recomputed whenever the records or the
// query change, so the view is always consistent with (records,
// query).
type State struct {
	records []voter.Record
	loading bool
	failure string

	query string
	view  voter.View

	inputFocused       bool
	suggestionsVisible bool
	blurGeneration     uint64

	selected   voter.Record
	detailOpen bool
}

// Loading marks the start of the dataset load.
func (state State) Loading() State {
	state.loading = true
	state.failure = ""
	return state
}

// Loaded installs the record list and ends the loading phase.
func (state State) Loaded(records []voter.Record) State {
	state.loading = false
	state.records = records
	state.view = voter.Derive(state.records, state.query)
	return state
}

// LoadFailed ends the loading phase with a user-facing failure
// message. The record list stays as it was (empty on the only load).
func (state State) LoadFailed(message string) State {
	state.loading = false
	state.failure = message
	return state
}

// QueryChanged records new input text. The dropdown is shown iff the
// trimmed text is non-empty.
func (state State) QueryChanged(query string) State {
	state.query = query
	state.view = voter.Derive(state.records, query)
	state.suggestionsVisible = strings.TrimSpace(query) != ""
	return state
}

// Focus marks the input focused and shows the dropdown when there is
// something in it. A dismissal scheduled by an earlier Blur no longer
// applies.
func (state State) Focus() State {
	state.inputFocused = true
	state.blurGeneration++
	if len(state.view.Suggestions) > 0 {
		state.suggestionsVisible = true
	}
	return state
}

// Blur marks the input unfocused. The dropdown stays up until
// DismissSuggestions is called with the returned generation after
// [SuggestionDismissDelay].
func (state State) Blur() (State, uint64) {
	state.inputFocused = false
	state.blurGeneration++
	return state, state.blurGeneration
}

// DismissSuggestions hides the dropdown if generation is from the
// most recent Blur and nothing refocused the input since.
func (state State) DismissSuggestions(generation uint64) State {
	if generation == state.blurGeneration && !state.inputFocused {
		state.suggestionsVisible = false
	}
	return state
}

// ClearQuery empties the query and hides the dropdown.
func (state State) ClearQuery() State {
	state = state.QueryChanged("")
	state.suggestionsVisible = false
	return state
}

// Select opens the detail view for record and hides the dropdown.
func (state State) Select(record voter.Record) State {
	state.selected = record
	state.detailOpen = true
	state.suggestionsVisible = false
	return state
}

// CloseDetail hides the detail view.
func (state State) CloseDetail() State {
	state.detailOpen = false
	return state
}

// Records returns the loaded record list.
func (state State) Records() []voter.Record { return state.records }

// Query returns the current input text.
func (state State) Query() string { return state.query }

// Results returns the filtered results for the current query.
func (state State) Results() []voter.Record { return state.view.Results }

// Suggestions returns the suggestion prefix of the results.
func (state State) Suggestions() []voter.Record { return state.view.Suggestions }

// IsLoading reports whether the dataset load is in flight.
func (state State) IsLoading() bool { return state.loading }

// Failure returns the load failure message, or "".
func (state State) Failure() string { return state.failure }

// InputFocused reports whether the search input has focus.
func (state State) InputFocused() bool { return state.inputFocused }

// ShowSuggestions reports whether the dropdown is drawn: it must be
// enabled and have at least one entry.
func (state State) ShowSuggestions() bool {
	return state.suggestionsVisible && len(state.view.Suggestions) > 0
}

// Selected returns the record shown in the detail view and whether
// the view is open.
func (state State) Selected() (voter.Record, bool) {
	return state.selected, state.detailOpen
}

// Layout lists which content sections are drawn for a state.
type Layout struct {
	Loading   bool
	Failure   bool
	Summary   bool
	NoResults bool
	Results   bool
}

// Layout decides which sections are drawn. Loading suppresses
// everything else; a failure shows only the banner. Otherwise the
// record count is shown whenever records exist, and a query with
// non-blank text adds either the no-results indicator or the result list.
func (state State) Layout() Layout {
	switch {
	case state.loading:
		return Layout{Loading: true}
	case state.failure != "":
		return Layout{Failure: true}
	}
	layout := Layout{Summary: len(state.records) > 0}
	if strings.TrimSpace(state.query) != "" {
		if len(state.view.Results) == 0 {
			layout.NoResults = true
		} else {
			layout.Results = true
		}
	}
	return layout
}
