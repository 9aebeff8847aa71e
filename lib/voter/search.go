// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package voter

import "strings"

const (
	// MaxResults bounds the filtered result list. The scan stops as
	// soon as this many matches are collected.
	MaxResults = 1000

	// MaxSuggestions is the length of the suggestion prefix shown in
	// the dropdown while typing.
	MaxSuggestions = 10
)

// Matches reports whether record matches query. An empty or
// whitespace-only query matches nothing. Otherwise the query is
// lower-cased and trimmed, and the record matches when any searchable
// field contains it as a case-insensitive substring.
//
// Searchable fields, in order: English first name, local first name,
// English last name, local last name, voter ID card, mobile number.
func Matches(record Record, query string) bool {
	needle := strings.TrimSpace(strings.ToLower(query))
	if needle == "" {
		return false
	}
	return matchesNeedle(record, needle)
}

// matchesNeedle is Matches with the query already lower-cased and
// trimmed, so Derive normalizes once per scan instead of per record.
func matchesNeedle(record Record, needle string) bool {
	for _, field := range searchFields(record) {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// searchFields returns the six candidate fields in matching order.
func searchFields(record Record) [6]string {
	return [6]string{
		record.FirstNameEnglish,
		record.FirstNameLocal,
		record.LastNameEnglish,
		record.LastNameLocal,
		record.VoterIDCard,
		record.Mobile,
	}
}

// View is the derived state for one (records, query) pair.
type View struct {
	// Results holds every matching record in original order, capped
	// at [MaxResults].
	Results []Record

	// Suggestions is the first [MaxSuggestions] entries of Results.
	Suggestions []Record
}

// Derive computes the filtered results and suggestions for query over
// records. It is pure: the input slice is never modified, the
// returned slices are freshly allocated, and identical inputs always
// produce identical output. Both lists are empty for an empty or
// whitespace-only query.
func Derive(records []Record, query string) View {
	needle := strings.TrimSpace(strings.ToLower(query))
	if needle == "" {
		return View{}
	}

	var results []Record
	for index := 0; index < len(records) && len(results) < MaxResults; index++ {
		if matchesNeedle(records[index], needle) {
			results = append(results, records[index])
		}
	}
	if len(results) == 0 {
		return View{}
	}

	suggestionCount := min(len(results), MaxSuggestions)
	suggestions := make([]Record, suggestionCount)
	copy(suggestions, results[:suggestionCount])

	return View{Results: results, Suggestions: suggestions}
}
