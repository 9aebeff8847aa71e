// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package voter

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is one voter as received from the upstream API, normalized to
// a single schema. Every field is optional: the empty string means the
// upstream value was absent (missing, null, empty, false, or zero).
// Records are never modified after [Normalize] returns.
type Record struct {
	// ID is the upstream document identifier ("_id"). Often absent
	// for electoral-roll exports.
	ID string

	// Position is the record's index in the fetched list. Used as
	// the list key when ID is absent.
	Position int

	// Identity.
	FirstNameEnglish string // "name", else "FM_NAME_EN"
	FirstNameLocal   string // "name_mr", else "FM_NAME_V1"
	LastNameEnglish  string // "LASTNAME_EN"
	LastNameLocal    string // "LASTNAME_V1"

	// Demographic.
	Age    string // "age"
	Gender string // "gender", else "gender_mr"

	// Credential. VoterIDCard falls back to the EPIC number, while
	// EPICNumber carries only the export's own column so the detail
	// view can show both.
	VoterIDCard    string // "voterIdCard", else "EPIC_NO"
	EPICNumber     string // "EPIC_NO"
	AssemblyNumber string // "AC_NO"
	PartNumber     string // "PART_NO"

	// Address.
	AddressEnglish string // "adr1"
	AddressLocal   string // "adr2"
	HouseNumber    string // "houseNumber", else "C_HOUSE_NO"

	// Contact.
	Mobile string // "mobileNumber"
}

// Key returns a stable identifier for list rendering: the upstream ID
// when present, otherwise the decimal position.
func (record Record) Key() string {
	if record.ID != "" {
		return record.ID
	}
	return strconv.Itoa(record.Position)
}

// Normalize maps one raw upstream object onto a Record. Alias keys are
// tried in priority order and the first present value wins. A nil map
// (a list element that was not a JSON object) yields a Record with
// only Position set.
func Normalize(raw map[string]any, position int) Record {
	return Record{
		ID:               firstPresent(raw, "_id"),
		Position:         position,
		FirstNameEnglish: firstPresent(raw, "name", "FM_NAME_EN"),
		FirstNameLocal:   firstPresent(raw, "name_mr", "FM_NAME_V1"),
		LastNameEnglish:  firstPresent(raw, "LASTNAME_EN"),
		LastNameLocal:    firstPresent(raw, "LASTNAME_V1"),
		Age:              firstPresent(raw, "age"),
		Gender:           firstPresent(raw, "gender", "gender_mr"),
		VoterIDCard:      firstPresent(raw, "voterIdCard", "EPIC_NO"),
		EPICNumber:       firstPresent(raw, "EPIC_NO"),
		AssemblyNumber:   firstPresent(raw, "AC_NO"),
		PartNumber:       firstPresent(raw, "PART_NO"),
		AddressEnglish:   firstPresent(raw, "adr1"),
		AddressLocal:     firstPresent(raw, "adr2"),
		HouseNumber:      firstPresent(raw, "houseNumber", "C_HOUSE_NO"),
		Mobile:           firstPresent(raw, "mobileNumber"),
	}
}

// firstPresent returns the text of the first key whose value is
// present, or "" when none is.
func firstPresent(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if text := fieldText(raw[key]); text != "" {
			return text
		}
	}
	return ""
}

// fieldText converts a decoded JSON value to the text the UI shows
// and search compares against. Falsy values (nil, "", false, numeric
// zero) are absent and return "". Everything else takes the form
// the upstream web client would display; see [valueText].
func fieldText(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		if !typed {
			return ""
		}
	case json.Number:
		if parsed, err := typed.Float64(); err == nil && parsed == 0 {
			return ""
		}
	case float64:
		if typed == 0 {
			return ""
		}
	}
	return valueText(value)
}

// valueText renders any decoded JSON value as a string: numbers in
// shortest decimal form, arrays as their elements joined by commas
// (null elements empty), and objects as "[object Object]".
func valueText(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case json.Number:
		return numberText(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case []any:
		parts := make([]string, len(typed))
		for index, element := range typed {
			parts[index] = valueText(element)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// numberText keeps integer literals verbatim, so mobile numbers and
// IDs past float64 precision survive intact. Fractions and exponents
// are normalized: 45.0 becomes "45" and 9.876543210e9 "9876543210".
func numberText(number json.Number) string {
	literal := number.String()
	if !strings.ContainsAny(literal, ".eE") {
		return literal
	}
	parsed, err := number.Float64()
	if err != nil {
		return literal
	}
	return strconv.FormatFloat(parsed, 'f', -1, 64)
}
