// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package voter

import "strings"

// NotAvailable is the display name for a record with no name fields.
const NotAvailable = "N/A"

// Placeholder is shown in place of any absent field value.
const Placeholder = "-"

// DisplayName resolves the name shown for a record in suggestions and
// cards. Priority: local first+last, English first+last, English first,
// local first, then [NotAvailable].
func DisplayName(record Record) string {
	if fullName := joinName(record.FirstNameLocal, record.LastNameLocal); fullName != "" {
		return fullName
	}
	if fullName := joinName(record.FirstNameEnglish, record.LastNameEnglish); fullName != "" {
		return fullName
	}
	if record.FirstNameEnglish != "" {
		return record.FirstNameEnglish
	}
	if record.FirstNameLocal != "" {
		return record.FirstNameLocal
	}
	return NotAvailable
}

// PrimaryName is the headline name of a narrow-layout card: local
// first name, else English first name, else [NotAvailable].
func PrimaryName(record Record) string {
	return firstNonEmpty(record.FirstNameLocal, record.FirstNameEnglish, NotAvailable)
}

// OrPlaceholder returns value, or [Placeholder] when value is absent.
func OrPlaceholder(value string) string {
	return firstNonEmpty(value, Placeholder)
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
