// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lookupui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/voterlookup/lib/tui"
	"github.com/bureau-foundation/voterlookup/lib/voter"
)

// detailField is one labeled value in the detail modal.
type detailField struct {
	label string
	value string
}

// detailSection is a titled group of fields.
type detailSection struct {
	title  string
	fields []detailField
}

// detailSections groups every record field into the four sections
// of the detail view. Absent values render as [voter.Placeholder].
func detailSections(record voter.Record) []detailSection {
	return []detailSection{
		{sectionBasic, []detailField{
			{labelNameEnglish, record.FirstNameEnglish},
			{labelNameLocal, record.FirstNameLocal},
			{labelLastEnglish, record.LastNameEnglish},
			{labelLastLocal, record.LastNameLocal},
			{labelAge, record.Age},
			{labelGender, record.Gender},
		}},
		{sectionCard, []detailField{
			{labelVoterID, record.VoterIDCard},
			{labelEPIC, record.EPICNumber},
			{labelAssembly, record.AssemblyNumber},
			{labelPart, record.PartNumber},
		}},
		{sectionAddress, []detailField{
			{labelAddrEnglish, record.AddressEnglish},
			{labelAddrLocal, record.AddressLocal},
			{labelHouse, record.HouseNumber},
		}},
		{sectionContact, []detailField{
			{labelMobile, record.Mobile},
		}},
	}
}

// detailBody renders the sections as modal body lines: a bold title
// per section, one "label: value" line per field, and a blank line
// between sections.
func detailBody(record voter.Record, theme tui.Theme) []string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.AccentColor).
		Background(theme.OverlayBackground)
	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.OverlayForeground).
		Background(theme.OverlayBackground)

	var lines []string
	for index, section := range detailSections(record) {
		if index > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, titleStyle.Render(section.title))
		for _, field := range section.fields {
			lines = append(lines, labelStyle.Render(field.label+":")+" "+voter.OrPlaceholder(field.value))
		}
	}
	return lines
}

// newDetailModal builds the modal for record, sized for the screen.
func newDetailModal(record voter.Record, theme tui.Theme, width, height int) *tui.Modal {
	modal := tui.NewModal(detailTitle, detailBody(record, theme), detailClose, theme)
	modal.Resize(width, height)
	return modal
}
