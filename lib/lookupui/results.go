// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lookupui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/voterlookup/lib/tui"
	"github.com/bureau-foundation/voterlookup/lib/voter"
)

// WideLayoutMinWidth is the terminal width at which results switch
// from stacked cards to a table.
const WideLayoutMinWidth = 96

// Fixed table column widths. The two name columns share the rest.
const (
	columnVoterIDWidth = 18
	columnMobileWidth  = 14
	columnActionWidth  = 8
	columnGap          = 2
)

// screenLine is one rendered content row. Record is the index of the
// result the row belongs to, or -1 for rows that belong to no result.
type screenLine struct {
	text   string
	record int
}

// tableColumns returns the five column widths for a table of the
// given total width.
func tableColumns(width int) [5]int {
	fixed := columnVoterIDWidth + columnMobileWidth + columnActionWidth + columnGap*4
	names := max(width-fixed-2, 20)
	local := names / 2
	return [5]int{local, names - local, columnVoterIDWidth, columnMobileWidth, columnActionWidth}
}

func tableCells(columns [5]int, cells [5]string) string {
	parts := make([]string, len(cells))
	for index, cell := range cells {
		parts[index] = tui.FitWidth(cell, columns[index])
	}
	return " " + strings.Join(parts, strings.Repeat(" ", columnGap))
}

// renderTableHeader returns the header row and its rule.
func renderTableHeader(theme tui.Theme, width int) []screenLine {
	columns := tableColumns(width)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	ruleStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	header := tableCells(columns, [5]string{columnLocalName, columnEnglishName, columnVoterID, columnMobile, columnAction})
	return []screenLine{
		{text: headerStyle.Render(header), record: -1},
		{text: ruleStyle.Render(strings.Repeat("─", max(width, 1))), record: -1},
	}
}

// renderTableRow renders one result as a single table row.
func renderTableRow(record voter.Record, theme tui.Theme, width int, selected bool) string {
	columns := tableColumns(width)
	row := tableCells(columns, [5]string{
		voter.OrPlaceholder(record.FirstNameLocal),
		voter.OrPlaceholder(record.FirstNameEnglish),
		voter.OrPlaceholder(record.VoterIDCard),
		voter.OrPlaceholder(record.Mobile),
		rowAction,
	})
	style := lipgloss.NewStyle().Foreground(theme.NormalText)
	if selected {
		style = lipgloss.NewStyle().
			Background(theme.SelectedBackground).
			Foreground(theme.SelectedForeground)
		row = tui.FitWidth(row, width)
	}
	return style.Render(row)
}

// cardLines returns the text lines of a narrow-layout card, without
// the border.
func cardLines(record voter.Record) []string {
	lines := []string{voter.PrimaryName(record)}
	if record.FirstNameEnglish != "" && record.FirstNameLocal != "" {
		lines = append(lines, record.FirstNameEnglish)
	}
	lines = append(lines, columnVoterID+": "+voter.OrPlaceholder(record.VoterIDCard))
	if record.Mobile != "" {
		lines = append(lines, columnMobile+": "+record.Mobile)
	}
	lines = append(lines, "▶ "+cardAction)
	return lines
}

// cardHeight is the rendered height of record's card, border included.
func cardHeight(record voter.Record) int {
	return len(cardLines(record)) + 2
}

// renderCard renders one result as a bordered card of the given width.
func renderCard(record voter.Record, theme tui.Theme, width int, selected bool) []string {
	innerWidth := max(width-4, 8)
	lines := cardLines(record)

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	actionStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.AccentColor)

	hasEnglishLine := record.FirstNameEnglish != "" && record.FirstNameLocal != ""
	styled := make([]string, len(lines))
	for index, line := range lines {
		fitted := tui.FitWidth(line, innerWidth)
		switch {
		case index == 0:
			styled[index] = nameStyle.Render(fitted)
		case index == len(lines)-1:
			styled[index] = actionStyle.Render(fitted)
		case index == 1 && hasEnglishLine:
			styled[index] = faintStyle.Render(fitted)
		default:
			styled[index] = fitted
		}
	}

	borderColor := theme.BorderColor
	if selected {
		borderColor = theme.AccentColor
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(strings.Join(styled, "\n"))
	return strings.Split(card, "\n")
}

// renderResults lays out results from item offset until height rows
// are filled. Every returned line carries the index of its result.
func renderResults(results []voter.Record, offset, cursor int, theme tui.Theme, width, height int, highlight bool) []screenLine {
	var lines []screenLine
	wide := width >= WideLayoutMinWidth
	if wide {
		lines = append(lines, renderTableHeader(theme, width)...)
	}

	for index := offset; index < len(results) && len(lines) < height; index++ {
		selected := highlight && index == cursor
		if wide {
			lines = append(lines, screenLine{
				text:   renderTableRow(results[index], theme, width, selected),
				record: index,
			})
			continue
		}
		for _, text := range renderCard(results[index], theme, width, selected) {
			lines = append(lines, screenLine{text: text, record: index})
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

// itemsFitting returns how many results starting at offset fit fully
// in height rows. Always at least one, so the cursor can always be
// shown.
func itemsFitting(results []voter.Record, offset int, width, height int) int {
	if width >= WideLayoutMinWidth {
		return max(height-2, 1)
	}
	used, count := 0, 0
	for index := offset; index < len(results); index++ {
		used += cardHeight(results[index])
		if used > height {
			break
		}
		count++
	}
	return max(count, 1)
}
