// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption is a single selectable item in a dropdown overlay.
type DropdownOption struct {
	Label  string // Primary text.
	Detail string // Secondary text shown faint after the label.
}

// dropdownMarker is drawn at the right edge of every option.
const dropdownMarker = "→"

// DropdownOverlay renders a floating list anchored at a screen
// position, one row per option under a single header row. The model
// owns the instance, routes navigation keys to it while it is visible,
// and uses Contains/OptionAtY for mouse hit-testing.
type DropdownOverlay struct {
	Header  string
	Options []DropdownOption
	Cursor  int
	AnchorX int // Screen X coordinate of the dropdown's top-left corner.
	AnchorY int // Screen Y coordinate of the header row.
	Width   int // Total visible width including padding.
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (dropdown *DropdownOverlay) MoveUp() {
	if len(dropdown.Options) == 0 {
		return
	}
	dropdown.Cursor--
	if dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (dropdown *DropdownOverlay) MoveDown() {
	if len(dropdown.Options) == 0 {
		return
	}
	dropdown.Cursor++
	if dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Height returns the number of rendered rows, header included.
func (dropdown *DropdownOverlay) Height() int {
	return 1 + len(dropdown.Options)
}

// Contains returns true if the screen coordinate (x, y) falls within
// the dropdown's bounding rectangle, header included.
func (dropdown *DropdownOverlay) Contains(x, y int) bool {
	if y < dropdown.AnchorY || y >= dropdown.AnchorY+dropdown.Height() {
		return false
	}
	return x >= dropdown.AnchorX && x < dropdown.AnchorX+dropdown.Width
}

// OptionAtY returns the option index corresponding to the given
// screen Y coordinate, or -1 for the header row and anything outside
// the dropdown's vertical range.
func (dropdown *DropdownOverlay) OptionAtY(y int) int {
	index := y - dropdown.AnchorY - 1
	if index < 0 || index >= len(dropdown.Options) {
		return -1
	}
	return index
}

// Render produces the dropdown lines for overlay splicing. Each line
// has the same visible width and a solid background for visual
// separation from the underlying content. The highlighted option uses
// a contrasting background.
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	// Inner width is total minus 1 char padding on each side.
	innerWidth := dropdown.Width - 2
	if innerWidth < 1 {
		return nil
	}

	backgroundStyle := lipgloss.NewStyle().
		Foreground(theme.OverlayForeground).
		Background(theme.OverlayBackground)
	headerStyle := backgroundStyle.
		Foreground(theme.FaintText)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	lines := make([]string, 0, dropdown.Height())
	lines = append(lines, headerStyle.Render(" "+FitWidth(dropdown.Header, innerWidth)+" "))

	markerWidth := ansi.StringWidth(dropdownMarker)
	for index, option := range dropdown.Options {
		text := option.Label
		if option.Detail != "" {
			text += "  " + option.Detail
		}
		content := FitWidth(text, innerWidth-markerWidth-1) + " " + dropdownMarker

		style := backgroundStyle
		if index == dropdown.Cursor {
			style = selectedStyle
		}
		line := style.Render(" " + content + " ")
		if lineWidth := ansi.StringWidth(line); lineWidth < dropdown.Width {
			line += style.Render(strings.Repeat(" ", dropdown.Width-lineWidth))
		}
		lines = append(lines, line)
	}

	return lines
}
