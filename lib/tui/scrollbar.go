// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	scrollbarThumbGlyph = "┃"
	scrollbarTrackGlyph = "│"
)

// RenderScrollbar draws a one-column bar, height rows tall, for a
// list of totalItems showing visibleItems from scrollOffset. Content
// that fits yields a full-height thumb. The thumb takes the accent
// color while its pane has focus.
func RenderScrollbar(theme Theme, height, totalItems, visibleItems, scrollOffset int, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	if focused {
		thumbStyle = thumbStyle.Foreground(theme.AccentColor)
	}
	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)

	start, size := ScrollbarThumb(height, totalItems, visibleItems, scrollOffset)
	rows := make([]string, height)
	for row := range rows {
		if row >= start && row < start+size {
			rows[row] = thumbStyle.Render(scrollbarThumbGlyph)
		} else {
			rows[row] = trackStyle.Render(scrollbarTrackGlyph)
		}
	}
	return strings.Join(rows, "\n")
}

// ScrollbarThumb returns the first row and the row count of the
// thumb. The size tracks visible/total (at least one row) and the
// start tracks scrollOffset across the scrollable range.
func ScrollbarThumb(height, totalItems, visibleItems, scrollOffset int) (start, size int) {
	if totalItems <= 0 || totalItems <= visibleItems {
		return 0, height
	}

	size = max(height*visibleItems/totalItems, 1)
	hidden := totalItems - visibleItems
	if travel := height - size; travel > 0 {
		start = scrollOffset * travel / hidden
	}
	return min(start, height-size), size
}
