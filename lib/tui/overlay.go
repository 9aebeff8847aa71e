// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// sgrReset closes any styling left open on either side of a splice.
const sgrReset = "\x1b[0m"

// SpliceOverlay draws overlayLines over view with the top-left corner
// at (anchorX, anchorY). The view keeps its styling outside the
// overlay. A view shorter than the overlay is extended with blank
// rows.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	rows := strings.Split(view, "\n")
	for len(rows) < anchorY+len(overlayLines) {
		rows = append(rows, "")
	}

	overlayWidth := ansi.StringWidth(overlayLines[0])
	for offset, overlayLine := range overlayLines {
		row := anchorY + offset
		if row < 0 {
			continue
		}
		rows[row] = spliceRow(rows[row], overlayLine, anchorX, overlayWidth)
	}
	return strings.Join(rows, "\n")
}

// spliceRow replaces columns [anchorX, anchorX+overlayWidth) of row.
func spliceRow(row, overlayLine string, anchorX, overlayWidth int) string {
	var out strings.Builder
	if anchorX > 0 {
		left := ansi.Truncate(row, anchorX, "")
		out.WriteString(left)
		out.WriteString(strings.Repeat(" ", max(anchorX-ansi.StringWidth(left), 0)))
	}
	out.WriteString(sgrReset + overlayLine + sgrReset)
	if right := anchorX + overlayWidth; right < ansi.StringWidth(row) {
		out.WriteString(ansi.TruncateLeft(row, right, ""))
	}
	return out.String()
}

// PadOverlayLine wraps styledContent in one background-colored space
// on the left and enough on the right to fill innerWidth plus one.
func PadOverlayLine(styledContent string, innerWidth int, backgroundStyle lipgloss.Style) string {
	fill := max(innerWidth-ansi.StringWidth(styledContent), 0)
	return backgroundStyle.Render(" ") + styledContent + backgroundStyle.Render(strings.Repeat(" ", fill+1))
}

// FitWidth returns s at exactly width columns: cut with "…" when too
// long, space-padded when short.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-ansi.StringWidth(s))
}
