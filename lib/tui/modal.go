// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Modal chrome overhead: 2 columns border + 2 columns padding = 4
// columns horizontal; 2 lines border + 1 title + 1 footer = 4 lines
// vertical. The body viewport gets the remainder, minus one column
// for the scrollbar.
const (
	modalChromeWidth  = 4
	modalChromeHeight = 4
	// Minimum body: 20 columns wide, 3 lines tall.
	modalMinInnerWidth  = 20
	modalMinInnerHeight = 3
	// Margin between the modal edge and the screen edge, so the user
	// can see the underlying view isn't gone.
	modalMargin = 2
	// DefaultModalMaxWidth caps the total modal width on wide screens.
	DefaultModalMaxWidth = 76
)

// ModalGeometry is the on-screen rectangle of a modal, in screen
// coordinates, as computed by the last [Modal.Resize].
type ModalGeometry struct {
	X, Y          int // Top-left corner (border included).
	Width, Height int // Total size (border included).
	BodyHeight    int // Visible body rows.
	InnerWidth    int // Columns between the padding, scrollbar included.
}

// Modal is a centered, bordered overlay with a title row, a scrolling
// body, and a footer row. The body is wrapped to the modal width on
// every Resize. Rendering is split from hit-testing so the model can
// decide which clicks belong to the modal before anything underneath
// sees them.
type Modal struct {
	Title    string
	Footer   string
	MaxWidth int

	body         []string
	wrapped      []string
	scrollOffset int
	geometry     ModalGeometry
	theme        Theme
}

// NewModal creates a modal with the given body lines. Call Resize
// before rendering.
func NewModal(title string, body []string, footer string, theme Theme) *Modal {
	return &Modal{
		Title:    title,
		Footer:   footer,
		MaxWidth: DefaultModalMaxWidth,
		body:     body,
		theme:    theme,
	}
}

// Resize recomputes the geometry for a screen of the given size,
// rewraps the body, and clamps the scroll offset.
func (modal *Modal) Resize(screenWidth, screenHeight int) {
	modalWidth := min(screenWidth-modalMargin*2, modal.MaxWidth)
	minWidth := modalMinInnerWidth + modalChromeWidth
	if modalWidth < minWidth {
		modalWidth = minWidth
	}
	// Clamp to screen bounds so the overlay doesn't extend past the
	// terminal edges even when the minimum exceeds the screen.
	if modalWidth > screenWidth {
		modalWidth = screenWidth
	}
	innerWidth := max(modalWidth-modalChromeWidth, 2)

	modal.wrapped = modal.wrapped[:0]
	for _, line := range modal.body {
		if line == "" {
			modal.wrapped = append(modal.wrapped, "")
			continue
		}
		modal.wrapped = append(modal.wrapped,
			strings.Split(ansi.Wrap(line, innerWidth-1, ""), "\n")...)
	}

	modalHeight := min(len(modal.wrapped)+modalChromeHeight, screenHeight-modalMargin*2)
	minHeight := modalMinInnerHeight + modalChromeHeight
	if modalHeight < minHeight {
		modalHeight = minHeight
	}
	if modalHeight > screenHeight {
		modalHeight = screenHeight
	}
	bodyHeight := max(modalHeight-modalChromeHeight, 1)

	anchorX := max((screenWidth-modalWidth)/2, 0)
	anchorY := max((screenHeight-modalHeight)/2, 0)

	modal.geometry = ModalGeometry{
		X:          anchorX,
		Y:          anchorY,
		Width:      innerWidth + modalChromeWidth,
		Height:     bodyHeight + modalChromeHeight,
		BodyHeight: bodyHeight,
		InnerWidth: innerWidth,
	}
	modal.ScrollBy(0)
}

// Geometry returns the rectangle computed by the last Resize.
func (modal *Modal) Geometry() ModalGeometry {
	return modal.geometry
}

// ScrollBy moves the body viewport by delta rows, clamped to the
// content.
func (modal *Modal) ScrollBy(delta int) {
	maxOffset := max(len(modal.wrapped)-modal.geometry.BodyHeight, 0)
	modal.scrollOffset = min(max(modal.scrollOffset+delta, 0), maxOffset)
}

// ScrollOffset returns the index of the first visible body row.
func (modal *Modal) ScrollOffset() int {
	return modal.scrollOffset
}

// BodyLineCount returns the number of body rows after wrapping.
func (modal *Modal) BodyLineCount() int {
	return len(modal.wrapped)
}

// Contains returns true if the screen coordinate (x, y) falls inside
// the modal rectangle, border included.
func (modal *Modal) Contains(x, y int) bool {
	geometry := modal.geometry
	return x >= geometry.X && x < geometry.X+geometry.Width &&
		y >= geometry.Y && y < geometry.Y+geometry.Height
}

// FooterContains returns true if (x, y) falls on the footer label.
func (modal *Modal) FooterContains(x, y int) bool {
	geometry := modal.geometry
	footerY := geometry.Y + geometry.Height - 2
	footerX := geometry.X + 2
	return y == footerY && x >= footerX && x < footerX+ansi.StringWidth(modal.Footer)
}

// Render produces the modal overlay lines for splicing onto the view
// at (Geometry().X, Geometry().Y).
func (modal *Modal) Render() []string {
	geometry := modal.geometry
	innerWidth := geometry.InnerWidth
	bodyWidth := innerWidth - 1

	bgStyle := lipgloss.NewStyle().
		Background(modal.theme.OverlayBackground)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.OverlayBackground)

	footerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.AccentColor).
		Background(modal.theme.OverlayBackground)

	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.OverlayForeground).
		Background(modal.theme.OverlayBackground)

	title := titleStyle.Render(FitWidth(modal.Title, innerWidth))
	footer := footerStyle.Render(modal.Footer)
	if footerWidth := ansi.StringWidth(footer); footerWidth < innerWidth {
		footer += bgStyle.Render(strings.Repeat(" ", innerWidth-footerWidth))
	}

	scrollbar := strings.Split(RenderScrollbar(modal.theme, geometry.BodyHeight,
		len(modal.wrapped), geometry.BodyHeight, modal.scrollOffset, true), "\n")

	bodyLines := make([]string, 0, geometry.BodyHeight)
	for row := 0; row < geometry.BodyHeight; row++ {
		lineIndex := modal.scrollOffset + row
		line := ""
		if lineIndex < len(modal.wrapped) {
			line = modal.wrapped[lineIndex]
		}
		rendered := textStyle.Render(FitWidth(line, bodyWidth))
		if row < len(scrollbar) {
			rendered += scrollbar[row]
		}
		bodyLines = append(bodyLines, rendered)
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.OverlayBackground).
		Padding(0, 1)

	inner := title + "\n" + strings.Join(bodyLines, "\n") + "\n" + footer
	return strings.Split(borderStyle.Render(inner), "\n")
}
