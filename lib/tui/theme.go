// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and visual properties for the
// lookup terminal UI. All colors use lipgloss ANSI 256-color codes for
// broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row or suggestion.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Header band and section titles.
	HeaderForeground lipgloss.Color
	HeaderBackground lipgloss.Color
	AccentColor      lipgloss.Color

	// UI chrome.
	BorderColor lipgloss.Color
	HelpText    lipgloss.Color

	// Load-failure banner.
	ErrorForeground lipgloss.Color
	ErrorBackground lipgloss.Color

	// Summary card and result count.
	SummaryForeground lipgloss.Color

	// Status-bar log records at warn level. Errors use ErrorForeground.
	WarningForeground lipgloss.Color

	// Floating surfaces: suggestion dropdown and detail modal.
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("24"), // deep blue
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	HeaderBackground: lipgloss.Color("25"), // blue band
	AccentColor:      lipgloss.Color("75"), // light blue

	BorderColor: lipgloss.Color("240"),
	HelpText:    lipgloss.Color("241"),

	ErrorForeground: lipgloss.Color("203"), // soft red
	ErrorBackground: lipgloss.Color("52"),  // dark red tint

	SummaryForeground: lipgloss.Color("114"), // green

	WarningForeground: lipgloss.Color("220"), // amber

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("236"),
}
