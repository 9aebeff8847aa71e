// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lookupui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/bureau-foundation/voterlookup/lib/tui"
	"github.com/bureau-foundation/voterlookup/lib/voter"
	"github.com/bureau-foundation/voterlookup/lib/voterstore"
)

// Loader supplies the dataset. The model calls Load exactly once, from
// Init. [*voterstore.Store] satisfies it.
type Loader interface {
	Load(ctx context.Context) (voterstore.LoadResult, error)
}

// FocusRegion identifies which part of the screen has keyboard focus
// while no modal is open.
type FocusRegion int

const (
	// FocusSearch means keystrokes go to the search input.
	FocusSearch FocusRegion = iota
	// FocusResults means navigation keys move the result cursor.
	FocusResults
)

// Screen rows above the content area, and the footer below it.
const (
	titleRow      = 0
	subtitleRow   = 1
	searchRow     = 2
	searchRuleRow = 3
	contentStartY = 4
	footerHeight  = 2
)

// searchPrompt precedes the query text on the search row.
const searchPrompt = "› "

// suggestionMaxWidth caps the dropdown width on wide terminals.
const suggestionMaxWidth = 72

// loadedMsg carries a successful dataset load.
type loadedMsg struct {
	result voterstore.LoadResult
}

// loadFailedMsg carries a failed dataset load.
type loadFailedMsg struct {
	err error
}

// dismissSuggestionsMsg fires [SuggestionDismissDelay] after a blur.
type dismissSuggestionsMsg struct {
	generation uint64
}

// Model is the top-level bubbletea model for the voter lookup TUI.
type Model struct {
	loader Loader
	logger *slog.Logger
	theme  tui.Theme
	keys   KeyMap

	input textinput.Model
	state State
	focus FocusRegion

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	suggestionCursor int
	resultCursor     int
	resultScroll     int

	modal *tui.Modal

	// Most recent status-bar log record, cleared by its fade timer.
	logMessage  *logRecordMsg
	logSequence uint64
}

// NewModel creates the lookup model. The search input starts focused
// and the state starts in the loading phase; Init issues the load.
func NewModel(loader Loader) Model {
	input := textinput.New()
	input.Prompt = searchPrompt
	input.Placeholder = searchPlaceholder
	input.Focus()

	return Model{
		loader: loader,
		logger: slog.Default(),
		theme:  tui.DefaultTheme,
		keys:   DefaultKeyMap,
		input:  input,
		state:  State{}.Loading().Focus(),
		focus:  FocusSearch,
	}
}

// SetLogger sets the logger for UI events. Defaults to slog.Default().
func (model *Model) SetLogger(logger *slog.Logger) {
	model.logger = logger
}

// Init implements tea.Model. Starts the cursor blink and the single
// dataset load.
func (model Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadDataset(model.loader))
}

// loadDataset returns a tea.Cmd that runs the load and reports the
// outcome as a message.
func loadDataset(loader Loader) tea.Cmd {
	return func() tea.Msg {
		result, err := loader.Load(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{result: result}
	}
}

// dismissSuggestionsAfterDelay schedules the dropdown dismissal for a
// blur generation.
func dismissSuggestionsAfterDelay(generation uint64) tea.Cmd {
	return tea.Tick(SuggestionDismissDelay, func(time.Time) tea.Msg {
		return dismissSuggestionsMsg{generation: generation}
	})
}

// Update implements tea.Model. Routes keyboard events based on the
// modal and focus state and handles layout changes.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		cmd := model.handleMouse(message)
		return model, cmd

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.input.Width = max(model.width-4-lipgloss.Width(searchPrompt)-1, 1)
		if model.modal != nil {
			model.modal.Resize(model.width, model.height)
		}
		model.ensureCursorVisible()

	case loadedMsg:
		model.state = model.state.Loaded(message.result.Records)
		model.resetCursors()

	case loadFailedMsg:
		model.state = model.state.LoadFailed(voterstore.FailureMessage)

	case dismissSuggestionsMsg:
		model.state = model.state.DismissSuggestions(message.generation)

	case logRecordMsg:
		model.logSequence++
		model.logMessage = &message
		sequence := model.logSequence
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{Sequence: sequence}
		})

	case logRecordFadeMsg:
		if message.Sequence == model.logSequence {
			model.logMessage = nil
		}

	default:
		// Cursor blink and other input-internal messages.
		if model.focus == FocusSearch {
			var cmd tea.Cmd
			model.input, cmd = model.input.Update(message)
			return model, cmd
		}
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(message, model.keys.ForceQuit) {
		return model, tea.Quit
	}
	if model.modal != nil {
		model.handleDetailKeys(message)
		return model, nil
	}
	if model.focus == FocusSearch {
		return model.handleSearchKeys(message)
	}
	return model.handleResultKeys(message)
}

// handleDetailKeys closes or scrolls the open modal. Every key is
// consumed by the modal.
func (model *Model) handleDetailKeys(message tea.KeyMsg) {
	page := max(model.modal.Geometry().BodyHeight-1, 1)
	switch {
	case key.Matches(message, model.keys.CloseDetail):
		model.closeDetail()
	case key.Matches(message, model.keys.Up):
		model.modal.ScrollBy(-1)
	case key.Matches(message, model.keys.Down):
		model.modal.ScrollBy(1)
	case key.Matches(message, model.keys.PageUp):
		model.modal.ScrollBy(-page)
	case key.Matches(message, model.keys.PageDown):
		model.modal.ScrollBy(page)
	case key.Matches(message, model.keys.Home):
		model.modal.ScrollBy(-model.modal.BodyLineCount())
	case key.Matches(message, model.keys.End):
		model.modal.ScrollBy(model.modal.BodyLineCount())
	}
}

func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	dropdownVisible := model.state.ShowSuggestions()

	switch {
	case dropdownVisible && key.Matches(message, model.keys.SuggestionUp):
		dropdown := model.suggestionDropdown()
		dropdown.MoveUp()
		model.suggestionCursor = dropdown.Cursor

	case dropdownVisible && key.Matches(message, model.keys.SuggestionDown):
		dropdown := model.suggestionDropdown()
		dropdown.MoveDown()
		model.suggestionCursor = dropdown.Cursor

	case dropdownVisible && message.Type == tea.KeyEnter:
		suggestions := model.state.Suggestions()
		model.selectRecord(suggestions[min(model.suggestionCursor, len(suggestions)-1)])

	case key.Matches(message, model.keys.Clear):
		if model.state.Query() != "" {
			model.clearQuery()
		}

	case key.Matches(message, model.keys.FocusToggle):
		return model, model.blurSearch()

	case message.Type == tea.KeyDown && len(model.state.Results()) > 0:
		return model, model.blurSearch()

	default:
		var cmd tea.Cmd
		model.input, cmd = model.input.Update(message)
		model.syncQuery()
		return model, cmd
	}
	return model, nil
}

func (model Model) handleResultKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := model.state.Results()
	page := max(model.resultsAreaHeight()/2, 1)

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.FocusToggle), key.Matches(message, model.keys.FocusSearch):
		return model, model.focusSearch()

	case key.Matches(message, model.keys.Clear):
		model.clearQuery()
		return model, model.focusSearch()

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)
	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)
	case key.Matches(message, model.keys.PageUp):
		model.moveCursor(-page)
	case key.Matches(message, model.keys.PageDown):
		model.moveCursor(page)
	case key.Matches(message, model.keys.Home):
		model.moveCursor(-len(results))
	case key.Matches(message, model.keys.End):
		model.moveCursor(len(results))

	case key.Matches(message, model.keys.View):
		if len(results) > 0 {
			model.selectRecord(results[model.resultCursor])
		}
	}
	return model, nil
}

// handleMouse routes mouse events. An open modal captures every
// event: clicks inside it never reach the widgets underneath, and a
// click outside closes it. Otherwise clicks hit, in order, the
// suggestion dropdown, the search row, and the result rows; a click
// anywhere else blurs the input.
func (model *Model) handleMouse(message tea.MouseMsg) tea.Cmd {
	if model.modal != nil {
		model.handleModalMouse(message)
		return nil
	}

	switch message.Button {
	case tea.MouseButtonWheelUp:
		if message.Y >= contentStartY {
			model.moveCursor(-3)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if message.Y >= contentStartY {
			model.moveCursor(3)
		}
		return nil
	}

	if message.Action != tea.MouseActionPress || message.Button != tea.MouseButtonLeft {
		return nil
	}

	if model.state.ShowSuggestions() {
		dropdown := model.suggestionDropdown()
		if dropdown.Contains(message.X, message.Y) {
			if index := dropdown.OptionAtY(message.Y); index >= 0 {
				model.selectRecord(model.state.Suggestions()[index])
			}
			return nil
		}
	}

	if message.Y == searchRow {
		if model.state.Query() != "" && model.onClearMarker(message.X) {
			model.clearQuery()
		}
		if model.focus != FocusSearch {
			return model.focusSearch()
		}
		return nil
	}

	if message.Y >= contentStartY {
		row := message.Y - contentStartY
		lines := model.contentLines()
		if row < len(lines) && lines[row].record >= 0 {
			var cmd tea.Cmd
			if model.focus == FocusSearch {
				cmd = model.blurSearch()
			}
			model.focus = FocusResults
			model.resultCursor = lines[row].record
			model.selectRecord(model.state.Results()[model.resultCursor])
			return cmd
		}
	}

	if model.focus == FocusSearch {
		return model.blurSearch()
	}
	return nil
}

func (model *Model) handleModalMouse(message tea.MouseMsg) {
	inside := model.modal.Contains(message.X, message.Y)
	switch message.Button {
	case tea.MouseButtonWheelUp:
		if inside {
			model.modal.ScrollBy(-3)
		}
		return
	case tea.MouseButtonWheelDown:
		if inside {
			model.modal.ScrollBy(3)
		}
		return
	}

	if message.Action != tea.MouseActionPress || message.Button != tea.MouseButtonLeft {
		return
	}
	if !inside || model.modal.FooterContains(message.X, message.Y) {
		model.closeDetail()
	}
}

// onClearMarker reports whether screen column x hits the ✕ at the
// end of the search row.
func (model Model) onClearMarker(x int) bool {
	return x >= model.width-3 && x < model.width
}

// focusSearch gives the input focus.
func (model *Model) focusSearch() tea.Cmd {
	model.focus = FocusSearch
	model.state = model.state.Focus()
	return model.input.Focus()
}

// blurSearch moves focus to the results and schedules the dropdown
// dismissal.
func (model *Model) blurSearch() tea.Cmd {
	model.focus = FocusResults
	model.input.Blur()
	var generation uint64
	model.state, generation = model.state.Blur()
	return dismissSuggestionsAfterDelay(generation)
}

// syncQuery applies the input's text to the state after an edit.
func (model *Model) syncQuery() {
	if value := model.input.Value(); value != model.state.Query() {
		model.state = model.state.QueryChanged(value)
		model.resetCursors()
	}
}

func (model *Model) clearQuery() {
	model.input.SetValue("")
	model.state = model.state.ClearQuery()
	model.resetCursors()
}

func (model *Model) resetCursors() {
	model.suggestionCursor = 0
	model.resultCursor = 0
	model.resultScroll = 0
}

func (model *Model) selectRecord(record voter.Record) {
	model.state = model.state.Select(record)
	model.modal = newDetailModal(record, model.theme, model.width, model.height)
	model.logger.Debug("voter detail opened", "key", record.Key())
}

func (model *Model) closeDetail() {
	model.state = model.state.CloseDetail()
	model.modal = nil
}

// moveCursor moves the result cursor by delta, clamped to the
// results, and scrolls to keep it visible.
func (model *Model) moveCursor(delta int) {
	results := model.state.Results()
	if len(results) == 0 {
		return
	}
	model.resultCursor = min(max(model.resultCursor+delta, 0), len(results)-1)
	model.ensureCursorVisible()
}

// ensureCursorVisible adjusts the scroll offset so the cursor's row
// or card is fully on screen.
func (model *Model) ensureCursorVisible() {
	results := model.state.Results()
	if len(results) == 0 {
		model.resultScroll = 0
		return
	}
	if model.resultCursor < model.resultScroll {
		model.resultScroll = model.resultCursor
	}
	area := model.resultsAreaHeight()
	for model.resultScroll < model.resultCursor &&
		model.resultCursor >= model.resultScroll+itemsFitting(results, model.resultScroll, model.width, area) {
		model.resultScroll++
	}
}

// contentHeight is the number of rows between the search rule and the
// footer.
func (model Model) contentHeight() int {
	return max(model.height-contentStartY-footerHeight, 1)
}

// resultsAreaHeight is the number of content rows left for the result
// list after the sections above it.
func (model Model) resultsAreaHeight() int {
	return max(model.contentHeight()-len(model.contentPrefix()), 1)
}

// contentPrefix renders the sections of the content area that sit
// above the result list, per [State.Layout].
func (model Model) contentPrefix() []screenLine {
	layout := model.state.Layout()
	var lines []screenLine
	add := func(text string) {
		lines = append(lines, screenLine{text: text, record: -1})
	}

	switch {
	case layout.Loading:
		add("")
		add(lipgloss.NewStyle().Foreground(model.theme.AccentColor).Render("  ⏳ " + loadingText))
	case layout.Failure:
		add("")
		add(lipgloss.NewStyle().
			Bold(true).
			Foreground(model.theme.ErrorForeground).
			Background(model.theme.ErrorBackground).
			Render("  " + model.state.Failure() + "  "))
	}

	if layout.Summary {
		count := humanize.Comma(int64(len(model.state.Records())))
		add(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(" "+summaryLabel+": ") +
			lipgloss.NewStyle().Bold(true).Foreground(model.theme.SummaryForeground).Render(count))
	}
	if layout.NoResults {
		add("")
		add(lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("  🔍 " + noResultsText))
	}
	if layout.Results {
		add("")
		add(lipgloss.NewStyle().Bold(true).Foreground(model.theme.SummaryForeground).
			Render(" " + resultCountText(len(model.state.Results()))))
	}
	return lines
}

// contentLines renders the whole content area. Mouse hit-testing uses
// the same lines as View, so a row's record index is exactly what is
// drawn there.
func (model Model) contentLines() []screenLine {
	lines := model.contentPrefix()
	if model.state.Layout().Results {
		lines = append(lines, renderResults(
			model.state.Results(),
			model.resultScroll,
			model.resultCursor,
			model.theme,
			model.width,
			model.contentHeight()-len(lines),
			model.focus == FocusResults,
		)...)
	}
	if len(lines) > model.contentHeight() {
		lines = lines[:model.contentHeight()]
	}
	return lines
}

// suggestionDropdown builds the dropdown overlay for the current
// suggestions, anchored under the search row.
func (model Model) suggestionDropdown() *tui.DropdownOverlay {
	suggestions := model.state.Suggestions()
	options := make([]tui.DropdownOption, len(suggestions))
	for index, record := range suggestions {
		var details []string
		if record.VoterIDCard != "" {
			details = append(details, "ID: "+record.VoterIDCard)
		}
		if record.Mobile != "" {
			details = append(details, "Mobile: "+record.Mobile)
		}
		options[index] = tui.DropdownOption{
			Label:  voter.DisplayName(record),
			Detail: strings.Join(details, "  "),
		}
	}
	return &tui.DropdownOverlay{
		Header:  suggestionHeader(len(suggestions)),
		Options: options,
		Cursor:  min(model.suggestionCursor, max(len(options)-1, 0)),
		AnchorX: 1,
		AnchorY: searchRuleRow,
		Width:   min(max(model.width-2, 10), suggestionMaxWidth),
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return loadingText
	}

	lines := make([]string, 0, model.height)
	lines = append(lines, model.renderHeader()...)
	lines = append(lines, model.renderSearchRow())

	ruleStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	rule := ruleStyle.Render(strings.Repeat("─", max(model.width, 1)))
	lines = append(lines, rule)

	content := model.contentLines()
	for row := 0; row < model.contentHeight(); row++ {
		if row < len(content) {
			lines = append(lines, content[row].text)
		} else {
			lines = append(lines, "")
		}
	}

	lines = append(lines, rule, model.renderHelp())
	output := strings.Join(lines, "\n")

	if model.modal != nil {
		geometry := model.modal.Geometry()
		return tui.SpliceOverlay(output, model.modal.Render(), geometry.X, geometry.Y)
	}
	if model.state.ShowSuggestions() {
		dropdown := model.suggestionDropdown()
		output = tui.SpliceOverlay(output, dropdown.Render(model.theme), dropdown.AnchorX, dropdown.AnchorY)
	}
	return output
}

// renderHeader renders the title band and subtitle rows.
func (model Model) renderHeader() []string {
	band := lipgloss.NewStyle().
		Width(model.width).
		Align(lipgloss.Center).
		Foreground(model.theme.HeaderForeground).
		Background(model.theme.HeaderBackground)
	return []string{
		band.Bold(true).Render(ansi.Truncate(headerTitle, model.width, "…")),
		band.Render(ansi.Truncate(headerSubtitle, model.width, "…")),
	}
}

// renderSearchRow renders the input with the ✕ clear affordance
// at the right edge when there is text to clear.
func (model Model) renderSearchRow() string {
	marker := " "
	if model.state.Query() != "" {
		marker = lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(clearMarker)
	}
	return " " + tui.FitWidth(model.input.View(), max(model.width-4, 1)) + " " + marker + " "
}

// renderHelp renders the status bar: focus indicator, key hints,
// result position, and the latest log record.
func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	focusIndicator := "SEARCH"
	hints := "↑↓ suggestions  Enter view  Tab results  Esc clear  C-c quit"
	switch {
	case model.modal != nil:
		focusIndicator = "DETAIL"
		hints = "↑↓ scroll  Esc close"
	case model.focus == FocusResults:
		focusIndicator = "RESULTS"
		hints = "j/k move  Enter view  Tab search  q quit"
	}

	help := style.Render(fmt.Sprintf(" [%s] %s", focusIndicator, hints))

	if results := model.state.Results(); len(results) > 0 {
		help += style.Render(fmt.Sprintf("  %d/%d", model.resultCursor+1, len(results)))
	}

	if model.logMessage != nil {
		color := model.theme.WarningForeground
		if model.logMessage.Level >= slog.LevelError {
			color = model.theme.ErrorForeground
		}
		help += "  " + lipgloss.NewStyle().Foreground(color).Bold(true).Render(model.logMessage.Summary)
	}

	return tui.FitWidth(help, max(model.width, 1))
}
