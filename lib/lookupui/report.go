// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lookupui

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/bureau-foundation/voterlookup/lib/tui"
	"github.com/bureau-foundation/voterlookup/lib/voter"
)

// WriteReport prints a non-interactive search over records: the
// total count, then either the no-results text or the result count
// and one card per result. Sections follow [State.Layout], so the
// output matches what the interactive view would show for query.
// Colors follow the lipgloss color profile.
func WriteReport(writer io.Writer, records []voter.Record, query string, width int) error {
	state := State{}.Loaded(records).QueryChanged(query)
	layout := state.Layout()
	theme := tui.DefaultTheme

	var output strings.Builder
	if layout.Summary {
		fmt.Fprintf(&output, "%s: %s\n", summaryLabel, humanize.Comma(int64(len(records))))
	}
	if layout.NoResults {
		fmt.Fprintln(&output, noResultsText)
	}
	if layout.Results {
		fmt.Fprintln(&output, resultCountText(len(state.Results())))
		for _, record := range state.Results() {
			for _, line := range renderCard(record, theme, width, false) {
				output.WriteString(line)
				output.WriteByte('\n')
			}
		}
	}

	_, err := io.WriteString(writer, output.String())
	return err
}
