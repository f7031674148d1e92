package report

import (
	"fmt"
	"strings"
)

// TextOptions carries the free-form header and footer a pilot can attach
// when sharing a report as plain text.
type TextOptions struct {
	Title  string
	Header string
	Footer string
}

// RenderText builds the share-as-text form of a report: one line per
// record, group headings where rows carry group keys, no totals.
func RenderText(rows []Row, opts TextOptions) string {
	var out strings.Builder
	if opts.Title != "" {
		out.WriteString(opts.Title)
		out.WriteString("\n")
		out.WriteString(strings.Repeat("=", len([]rune(opts.Title))))
		out.WriteString("\n\n")
	}
	if opts.Header != "" {
		out.WriteString(opts.Header)
		out.WriteString("\n\n")
	}

	if len(rows) == 0 {
		out.WriteString(csvEmptyPlaceholder)
		out.WriteString("\n")
	}

	previousGroup := ""
	for i := range rows {
		row := &rows[i]
		if row.GroupKey != "" && (i == 0 || row.GroupKey != previousGroup) {
			if i > 0 {
				out.WriteString("\n")
			}
			fmt.Fprintf(&out, "== %s ==\n", GroupTitle(row))
		}
		previousGroup = row.GroupKey
		fmt.Fprintf(&out, "%s %s-%s  %s  %s  %s  %s",
			row.Date.Format("02/01/2006"),
			row.DepartureTime,
			row.ArrivalTime,
			row.PilotLabel,
			row.AircraftLabel,
			row.PurposeLabel,
			FormatHours(row.DurationHours))
		if row.Notes != "" {
			fmt.Fprintf(&out, "  (%s)", row.Notes)
		}
		out.WriteString("\n")
	}

	if opts.Footer != "" {
		out.WriteString("\n")
		out.WriteString(opts.Footer)
		out.WriteString("\n")
	}
	return out.String()
}
