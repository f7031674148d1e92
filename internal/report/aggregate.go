package report

import (
	"fmt"
	"sort"
)

type Direction int

const (
	Descending Direction = iota
	Ascending
)

// Options tunes one aggregation pass. FocusPilotID, when set, relabels rows
// flown under that pilot's instruction so the instructor's own report reads
// "<instructor> (Instr. de <student>)".
type Options struct {
	FocusPilotID *uint
	Direction    Direction
}

// Aggregate merges engine and glider records into one ordered display
// sequence and computes per-kind hour totals.
//
// Every input record yields exactly one output row. The sort is stable on
// (date, departure time); records with equal keys keep their input order.
// Totals deduplicate instructional legs: the first sighting of a physical
// flight counts, a later instructional sighting of the same flight does not.
func Aggregate(engine []Record, glider []Record, lookup *Lookup, opts Options) ([]Row, Totals) {
	rows := make([]Row, 0, len(engine)+len(glider))
	for _, record := range engine {
		record.Kind = KindEngine
		rows = append(rows, Row{Record: record})
	}
	for _, record := range glider {
		record.Kind = KindGlider
		rows = append(rows, Row{Record: record})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if opts.Direction == Ascending {
			return rowLess(&rows[i], &rows[j])
		}
		return rowLess(&rows[j], &rows[i])
	})

	totals := Totals{}
	seen := make(map[string]bool, len(rows))
	for i := range rows {
		row := &rows[i]
		key := row.physicalKey()
		if instructional(row.Purpose) && seen[key] {
			row.Counted = false
		} else {
			row.Counted = true
			switch row.Kind {
			case KindEngine:
				totals.Engine += row.DurationHours
			case KindGlider:
				totals.Glider += row.DurationHours
			}
		}
		seen[key] = true

		row.PilotLabel = pilotLabel(row, lookup, opts.FocusPilotID)
		row.AircraftLabel = lookup.AircraftName(row.AircraftID)
		row.PurposeLabel = PurposeName(row.Purpose)
	}
	return rows, totals
}

func rowLess(a *Row, b *Row) bool {
	dateA, dateB := a.Date.Format("2006-01-02"), b.Date.Format("2006-01-02")
	if dateA != dateB {
		return dateA < dateB
	}
	// "HH:MM" compares chronologically as text.
	return a.DepartureTime < b.DepartureTime
}

func pilotLabel(row *Row, lookup *Lookup, focus *uint) string {
	if focus != nil && row.InstructorID != nil && *row.InstructorID == *focus {
		return fmt.Sprintf("%s (Instr. de %s)",
			lookup.PilotName(*row.InstructorID), lookup.PilotName(row.PilotID))
	}
	return lookup.PilotName(row.PilotID)
}
