package report

import "fmt"

// Presentation categories carried over from agenda rows.
const (
	CategoryInstructor = "Instructor"
	CategoryTowPilot   = "Tow pilot"
)

const (
	GroupInstructor     = "instructor"
	GroupTowAvailable   = "tow_available"
	GroupTowUnavailable = "tow_unavailable"
	GroupNoAircraft     = "no_aircraft"
)

// groupKeyFor assigns the presentation group for one row. Instructor rows
// outrank tow rows which outrank the aircraft grouping; rows with no
// category and no aircraft fall into a catch-all bucket.
func groupKeyFor(category string, available bool, aircraftID uint) string {
	switch {
	case category == CategoryInstructor:
		return GroupInstructor
	case category == CategoryTowPilot && available:
		return GroupTowAvailable
	case category == CategoryTowPilot:
		return GroupTowUnavailable
	case aircraftID != 0:
		return fmt.Sprintf("aircraft_%d", aircraftID)
	default:
		return GroupNoAircraft
	}
}

// AnnotateGroups stamps every row with its group key. Rows are NOT
// reordered: a group that appears, yields to another, and appears again
// produces two separate header runs in the rendered output.
func AnnotateGroups(rows []Row) {
	for i := range rows {
		rows[i].GroupKey = groupKeyFor(rows[i].Category, rows[i].Available, rows[i].AircraftID)
	}
}

// GroupTitle resolves the display heading for a group run, given any row
// belonging to it.
func GroupTitle(row *Row) string {
	switch row.GroupKey {
	case GroupInstructor:
		return "Instructores"
	case GroupTowAvailable:
		return "Remolcadores disponibles"
	case GroupTowUnavailable:
		return "Remolcadores no disponibles"
	case GroupNoAircraft:
		return "Sin aeronave"
	default:
		return row.AircraftLabel
	}
}

// groupRuns counts the maximal runs of equal group keys, which equals the
// number of group headers any renderer will emit.
func groupRuns(rows []Row) int {
	runs := 0
	previous := ""
	for i := range rows {
		if i == 0 || rows[i].GroupKey != previous {
			runs++
		}
		previous = rows[i].GroupKey
	}
	return runs
}
