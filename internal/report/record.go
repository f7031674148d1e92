// Package report implements the logbook reporting pipeline: merging engine
// and glider flights into one display sequence, computing per-kind hour
// totals without double counting shared instructional legs, and rendering
// the result as screen rows, share text, CSV or PDF.
package report

import (
	"fmt"
	"time"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/global"
)

type Kind string

const (
	KindEngine Kind = "engine"
	KindGlider Kind = "glider"
)

// Record is one flight seen by the reporting pipeline, flattened from
// either logbook table. DurationHours is authoritative; arrival may
// precede departure when a flight crosses midnight, so duration is never
// derived from the two clock times.
type Record struct {
	Kind          Kind
	ID            uint
	Date          time.Time
	DepartureTime string // local "HH:MM"
	ArrivalTime   string
	DurationHours float64
	PilotID       uint
	InstructorID  *uint
	AircraftID    uint
	Purpose       string
	Notes         string
}

// physicalKey identifies "the same physical flight" across two log entries:
// an instructional leg appears once in the student's log and once in the
// instructor's, but only one of them may count toward the totals.
func (r *Record) physicalKey() string {
	return fmt.Sprintf("%s|%s|%d", r.Date.Format("2006-01-02"), r.DepartureTime, r.AircraftID)
}

// Row is a Record annotated with everything the renderers need.
type Row struct {
	Record
	PilotLabel    string `json:"pilot"`
	AircraftLabel string `json:"aircraft"`
	PurposeLabel  string `json:"purpose"`
	// Counted is false when this row is the second sighting of an
	// instructional leg and its duration was skipped.
	Counted bool `json:"counted"`
	// Category and Available drive the presentation grouping for agenda
	// style exports; plain logbook rows leave them zero.
	Category  string `json:"category,omitempty"`
	Available bool   `json:"available,omitempty"`
	GroupKey  string `json:"group_key"`
}

// Section titles shown above each flight kind in reports and summaries.
const (
	EngineSectionTitle = "Vuelos a motor"
	GliderSectionTitle = "Vuelos en planeador"
)

type Totals struct {
	Engine float64 `json:"engine"`
	Glider float64 `json:"glider"`
}

func (t Totals) ByKind(kind Kind) float64 {
	if kind == KindEngine {
		return t.Engine
	}
	return t.Glider
}

// FormatHours renders a decimal hour total the way the club reads it.
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1f hs", hours)
}

// formatDuration is the bare numeric form used in tabular exports, where
// the unit lives in the column heading.
func formatDuration(hours float64) string {
	return fmt.Sprintf("%.1f", hours)
}

// Lookup resolves pilot and aircraft ids to display names. Misses degrade
// to fixed placeholders so a referential gap never aborts a report.
type Lookup struct {
	pilots   map[uint]string
	aircraft map[uint]string
}

func NewLookup(pilots map[uint]string, aircraft map[uint]string) *Lookup {
	if pilots == nil {
		pilots = make(map[uint]string)
	}
	if aircraft == nil {
		aircraft = make(map[uint]string)
	}
	return &Lookup{pilots: pilots, aircraft: aircraft}
}

func (lookup *Lookup) PilotName(id uint) string {
	if name, ok := lookup.pilots[id]; ok {
		return name
	}
	return global.UnknownPilotName
}

func (lookup *Lookup) AircraftName(id uint) string {
	if name, ok := lookup.aircraft[id]; ok {
		return name
	}
	return global.UnknownAircraftName
}
