package report

import (
	"reflect"
	"testing"
	"time"
)

func day(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func testLookup() *Lookup {
	return NewLookup(
		map[uint]string{1: "Ana Suárez", 2: "Bruno Díaz", 3: "Carla Méndez"},
		map[uint]string{10: "LV-ABC", 20: "LV-GGG"},
	)
}

func TestAggregateMergeAndOrder(t *testing.T) {
	engine := []Record{
		{ID: 1, Date: day("2024-06-01"), DepartureTime: "10:00", ArrivalTime: "11:30",
			DurationHours: 1.5, PilotID: 1, AircraftID: 10, Purpose: PurposeLocal},
	}
	glider := []Record{
		{ID: 2, Date: day("2024-06-01"), DepartureTime: "09:00", ArrivalTime: "09:48",
			DurationHours: 0.8, PilotID: 2, AircraftID: 20, Purpose: PurposeTraining},
	}

	rows, totals := Aggregate(engine, glider, testLookup(), Options{})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Kind != KindEngine || rows[1].Kind != KindGlider {
		t.Errorf("descending order should place the 10:00 engine flight first, got %s then %s",
			rows[0].Kind, rows[1].Kind)
	}
	if totals.Engine != 1.5 || totals.Glider != 0.8 {
		t.Errorf("unexpected totals %+v", totals)
	}

	rows, _ = Aggregate(engine, glider, testLookup(), Options{Direction: Ascending})
	if rows[0].Kind != KindGlider {
		t.Errorf("ascending order should place the 09:00 glider flight first, got %s", rows[0].Kind)
	}
}

func TestAggregateInstructionalDedup(t *testing.T) {
	instructor := uint(3)
	glider := []Record{
		{ID: 1, Date: day("2024-06-01"), DepartureTime: "09:00", DurationHours: 0.8,
			PilotID: 2, InstructorID: &instructor, AircraftID: 20, Purpose: PurposeInstructionReceived},
		{ID: 2, Date: day("2024-06-01"), DepartureTime: "09:00", DurationHours: 0.8,
			PilotID: 3, AircraftID: 20, Purpose: PurposeInstructionGiven},
	}

	rows, totals := Aggregate(nil, glider, testLookup(), Options{})
	if len(rows) != 2 {
		t.Fatalf("both sightings must stay visible, got %d rows", len(rows))
	}
	if totals.Glider != 0.8 {
		t.Errorf("shared instructional leg must count once, got %.1f", totals.Glider)
	}
	counted := 0
	for _, row := range rows {
		if row.Counted {
			counted++
		}
	}
	if counted != 1 {
		t.Errorf("exactly one sighting should be counted, got %d", counted)
	}
}

func TestAggregateTotalsInvariant(t *testing.T) {
	tests := []struct {
		name     string
		glider   []Record
		expected float64
	}{
		{
			name: "distinct flights all count",
			glider: []Record{
				{Date: day("2024-06-01"), DepartureTime: "09:00", DurationHours: 1.0, AircraftID: 20, Purpose: PurposeTraining},
				{Date: day("2024-06-01"), DepartureTime: "11:00", DurationHours: 2.0, AircraftID: 20, Purpose: PurposeTraining},
			},
			expected: 3.0,
		},
		{
			name: "same key without instruction still counts twice",
			glider: []Record{
				{Date: day("2024-06-01"), DepartureTime: "09:00", DurationHours: 1.0, AircraftID: 20, Purpose: PurposeLocal},
				{Date: day("2024-06-01"), DepartureTime: "09:00", DurationHours: 1.0, AircraftID: 20, Purpose: PurposeLocal},
			},
			expected: 2.0,
		},
		{
			name: "instructional repeat is skipped",
			glider: []Record{
				{Date: day("2024-06-01"), DepartureTime: "09:00", DurationHours: 1.0, AircraftID: 20, Purpose: PurposeInstructionGiven},
				{Date: day("2024-06-01"), DepartureTime: "09:00", DurationHours: 1.0, AircraftID: 20, Purpose: PurposeInstructionReceived},
			},
			expected: 1.0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rows, totals := Aggregate(nil, test.glider, testLookup(), Options{})
			if len(rows) != len(test.glider) {
				t.Fatalf("row count changed: %d in, %d out", len(test.glider), len(rows))
			}
			if totals.Glider != test.expected {
				t.Errorf("expected glider total %.1f, got %.1f", test.expected, totals.Glider)
			}
			sum := 0.0
			for _, record := range test.glider {
				sum += record.DurationHours
			}
			if totals.Glider > sum {
				t.Errorf("total %.1f exceeds raw sum %.1f", totals.Glider, sum)
			}
		})
	}
}

func TestAggregateEmptyRange(t *testing.T) {
	rows, totals := Aggregate(nil, nil, testLookup(), Options{})
	if len(rows) != 0 {
		t.Errorf("expected empty sequence, got %d rows", len(rows))
	}
	if totals.Engine != 0 || totals.Glider != 0 {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}

func TestAggregateUnknownReferences(t *testing.T) {
	engine := []Record{
		{Date: day("2024-06-01"), DepartureTime: "10:00", DurationHours: 1.0,
			PilotID: 99, AircraftID: 77, Purpose: PurposeLocal},
	}
	rows, _ := Aggregate(engine, nil, testLookup(), Options{})
	if rows[0].PilotLabel != "Unknown Pilot" {
		t.Errorf("expected pilot placeholder, got %q", rows[0].PilotLabel)
	}
	if rows[0].AircraftLabel != "Unknown Aircraft" {
		t.Errorf("expected aircraft placeholder, got %q", rows[0].AircraftLabel)
	}
}

func TestAggregateFocusPilotLabel(t *testing.T) {
	instructor := uint(3)
	engine := []Record{
		{Date: day("2024-06-01"), DepartureTime: "10:00", DurationHours: 1.0,
			PilotID: 1, InstructorID: &instructor, AircraftID: 10, Purpose: PurposeInstructionReceived},
		{Date: day("2024-06-01"), DepartureTime: "14:00", DurationHours: 1.0,
			PilotID: 1, AircraftID: 10, Purpose: PurposeLocal},
	}

	rows, _ := Aggregate(engine, nil, testLookup(), Options{FocusPilotID: &instructor, Direction: Ascending})
	if rows[0].PilotLabel != "Carla Méndez (Instr. de Ana Suárez)" {
		t.Errorf("unexpected instruction label %q", rows[0].PilotLabel)
	}
	if rows[1].PilotLabel != "Ana Suárez" {
		t.Errorf("non-instructional row must keep the plain name, got %q", rows[1].PilotLabel)
	}

	// Without a focus pilot the same flight shows the student alone.
	rows, _ = Aggregate(engine, nil, testLookup(), Options{Direction: Ascending})
	if rows[0].PilotLabel != "Ana Suárez" {
		t.Errorf("expected plain student name, got %q", rows[0].PilotLabel)
	}
}

func TestAggregateStableSortAndIdempotence(t *testing.T) {
	glider := []Record{
		{ID: 1, Date: day("2024-06-01"), DepartureTime: "09:00", DurationHours: 0.5, PilotID: 1, AircraftID: 20, Purpose: PurposeTraining},
		{ID: 2, Date: day("2024-06-01"), DepartureTime: "09:00", DurationHours: 0.6, PilotID: 2, AircraftID: 20, Purpose: PurposeTraining},
		{ID: 3, Date: day("2024-06-01"), DepartureTime: "09:00", DurationHours: 0.7, PilotID: 3, AircraftID: 20, Purpose: PurposeTraining},
	}

	for _, direction := range []Direction{Descending, Ascending} {
		rows, _ := Aggregate(nil, glider, testLookup(), Options{Direction: direction})
		for i, row := range rows {
			if row.ID != uint(i+1) {
				t.Errorf("direction %d: ties must keep input order, position %d holds id %d",
					direction, i, row.ID)
			}
		}
	}

	first, firstTotals := Aggregate(nil, glider, testLookup(), Options{})
	second, secondTotals := Aggregate(nil, glider, testLookup(), Options{})
	if !reflect.DeepEqual(first, second) || firstTotals != secondTotals {
		t.Error("repeated aggregation over the same input must be identical")
	}
}

func TestPurposeName(t *testing.T) {
	if PurposeName(PurposeInstructionReceived) != "Instrucción recibida" {
		t.Errorf("unexpected translation %q", PurposeName(PurposeInstructionReceived))
	}
	if PurposeName("ferry") != "ferry" {
		t.Errorf("unknown codes must pass through, got %q", PurposeName("ferry"))
	}
}

func TestFormatHours(t *testing.T) {
	if FormatHours(1.25) != "1.2 hs" {
		t.Errorf("unexpected format %q", FormatHours(1.25))
	}
	if FormatHours(0) != "0.0 hs" {
		t.Errorf("unexpected format %q", FormatHours(0))
	}
}
