package report

import "testing"

func TestGroupKeyFor(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		available bool
		aircraft  uint
		expected  string
	}{
		{"instructor wins over aircraft", CategoryInstructor, false, 10, GroupInstructor},
		{"available tow pilot", CategoryTowPilot, true, 10, GroupTowAvailable},
		{"unavailable tow pilot", CategoryTowPilot, false, 10, GroupTowUnavailable},
		{"aircraft grouping", "", false, 10, "aircraft_10"},
		{"no category no aircraft", "", false, 0, GroupNoAircraft},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := groupKeyFor(test.category, test.available, test.aircraft)
			if key != test.expected {
				t.Errorf("expected %q, got %q", test.expected, key)
			}
		})
	}
}

func TestGroupRunsMatchMaximalRuns(t *testing.T) {
	rows := []Row{
		{Record: Record{AircraftID: 10}},
		{Record: Record{AircraftID: 10}},
		{Record: Record{AircraftID: 20}},
		// The first group reappears after yielding: it must open a new run.
		{Record: Record{AircraftID: 10}},
		{Record: Record{AircraftID: 10}, Category: CategoryInstructor},
	}
	AnnotateGroups(rows)
	if runs := groupRuns(rows); runs != 4 {
		t.Errorf("expected 4 maximal runs, got %d", runs)
	}

	if runs := groupRuns(nil); runs != 0 {
		t.Errorf("empty sequence must emit no headers, got %d", runs)
	}
}

func TestGroupTitle(t *testing.T) {
	row := Row{GroupKey: "aircraft_10", AircraftLabel: "LV-ABC"}
	if title := GroupTitle(&row); title != "LV-ABC" {
		t.Errorf("aircraft groups take the aircraft label, got %q", title)
	}
	row = Row{GroupKey: GroupInstructor}
	if title := GroupTitle(&row); title != "Instructores" {
		t.Errorf("unexpected title %q", title)
	}
}
