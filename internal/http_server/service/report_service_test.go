package service

import (
	"testing"
	"time"

	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/aeroclub-dev/clubhouse/internal/report"
)

func uintPtr(v uint) *uint { return &v }

func testReportService() *ReportService {
	return &ReportService{
		config: &c.Config{
			Server: &c.ServerConfig{
				HttpServer: &c.HttpServerConfig{
					Limits: &c.HttpServerLimit{ReportRangeMaxDays: 732},
				},
			},
		},
	}
}

func TestCheckRange(t *testing.T) {
	reportService := testReportService()

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr *ApiStatus
	}{
		{"valid", "2024-01-01", "2024-01-31", nil},
		{"single day", "2024-01-01", "2024-01-01", nil},
		{"inverted", "2024-02-01", "2024-01-01", &ErrIllegalParam},
		{"bad format", "01/01/2024", "2024-01-31", &ErrBadDate},
		{"too wide", "2020-01-01", "2024-01-01", &ErrRangeTooWide},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, status := reportService.checkRange(tt.start, tt.end)
			if status != tt.wantErr {
				t.Errorf("checkRange(%q, %q) status = %v, want %v", tt.start, tt.end, status, tt.wantErr)
			}
		})
	}
}

func TestFormatExt(t *testing.T) {
	tests := []struct {
		format  ExportFormat
		want    string
		wantErr bool
	}{
		{ExportCSV, ".csv", false},
		{ExportPDF, ".pdf", false},
		{ExportText, ".txt", false},
		{ExportFormat("xlsx"), "", true},
	}
	for _, tt := range tests {
		ext, status := formatExt(tt.format)
		if ext != tt.want || (status != nil) != tt.wantErr {
			t.Errorf("formatExt(%q) = (%q, %v), want (%q, err=%v)", tt.format, ext, status, tt.want, tt.wantErr)
		}
	}
}

func TestBuildAgendaRowsOrderingAndGroups(t *testing.T) {
	reportService := testReportService()
	day := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	// Deliberately scrambled: aircraft slots first, then tow, then
	// instructor. The builder must cluster them by presentation group.
	slots := []*operation.AgendaSlot{
		{ID: 1, SlotDate: day, StartTime: "14:00", EndTime: "15:00", Category: operation.SlotPilot, AircraftID: uintPtr(20)},
		{ID: 2, SlotDate: day, StartTime: "09:00", EndTime: "10:00", Category: operation.SlotPilot, AircraftID: uintPtr(10), PilotID: uintPtr(1)},
		{ID: 3, SlotDate: day, StartTime: "10:00", EndTime: "18:00", Category: operation.SlotTowPilot, Available: false},
		{ID: 4, SlotDate: day, StartTime: "09:00", EndTime: "13:00", Category: operation.SlotTowPilot, Available: true, PilotID: uintPtr(2)},
		{ID: 5, SlotDate: day, StartTime: "09:00", EndTime: "18:00", Category: operation.SlotInstructor, Available: true, PilotID: uintPtr(3)},
		{ID: 6, SlotDate: day, StartTime: "10:00", EndTime: "11:00", Category: operation.SlotPilot, AircraftID: uintPtr(10)},
	}
	lookup := report.NewLookup(
		map[uint]string{1: "Ana Suárez", 2: "Bruno Díaz", 3: "Carla Méndez"},
		map[uint]string{10: "LV-ABC", 20: "LV-GGG"},
	)

	rows := reportService.buildAgendaRows(slots, lookup)
	if len(rows) != len(slots) {
		t.Fatalf("got %d rows, want %d", len(rows), len(slots))
	}

	wantOrder := []uint{5, 4, 3, 2, 6, 1}
	for i, want := range wantOrder {
		if rows[i].ID != want {
			t.Fatalf("row %d has slot id %d, want %d", i, rows[i].ID, want)
		}
	}

	wantGroups := []string{"instructor", "tow_available", "tow_unavailable", "aircraft_10", "aircraft_10", "aircraft_20"}
	for i, want := range wantGroups {
		if rows[i].GroupKey != want {
			t.Errorf("row %d group key = %q, want %q", i, rows[i].GroupKey, want)
		}
	}

	if rows[0].PilotLabel != "Carla Méndez" {
		t.Errorf("instructor row pilot label = %q, want %q", rows[0].PilotLabel, "Carla Méndez")
	}
	if rows[3].AircraftLabel != "LV-ABC" {
		t.Errorf("aircraft row label = %q, want %q", rows[3].AircraftLabel, "LV-ABC")
	}
}
