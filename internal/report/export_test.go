package report

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func exportRows(t *testing.T) []Row {
	t.Helper()
	engine := []Record{
		{Date: day("2024-06-01"), DepartureTime: "10:00", ArrivalTime: "11:30",
			DurationHours: 1.5, PilotID: 1, AircraftID: 10, Purpose: PurposeLocal,
			Notes: `despegue pista "18"`},
	}
	rows, _ := Aggregate(engine, nil, testLookup(), Options{})
	return rows
}

func TestRenderCSV(t *testing.T) {
	out := RenderCSV(exportRows(t))
	if !bytes.HasPrefix(out, []byte(csvBOM)) {
		t.Error("CSV output must start with the UTF-8 BOM")
	}
	content := string(out[len(csvBOM):])
	lines := strings.Split(strings.TrimRight(content, "\r\n"), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one record, got %d lines", len(lines))
	}
	if lines[0] != `"Fecha","Hora salida","Hora llegada","Piloto","Aeronave","Propósito","Duración (hs)","Observaciones"` {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], `"despegue pista ""18"""`) {
		t.Errorf("embedded quotes must be doubled, got %q", lines[1])
	}
	if !strings.Contains(lines[1], `"1.5"`) {
		t.Errorf("duration column must hold the bare decimal, got %q", lines[1])
	}
	if strings.Contains(content, "Total") {
		t.Error("CSV must not carry a totals row")
	}
}

func TestRenderCSVEmpty(t *testing.T) {
	out := string(RenderCSV(nil))
	if !strings.Contains(out, csvEmptyPlaceholder) {
		t.Error("empty export must emit the placeholder row")
	}
}

func TestRenderCSVGroupHeaders(t *testing.T) {
	rows := []Row{
		{Record: Record{Date: day("2024-06-01"), AircraftID: 10}, AircraftLabel: "LV-ABC"},
		{Record: Record{Date: day("2024-06-01"), AircraftID: 20}, AircraftLabel: "LV-GGG"},
		{Record: Record{Date: day("2024-06-01"), AircraftID: 20}, AircraftLabel: "LV-GGG"},
	}
	AnnotateGroups(rows)
	content := string(RenderCSV(rows))
	if strings.Count(content, `"LV-ABC","","","","","","",""`) != 1 {
		t.Error("expected one heading row for the first group")
	}
	if strings.Count(content, `"LV-GGG","","","","","","",""`) != 1 {
		t.Error("consecutive rows of one group share a single heading")
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(exportRows(t), TextOptions{
		Title:  "Vuelos de junio",
		Header: "Club de Planeadores",
		Footer: "Generado automáticamente",
	})
	for _, fragment := range []string{
		"Vuelos de junio", "Club de Planeadores", "Generado automáticamente",
		"01/06/2024 10:00-11:30", "Ana Suárez", "LV-ABC", "Vuelo local", "1.5 hs",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("share text missing %q:\n%s", fragment, out)
		}
	}

	if out := RenderText(nil, TextOptions{}); !strings.Contains(out, csvEmptyPlaceholder) {
		t.Error("empty share text must emit the placeholder line")
	}
}

func TestRenderPDF(t *testing.T) {
	rows := exportRows(t)
	out, err := RenderPDF(rows, Totals{Engine: 1.5}, PDFOptions{
		Title: "Reporte de vuelos", WithTotals: true,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}

	if _, err := RenderPDF(nil, Totals{}, PDFOptions{Title: "Reporte"}); err != nil {
		t.Fatalf("empty report must still render: %v", err)
	}
}

func TestRenderPDFWrapsLongNotes(t *testing.T) {
	longNote := strings.Repeat("remolque hasta 600m, corte por turbulencia, ", 7)
	makeRows := func(notes string) []Row {
		rows := make([]Row, 20)
		for i := range rows {
			rows[i] = Row{
				Record: Record{Date: day("2024-06-01"), DepartureTime: "10:00",
					ArrivalTime: "10:30", DurationHours: 0.5, Notes: notes},
				PilotLabel: "Carla Méndez", AircraftLabel: "LV-ABC",
			}
		}
		return rows
	}
	short, err := RenderPDF(makeRows(""), Totals{}, PDFOptions{Title: "Reporte"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	long, err := RenderPDF(makeRows(longNote), Totals{}, PDFOptions{Title: "Reporte"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got := pdfPageCount(t, long); got <= pdfPageCount(t, short) {
		t.Errorf("long notes must wrap onto extra rows, got %d pages vs %d", got, pdfPageCount(t, short))
	}
}

func pdfPageCount(t *testing.T, doc []byte) int {
	t.Helper()
	match := regexp.MustCompile(`/Count (\d+)`).FindSubmatch(doc)
	if match == nil {
		t.Fatal("no page tree found in PDF output")
	}
	count, err := strconv.Atoi(string(match[1]))
	if err != nil {
		t.Fatalf("bad page count: %v", err)
	}
	return count
}
