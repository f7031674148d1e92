package report

import (
	"bytes"
	"strings"
)

// csvBOM lets spreadsheet imports pick up UTF-8 without prompting.
const csvBOM = "\xEF\xBB\xBF"

var csvHeader = []string{
	"Fecha", "Hora salida", "Hora llegada", "Piloto",
	"Aeronave", "Propósito", "Duración (hs)", "Observaciones",
}

const csvEmptyPlaceholder = "Sin registros en el período"

// RenderCSV serializes rows for spreadsheet import. Every field is quoted
// and embedded quotes are doubled. Rows stamped with group keys get a
// heading row at each run boundary. Totals are deliberately absent: a
// spreadsheet sum over the duration column must match the file content,
// and a totals row would break that.
func RenderCSV(rows []Row) []byte {
	var out bytes.Buffer
	out.WriteString(csvBOM)
	writeCSVLine(&out, csvHeader)

	if len(rows) == 0 {
		writeCSVLine(&out, []string{csvEmptyPlaceholder, "", "", "", "", "", "", ""})
		return out.Bytes()
	}

	previousGroup := ""
	for i := range rows {
		row := &rows[i]
		if row.GroupKey != "" && (i == 0 || row.GroupKey != previousGroup) {
			writeCSVLine(&out, []string{GroupTitle(row), "", "", "", "", "", "", ""})
		}
		previousGroup = row.GroupKey
		writeCSVLine(&out, []string{
			row.Date.Format("02/01/2006"),
			row.DepartureTime,
			row.ArrivalTime,
			row.PilotLabel,
			row.AircraftLabel,
			row.PurposeLabel,
			formatDuration(row.DurationHours),
			row.Notes,
		})
	}
	return out.Bytes()
}

// encoding/csv only quotes fields that need it; the club's spreadsheet
// template expects every field quoted, so the line writer is ours.
func writeCSVLine(out *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			out.WriteByte(',')
		}
		out.WriteByte('"')
		out.WriteString(strings.ReplaceAll(field, `"`, `""`))
		out.WriteByte('"')
	}
	out.WriteString("\r\n")
}
