package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFOptions configures the printable report.
type PDFOptions struct {
	Title    string
	Subtitle string
	// WithTotals appends the per-kind hour footer. Billing reports want
	// it, agenda exports do not.
	WithTotals bool
}

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Fecha", 24},
	{"Salida", 16},
	{"Llegada", 16},
	{"Piloto", 70},
	{"Aeronave", 40},
	{"Propósito", 45},
	{"Hs", 14},
	{"Observaciones", 52},
}

const pdfRowHeight = 6.0

// RenderPDF builds the printable A4-landscape report: repeating column
// headings on every page, shaded group heading rows, and an optional bold
// totals footer.
func RenderPDF(rows []Row, totals Totals, opts PDFOptions) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 14)

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 7, translate(opts.Title), "", 1, "C", false, 0, "")
		if opts.Subtitle != "" {
			pdf.SetFont("Helvetica", "", 9)
			pdf.CellFormat(0, 5, translate(opts.Subtitle), "", 1, "C", false, 0, "")
		}
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(220, 220, 220)
		for _, column := range pdfColumns {
			pdf.CellFormat(column.width, pdfRowHeight, translate(column.title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	})
	pdf.AddPage()

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, pdfRowHeight, translate(csvEmptyPlaceholder), "1", 1, "C", false, 0, "")
	}

	tableWidth := 0.0
	for _, column := range pdfColumns {
		tableWidth += column.width
	}
	leftMargin, _, _, bottomMargin := pdf.GetMargins()
	_, pageHeight := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "", 8)
	previousGroup := ""
	for i := range rows {
		row := &rows[i]
		if row.GroupKey != "" && (i == 0 || row.GroupKey != previousGroup) {
			pdf.SetFont("Helvetica", "B", 8)
			pdf.SetFillColor(235, 235, 235)
			pdf.CellFormat(tableWidth, pdfRowHeight, translate(GroupTitle(row)), "1", 1, "L", true, 0, "")
			pdf.SetFont("Helvetica", "", 8)
		}
		previousGroup = row.GroupKey

		cells := []string{
			translate(row.Date.Format("02/01/2006")),
			row.DepartureTime,
			row.ArrivalTime,
			translate(row.PilotLabel),
			translate(row.AircraftLabel),
			translate(row.PurposeLabel),
			formatDuration(row.DurationHours),
			translate(row.Notes),
		}
		// Long pilot names and free-text notes wrap; the row grows to the
		// tallest cell so nothing gets cut off.
		lineCount := 1
		for j, column := range pdfColumns {
			if n := len(pdf.SplitText(cells[j], column.width-2)); n > lineCount {
				lineCount = n
			}
		}
		rowHeight := float64(lineCount) * pdfRowHeight

		if pdf.GetY()+rowHeight > pageHeight-bottomMargin {
			pdf.AddPage()
		}
		x, y := leftMargin, pdf.GetY()
		for j, column := range pdfColumns {
			pdf.Rect(x, y, column.width, rowHeight, "D")
			align := "L"
			if j == 6 {
				align = "R"
			}
			pdf.SetXY(x, y)
			pdf.MultiCell(column.width, pdfRowHeight, cells[j], "", align, false)
			x += column.width
		}
		pdf.SetXY(leftMargin, y+rowHeight)
	}

	if opts.WithTotals {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, pdfRowHeight,
			translate(fmt.Sprintf("Total motor: %s    Total planeador: %s",
				FormatHours(totals.Engine), FormatHours(totals.Glider))),
			"", 1, "R", false, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
