// Package service
package service

import (
	"github.com/aeroclub-dev/clubhouse/internal/report"
)

type ReportServiceInterface interface {
	GetFlightReport(req *RequestFlightReport) *ApiResponse[ResponseFlightReport]
	ExportFlightReport(req *RequestExportFlightReport) *ApiResponse[ResponseExport]
	ExportAgenda(req *RequestExportAgenda) *ApiResponse[ResponseExport]
	SendWeeklySummary(req *RequestWeeklySummary) *ApiResponse[ResponseWeeklySummary]
}

// RequestFlightReport drives the on-screen activity report. Dates are
// "2006-01-02"; FocusPilotID narrows the report to one pilot's flights and
// relabels rows they instructed.
type RequestFlightReport struct {
	JwtHeader
	StartDate    string `query:"start_date"`
	EndDate      string `query:"end_date"`
	FocusPilotID *uint  `query:"pilot_id"`
	AircraftID   *uint  `query:"aircraft_id"`
	Ascending    bool   `query:"ascending"`
}

type ResponseFlightReport struct {
	Rows        []report.Row  `json:"rows"`
	Totals      report.Totals `json:"totals"`
	EngineLabel string        `json:"engine_label"`
	GliderLabel string        `json:"glider_label"`
}

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportPDF  ExportFormat = "pdf"
	ExportText ExportFormat = "text"
)

type RequestExportFlightReport struct {
	JwtHeader
	StartDate    string       `json:"start_date"`
	EndDate      string       `json:"end_date"`
	FocusPilotID *uint        `json:"pilot_id"`
	AircraftID   *uint        `json:"aircraft_id"`
	Ascending    bool         `json:"ascending"`
	Format       ExportFormat `json:"format"`
	Header       string       `json:"header"`
	Footer       string       `json:"footer"`
}

type ResponseExport struct {
	FileSize   int64  `json:"file_size"`
	AccessPath string `json:"access_path"`
}

// RequestExportAgenda exports one day's agenda grouped by instructor and
// tow pilot availability and then by aircraft.
type RequestExportAgenda struct {
	JwtHeader
	Date   string       `json:"date"`
	Format ExportFormat `json:"format"`
}

type RequestWeeklySummary struct {
	JwtHeader
}

type ResponseWeeklySummary struct {
	Recipients int `json:"recipients"`
}
