// Package service
package service

import (
	"fmt"
	"sort"
	"time"

	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/aeroclub-dev/clubhouse/internal/report"
	"golang.org/x/sync/errgroup"
)

type ReportService struct {
	logger            log.LoggerInterface
	config            *c.Config
	pilotOperation    operation.PilotOperationInterface
	aircraftOperation operation.AircraftOperationInterface
	flightOperation   operation.FlightOperationInterface
	slotOperation     operation.SlotOperationInterface
	storeService      StoreServiceInterface
	emailService      EmailServiceInterface
}

func NewReportService(
	logger log.LoggerInterface,
	config *c.Config,
	operations *operation.DatabaseOperations,
	storeService StoreServiceInterface,
	emailService EmailServiceInterface,
) *ReportService {
	return &ReportService{
		logger:            logger,
		config:            config,
		pilotOperation:    operations.PilotOperation(),
		aircraftOperation: operations.AircraftOperation(),
		flightOperation:   operations.FlightOperation(),
		slotOperation:     operations.SlotOperation(),
		storeService:      storeService,
		emailService:      emailService,
	}
}

var (
	SuccessGetReport  = ApiStatus{StatusName: "GET_REPORT_SUCCESS", Description: "Report built", HttpCode: Ok}
	SuccessExport     = ApiStatus{StatusName: "EXPORT_SUCCESS", Description: "Export archived", HttpCode: Ok}
	SuccessWeeklyMail = ApiStatus{StatusName: "WEEKLY_MAIL_SUCCESS", Description: "Weekly summary sent", HttpCode: Ok}
	ErrUnknownFormat  = ApiStatus{StatusName: "UNKNOWN_FORMAT", Description: "Unknown export format", HttpCode: BadRequest}
	ErrWeeklyMailOff  = ApiStatus{StatusName: "WEEKLY_MAIL_DISABLED", Description: "Weekly summary email is disabled", HttpCode: BadRequest}
)

func (reportService *ReportService) checkRange(startValue, endValue string) (time.Time, time.Time, *ApiStatus) {
	start, status := parseDate(startValue)
	if status != nil {
		return time.Time{}, time.Time{}, status
	}
	end, status := parseDate(endValue)
	if status != nil {
		return time.Time{}, time.Time{}, status
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, &ErrIllegalParam
	}
	maxDays := reportService.config.Server.HttpServer.Limits.ReportRangeMaxDays
	if int(end.Sub(start).Hours()/24) > maxDays {
		return time.Time{}, time.Time{}, &ErrRangeTooWide
	}
	return start, end, nil
}

func engineRecord(flight *operation.EngineFlight) report.Record {
	return report.Record{
		Kind:          report.KindEngine,
		ID:            flight.ID,
		Date:          flight.FlightDate,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		DurationHours: flight.DurationHours,
		PilotID:       flight.PilotID,
		InstructorID:  flight.InstructorID,
		AircraftID:    flight.AircraftID,
		Purpose:       flight.Purpose,
		Notes:         flight.Notes,
	}
}

func gliderRecord(flight *operation.GliderFlight) report.Record {
	return report.Record{
		Kind:          report.KindGlider,
		ID:            flight.ID,
		Date:          flight.FlightDate,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		DurationHours: flight.DurationHours,
		PilotID:       flight.PilotID,
		InstructorID:  flight.InstructorID,
		AircraftID:    flight.AircraftID,
		Purpose:       flight.Purpose,
		Notes:         flight.Notes,
	}
}

// fetchRecords loads both logbooks and the name lookups concurrently. A
// failure on any leg fails the whole fetch: a report built from half the
// data would be silently wrong.
func (reportService *ReportService) fetchRecords(start, end time.Time, filter operation.FlightFilter) ([]report.Record, []report.Record, *report.Lookup, error) {
	var (
		engine   []report.Record
		glider   []report.Record
		pilots   map[uint]string
		aircraft map[uint]string
	)

	var group errgroup.Group
	group.Go(func() error {
		flights, err := reportService.flightOperation.GetEngineFlightsInRange(start, end, filter)
		if err != nil {
			return err
		}
		engine = make([]report.Record, 0, len(flights))
		for _, flight := range flights {
			engine = append(engine, engineRecord(flight))
		}
		return nil
	})
	group.Go(func() error {
		flights, err := reportService.flightOperation.GetGliderFlightsInRange(start, end, filter)
		if err != nil {
			return err
		}
		glider = make([]report.Record, 0, len(flights))
		for _, flight := range flights {
			glider = append(glider, gliderRecord(flight))
		}
		return nil
	})
	group.Go(func() error {
		all, err := reportService.pilotOperation.GetAllPilots()
		if err != nil {
			return err
		}
		pilots = make(map[uint]string, len(all))
		for _, pilot := range all {
			pilots[pilot.ID] = pilot.DisplayName()
		}
		return nil
	})
	group.Go(func() error {
		all, err := reportService.aircraftOperation.GetAllAircraft()
		if err != nil {
			return err
		}
		aircraft = make(map[uint]string, len(all))
		for _, airframe := range all {
			aircraft[airframe.ID] = airframe.Registration
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return engine, glider, report.NewLookup(pilots, aircraft), nil
}

func direction(ascending bool) report.Direction {
	if ascending {
		return report.Ascending
	}
	return report.Descending
}

func (reportService *ReportService) GetFlightReport(req *RequestFlightReport) *ApiResponse[ResponseFlightReport] {
	start, end, status := reportService.checkRange(req.StartDate, req.EndDate)
	if status != nil {
		return NewApiResponse[ResponseFlightReport](status, Unsatisfied, nil)
	}

	filter := operation.FlightFilter{PilotID: req.FocusPilotID, AircraftID: req.AircraftID}
	engine, glider, lookup, err := reportService.fetchRecords(start, end, filter)
	if err != nil {
		reportService.logger.ErrorF("ReportService.GetFlightReport fetch error: %v", err)
		return NewApiResponse[ResponseFlightReport](&ErrDatabaseFail, Unsatisfied, nil)
	}

	rows, totals := report.Aggregate(engine, glider, lookup, report.Options{
		FocusPilotID: req.FocusPilotID,
		Direction:    direction(req.Ascending),
	})
	return NewApiResponse(&SuccessGetReport, Unsatisfied, &ResponseFlightReport{
		Rows:        rows,
		Totals:      totals,
		EngineLabel: fmt.Sprintf("%s: %s", report.EngineSectionTitle, report.FormatHours(totals.Engine)),
		GliderLabel: fmt.Sprintf("%s: %s", report.GliderSectionTitle, report.FormatHours(totals.Glider)),
	})
}

func formatExt(format ExportFormat) (string, *ApiStatus) {
	switch format {
	case ExportCSV:
		return ".csv", nil
	case ExportPDF:
		return ".pdf", nil
	case ExportText:
		return ".txt", nil
	default:
		return "", &ErrUnknownFormat
	}
}

func (reportService *ReportService) render(rows []report.Row, totals report.Totals, format ExportFormat, title, header, footer string, withTotals bool) ([]byte, *ApiStatus) {
	switch format {
	case ExportCSV:
		return report.RenderCSV(rows), nil
	case ExportText:
		return []byte(report.RenderText(rows, report.TextOptions{Title: title, Header: header, Footer: footer})), nil
	case ExportPDF:
		content, err := report.RenderPDF(rows, totals, report.PDFOptions{
			Title:      title,
			Subtitle:   header,
			WithTotals: withTotals,
		})
		if err != nil {
			reportService.logger.ErrorF("ReportService.render pdf error: %v", err)
			return nil, &ErrExportFail
		}
		return content, nil
	default:
		return nil, &ErrUnknownFormat
	}
}

func (reportService *ReportService) archive(content []byte, format ExportFormat) *ApiResponse[ResponseExport] {
	ext, status := formatExt(format)
	if status != nil {
		return NewApiResponse[ResponseExport](status, Unsatisfied, nil)
	}
	storeInfo, res := reportService.storeService.SaveExportFile(content, ext)
	if res != nil {
		return NewApiResponse[ResponseExport](res, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessExport, Unsatisfied, &ResponseExport{
		FileSize:   int64(len(content)),
		AccessPath: "/" + storeInfo.RemotePath,
	})
}

func (reportService *ReportService) ExportFlightReport(req *RequestExportFlightReport) *ApiResponse[ResponseExport] {
	start, end, status := reportService.checkRange(req.StartDate, req.EndDate)
	if status != nil {
		return NewApiResponse[ResponseExport](status, Unsatisfied, nil)
	}

	filter := operation.FlightFilter{PilotID: req.FocusPilotID, AircraftID: req.AircraftID}
	engine, glider, lookup, err := reportService.fetchRecords(start, end, filter)
	if err != nil {
		reportService.logger.ErrorF("ReportService.ExportFlightReport fetch error: %v", err)
		return NewApiResponse[ResponseExport](&ErrDatabaseFail, Unsatisfied, nil)
	}

	rows, totals := report.Aggregate(engine, glider, lookup, report.Options{
		FocusPilotID: req.FocusPilotID,
		Direction:    direction(req.Ascending),
	})

	title := fmt.Sprintf("%s - Vuelos del %s al %s",
		reportService.config.Server.General.ClubName,
		start.Format("02/01/2006"), end.Format("02/01/2006"))
	content, status := reportService.render(rows, totals, req.Format, title, req.Header, req.Footer, true)
	if status != nil {
		return NewApiResponse[ResponseExport](status, Unsatisfied, nil)
	}
	return reportService.archive(content, req.Format)
}

// slotSortKey clusters agenda rows so each presentation group comes out
// contiguous: instructors, tow pilots by availability, then aircraft.
func slotSortKey(slot *operation.AgendaSlot) string {
	switch {
	case slot.Category == operation.SlotInstructor:
		return "0"
	case slot.Category == operation.SlotTowPilot && slot.Available:
		return "1"
	case slot.Category == operation.SlotTowPilot:
		return "2"
	case slot.AircraftID != nil:
		return fmt.Sprintf("3_%08d", *slot.AircraftID)
	default:
		return "4"
	}
}

func (reportService *ReportService) buildAgendaRows(slots []*operation.AgendaSlot, lookup *report.Lookup) []report.Row {
	sorted := make([]*operation.AgendaSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		keyI, keyJ := slotSortKey(sorted[i]), slotSortKey(sorted[j])
		if keyI != keyJ {
			return keyI < keyJ
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})

	rows := make([]report.Row, 0, len(sorted))
	for _, slot := range sorted {
		row := report.Row{Record: report.Record{
			ID:            slot.ID,
			Date:          slot.SlotDate,
			DepartureTime: slot.StartTime,
			ArrivalTime:   slot.EndTime,
			Notes:         slot.Notes,
		}}
		switch slot.Category {
		case operation.SlotInstructor:
			row.Category = report.CategoryInstructor
		case operation.SlotTowPilot:
			row.Category = report.CategoryTowPilot
		}
		row.Available = slot.Available
		if slot.PilotID != nil {
			row.PilotID = *slot.PilotID
			row.PilotLabel = lookup.PilotName(*slot.PilotID)
		}
		if slot.AircraftID != nil {
			row.AircraftID = *slot.AircraftID
			row.AircraftLabel = lookup.AircraftName(*slot.AircraftID)
		}
		rows = append(rows, row)
	}
	report.AnnotateGroups(rows)
	return rows
}

func (reportService *ReportService) ExportAgenda(req *RequestExportAgenda) *ApiResponse[ResponseExport] {
	date, status := parseDate(req.Date)
	if status != nil {
		return NewApiResponse[ResponseExport](status, Unsatisfied, nil)
	}

	var (
		slots    []*operation.AgendaSlot
		pilots   map[uint]string
		aircraft map[uint]string
	)
	var group errgroup.Group
	group.Go(func() error {
		var err error
		slots, err = reportService.slotOperation.GetSlotsInRange(date, date)
		return err
	})
	group.Go(func() error {
		all, err := reportService.pilotOperation.GetAllPilots()
		if err != nil {
			return err
		}
		pilots = make(map[uint]string, len(all))
		for _, pilot := range all {
			pilots[pilot.ID] = pilot.DisplayName()
		}
		return nil
	})
	group.Go(func() error {
		all, err := reportService.aircraftOperation.GetAllAircraft()
		if err != nil {
			return err
		}
		aircraft = make(map[uint]string, len(all))
		for _, airframe := range all {
			aircraft[airframe.ID] = airframe.Registration
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		reportService.logger.ErrorF("ReportService.ExportAgenda fetch error: %v", err)
		return NewApiResponse[ResponseExport](&ErrDatabaseFail, Unsatisfied, nil)
	}

	rows := reportService.buildAgendaRows(slots, report.NewLookup(pilots, aircraft))
	title := fmt.Sprintf("%s - Agenda del %s",
		reportService.config.Server.General.ClubName, date.Format("02/01/2006"))
	content, status := reportService.render(rows, report.Totals{}, req.Format, title, "", "", false)
	if status != nil {
		return NewApiResponse[ResponseExport](status, Unsatisfied, nil)
	}
	return reportService.archive(content, req.Format)
}

// SendWeeklySummary mails every subscriber a digest of the previous
// Monday-to-Sunday week. Triggered by an admin, typically from cron.
func (reportService *ReportService) SendWeeklySummary(req *RequestWeeklySummary) *ApiResponse[ResponseWeeklySummary] {
	if _, res := GetPilotAndCheckAdmin[ResponseWeeklySummary](reportService.logger, reportService.pilotOperation, req.Uid); res != nil {
		return res
	}
	if !reportService.config.Server.HttpServer.Email.Template.EnableWeeklySummaryEmail {
		return NewApiResponse[ResponseWeeklySummary](&ErrWeeklyMailOff, Unsatisfied, nil)
	}

	location := reportService.config.Airfield.Location
	now := time.Now().In(location)
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, location).AddDate(0, 0, -weekday)
	weekStart := weekEnd.AddDate(0, 0, -6)

	engine, glider, lookup, err := reportService.fetchRecords(weekStart, weekEnd, operation.FlightFilter{})
	if err != nil {
		reportService.logger.ErrorF("ReportService.SendWeeklySummary fetch error: %v", err)
		return NewApiResponse[ResponseWeeklySummary](&ErrDatabaseFail, Unsatisfied, nil)
	}
	rows, totals := report.Aggregate(engine, glider, lookup, report.Options{})

	subscribers, err := reportService.pilotOperation.GetWeeklySummarySubscribers()
	if err != nil {
		reportService.logger.ErrorF("ReportService.SendWeeklySummary subscribers error: %v", err)
		return NewApiResponse[ResponseWeeklySummary](&ErrDatabaseFail, Unsatisfied, nil)
	}

	recipients := 0
	for _, pilot := range subscribers {
		ownCount := 0
		ownTotals := report.Totals{}
		for _, row := range rows {
			mine := row.PilotID == pilot.ID ||
				(row.InstructorID != nil && *row.InstructorID == pilot.ID)
			if !mine {
				continue
			}
			ownCount++
			if row.Counted || row.PilotID == pilot.ID {
				if row.Kind == report.KindEngine {
					ownTotals.Engine += row.DurationHours
				} else {
					ownTotals.Glider += row.DurationHours
				}
			}
		}
		summary := &WeeklySummaryData{
			ClubName:    reportService.config.Server.General.ClubName,
			PilotName:   pilot.DisplayName(),
			WeekStart:   weekStart.Format("02/01/2006"),
			WeekEnd:     weekEnd.Format("02/01/2006"),
			FlightCount: len(rows),
			Totals:      totals,
			OwnCount:    ownCount,
			OwnTotals:   ownTotals,
		}
		if err := reportService.emailService.SendWeeklySummaryEmail(pilot, summary); err != nil {
			reportService.logger.WarnF("ReportService.SendWeeklySummary send to %s error: %v", pilot.Email, err)
			continue
		}
		recipients++
	}
	return NewApiResponse(&SuccessWeeklyMail, Unsatisfied, &ResponseWeeklySummary{Recipients: recipients})
}
