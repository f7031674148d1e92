// Package service
package service

import (
	"time"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
)

type FlightService struct {
	logger            log.LoggerInterface
	pilotOperation    operation.PilotOperationInterface
	aircraftOperation operation.AircraftOperationInterface
	flightOperation   operation.FlightOperationInterface
}

func NewFlightService(
	logger log.LoggerInterface,
	pilotOperation operation.PilotOperationInterface,
	aircraftOperation operation.AircraftOperationInterface,
	flightOperation operation.FlightOperationInterface,
) *FlightService {
	return &FlightService{
		logger:            logger,
		pilotOperation:    pilotOperation,
		aircraftOperation: aircraftOperation,
		flightOperation:   flightOperation,
	}
}

var (
	ErrBadDate        = ApiStatus{StatusName: "BAD_DATE", Description: "Date must be formatted 2006-01-02", HttpCode: BadRequest}
	ErrBadClockTime   = ApiStatus{StatusName: "BAD_CLOCK_TIME", Description: "Clock times must be formatted HH:MM", HttpCode: BadRequest}
	ErrBadDuration    = ApiStatus{StatusName: "BAD_DURATION", Description: "Duration must be a positive decimal hour count", HttpCode: BadRequest}
	SuccessAddFlight  = ApiStatus{StatusName: "ADD_FLIGHT_SUCCESS", Description: "Flight logged", HttpCode: Ok}
	SuccessEditFlight = ApiStatus{StatusName: "EDIT_FLIGHT_SUCCESS", Description: "Flight updated", HttpCode: Ok}
	SuccessDelFlight  = ApiStatus{StatusName: "DELETE_FLIGHT_SUCCESS", Description: "Flight removed", HttpCode: Ok}
	SuccessGetFlights = ApiStatus{StatusName: "GET_FLIGHTS_SUCCESS", Description: "Flights fetched", HttpCode: Ok}
)

func parseDate(value string) (time.Time, *ApiStatus) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &ErrBadDate
	}
	return date, nil
}

func validClockTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

// checkCommonFields validates the fields shared by both logbooks. Arrival
// may precede departure, flights cross midnight; duration stands alone.
func checkCommonFields[T any](dateValue, departure, arrival string, duration float64) (time.Time, *ApiResponse[T]) {
	date, status := parseDate(dateValue)
	if status != nil {
		return time.Time{}, NewApiResponse[T](status, Unsatisfied, nil)
	}
	if !validClockTime(departure) || !validClockTime(arrival) {
		return time.Time{}, NewApiResponse[T](&ErrBadClockTime, Unsatisfied, nil)
	}
	if duration <= 0 || duration > 24 {
		return time.Time{}, NewApiResponse[T](&ErrBadDuration, Unsatisfied, nil)
	}
	return date, nil
}

func (flightService *FlightService) checkAircraft(id uint) *ApiStatus {
	if _, err := flightService.aircraftOperation.GetAircraftByID(id); err != nil {
		return &ErrAircraftNotFound
	}
	return nil
}

func (flightService *FlightService) AddEngineFlight(req *RequestAddEngineFlight) *ApiResponse[ResponseAddEngineFlight] {
	date, res := checkCommonFields[ResponseAddEngineFlight](req.FlightDate, req.DepartureTime, req.ArrivalTime, req.DurationHours)
	if res != nil {
		return res
	}
	if req.Purpose == "" {
		return NewApiResponse[ResponseAddEngineFlight](&ErrIllegalParam, Unsatisfied, nil)
	}
	if status := flightService.checkAircraft(req.AircraftID); status != nil {
		return NewApiResponse[ResponseAddEngineFlight](status, Unsatisfied, nil)
	}

	flight := &operation.EngineFlight{
		FlightDate:      date,
		PilotID:         req.Uid,
		InstructorID:    req.InstructorID,
		AircraftID:      req.AircraftID,
		DepartureTime:   req.DepartureTime,
		ArrivalTime:     req.ArrivalTime,
		DurationHours:   req.DurationHours,
		Purpose:         req.Purpose,
		Notes:           req.Notes,
		SlotID:          req.SlotID,
		BillableMinutes: req.BillableMinutes,
		Route:           req.Route,
		Landings:        req.Landings,
		Tows:            req.Tows,
		OilAddedLiters:  req.OilAddedLiters,
		FuelAddedLiters: req.FuelAddedLiters,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAddEngineFlight](flightService.logger, func() (*interface{}, error) {
		return nil, flightService.flightOperation.AddEngineFlight(flight)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessAddFlight, Unsatisfied, (*ResponseAddEngineFlight)(flight))
}

func (flightService *FlightService) AddGliderFlight(req *RequestAddGliderFlight) *ApiResponse[ResponseAddGliderFlight] {
	date, res := checkCommonFields[ResponseAddGliderFlight](req.FlightDate, req.DepartureTime, req.ArrivalTime, req.DurationHours)
	if res != nil {
		return res
	}
	if req.Purpose == "" {
		return NewApiResponse[ResponseAddGliderFlight](&ErrIllegalParam, Unsatisfied, nil)
	}
	if status := flightService.checkAircraft(req.AircraftID); status != nil {
		return NewApiResponse[ResponseAddGliderFlight](status, Unsatisfied, nil)
	}
	if req.TowAircraftID != nil {
		if status := flightService.checkAircraft(*req.TowAircraftID); status != nil {
			return NewApiResponse[ResponseAddGliderFlight](status, Unsatisfied, nil)
		}
	}

	flight := &operation.GliderFlight{
		FlightDate:    date,
		PilotID:       req.Uid,
		InstructorID:  req.InstructorID,
		AircraftID:    req.AircraftID,
		TowPilotID:    req.TowPilotID,
		TowAircraftID: req.TowAircraftID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		DurationHours: req.DurationHours,
		Purpose:       req.Purpose,
		Notes:         req.Notes,
		SlotID:        req.SlotID,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseAddGliderFlight](flightService.logger, func() (*interface{}, error) {
		return nil, flightService.flightOperation.AddGliderFlight(flight)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessAddFlight, Unsatisfied, (*ResponseAddGliderFlight)(flight))
}

// canTouchFlight allows the logging pilot and admins; nobody else edits a
// logbook entry.
func (flightService *FlightService) canTouchFlight(req JwtHeader, ownerID uint) bool {
	return req.Admin || req.Uid == ownerID
}

func engineFieldUpdates(fields *EngineFlightFields, date time.Time) map[string]interface{} {
	info := map[string]interface{}{
		"flight_date":    date,
		"instructor_id":  fields.InstructorID,
		"aircraft_id":    fields.AircraftID,
		"departure_time": fields.DepartureTime,
		"arrival_time":   fields.ArrivalTime,
		"duration_hours": fields.DurationHours,
		"purpose":        fields.Purpose,
		"notes":          fields.Notes,
		"slot_id":        fields.SlotID,
	}
	if fields.BillableMinutes != nil {
		info["billable_minutes"] = *fields.BillableMinutes
	}
	if fields.Route != nil {
		info["route"] = *fields.Route
	}
	if fields.Landings != nil {
		info["landings"] = *fields.Landings
	}
	if fields.Tows != nil {
		info["tows"] = *fields.Tows
	}
	if fields.OilAddedLiters != nil {
		info["oil_added_liters"] = *fields.OilAddedLiters
	}
	if fields.FuelAddedLiters != nil {
		info["fuel_added_liters"] = *fields.FuelAddedLiters
	}
	return info
}

func (flightService *FlightService) EditEngineFlight(req *RequestEditEngineFlight) *ApiResponse[ResponseEditEngineFlight] {
	flight, res := CallDBFuncAndCheckError[operation.EngineFlight, ResponseEditEngineFlight](flightService.logger, func() (*operation.EngineFlight, error) {
		return flightService.flightOperation.GetEngineFlightByID(req.TargetID)
	})
	if res != nil {
		return res
	}
	if !flightService.canTouchFlight(req.JwtHeader, flight.PilotID) {
		return NewApiResponse[ResponseEditEngineFlight](&ErrNotFlightOwner, Unsatisfied, nil)
	}
	date, res := checkCommonFields[ResponseEditEngineFlight](req.FlightDate, req.DepartureTime, req.ArrivalTime, req.DurationHours)
	if res != nil {
		return res
	}
	if status := flightService.checkAircraft(req.AircraftID); status != nil {
		return NewApiResponse[ResponseEditEngineFlight](status, Unsatisfied, nil)
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseEditEngineFlight](flightService.logger, func() (*interface{}, error) {
		return nil, flightService.flightOperation.UpdateEngineFlight(flight, engineFieldUpdates(&req.EngineFlightFields, date))
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessEditFlight, Unsatisfied, (*ResponseEditEngineFlight)(flight))
}

func (flightService *FlightService) EditGliderFlight(req *RequestEditGliderFlight) *ApiResponse[ResponseEditGliderFlight] {
	flight, res := CallDBFuncAndCheckError[operation.GliderFlight, ResponseEditGliderFlight](flightService.logger, func() (*operation.GliderFlight, error) {
		return flightService.flightOperation.GetGliderFlightByID(req.TargetID)
	})
	if res != nil {
		return res
	}
	if !flightService.canTouchFlight(req.JwtHeader, flight.PilotID) {
		return NewApiResponse[ResponseEditGliderFlight](&ErrNotFlightOwner, Unsatisfied, nil)
	}
	date, res := checkCommonFields[ResponseEditGliderFlight](req.FlightDate, req.DepartureTime, req.ArrivalTime, req.DurationHours)
	if res != nil {
		return res
	}
	if status := flightService.checkAircraft(req.AircraftID); status != nil {
		return NewApiResponse[ResponseEditGliderFlight](status, Unsatisfied, nil)
	}

	info := map[string]interface{}{
		"flight_date":     date,
		"instructor_id":   req.InstructorID,
		"aircraft_id":     req.AircraftID,
		"tow_pilot_id":    req.TowPilotID,
		"tow_aircraft_id": req.TowAircraftID,
		"departure_time":  req.DepartureTime,
		"arrival_time":    req.ArrivalTime,
		"duration_hours":  req.DurationHours,
		"purpose":         req.Purpose,
		"notes":           req.Notes,
		"slot_id":         req.SlotID,
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseEditGliderFlight](flightService.logger, func() (*interface{}, error) {
		return nil, flightService.flightOperation.UpdateGliderFlight(flight, info)
	}); res != nil {
		return res
	}
	return NewApiResponse(&SuccessEditFlight, Unsatisfied, (*ResponseEditGliderFlight)(flight))
}

func (flightService *FlightService) DeleteEngineFlight(req *RequestDeleteFlight) *ApiResponse[ResponseDeleteFlight] {
	flight, res := CallDBFuncAndCheckError[operation.EngineFlight, ResponseDeleteFlight](flightService.logger, func() (*operation.EngineFlight, error) {
		return flightService.flightOperation.GetEngineFlightByID(req.TargetID)
	})
	if res != nil {
		return res
	}
	if !flightService.canTouchFlight(req.JwtHeader, flight.PilotID) {
		return NewApiResponse[ResponseDeleteFlight](&ErrNotFlightOwner, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeleteFlight](flightService.logger, func() (*interface{}, error) {
		return nil, flightService.flightOperation.DeleteEngineFlight(flight)
	}); res != nil {
		return res
	}
	deleted := ResponseDeleteFlight(true)
	return NewApiResponse(&SuccessDelFlight, Unsatisfied, &deleted)
}

func (flightService *FlightService) DeleteGliderFlight(req *RequestDeleteFlight) *ApiResponse[ResponseDeleteFlight] {
	flight, res := CallDBFuncAndCheckError[operation.GliderFlight, ResponseDeleteFlight](flightService.logger, func() (*operation.GliderFlight, error) {
		return flightService.flightOperation.GetGliderFlightByID(req.TargetID)
	})
	if res != nil {
		return res
	}
	if !flightService.canTouchFlight(req.JwtHeader, flight.PilotID) {
		return NewApiResponse[ResponseDeleteFlight](&ErrNotFlightOwner, Unsatisfied, nil)
	}
	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDeleteFlight](flightService.logger, func() (*interface{}, error) {
		return nil, flightService.flightOperation.DeleteGliderFlight(flight)
	}); res != nil {
		return res
	}
	deleted := ResponseDeleteFlight(true)
	return NewApiResponse(&SuccessDelFlight, Unsatisfied, &deleted)
}

func (flightService *FlightService) GetEngineFlightList(req *RequestFlightList) *ApiResponse[ResponseEngineFlightList] {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 25
	}
	flights, total, err := flightService.flightOperation.GetEngineFlightsPage(req.Page, req.PageSize)
	if err != nil {
		flightService.logger.ErrorF("FlightService.GetEngineFlightList db error: %v", err)
		return NewApiResponse[ResponseEngineFlightList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetFlights, Unsatisfied, &ResponseEngineFlightList{Items: flights, Total: total})
}

func (flightService *FlightService) GetGliderFlightList(req *RequestFlightList) *ApiResponse[ResponseGliderFlightList] {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 25
	}
	flights, total, err := flightService.flightOperation.GetGliderFlightsPage(req.Page, req.PageSize)
	if err != nil {
		flightService.logger.ErrorF("FlightService.GetGliderFlightList db error: %v", err)
		return NewApiResponse[ResponseGliderFlightList](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetFlights, Unsatisfied, &ResponseGliderFlightList{Items: flights, Total: total})
}
