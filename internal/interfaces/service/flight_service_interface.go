// Package service
package service

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
)

type FlightServiceInterface interface {
	AddEngineFlight(req *RequestAddEngineFlight) *ApiResponse[ResponseAddEngineFlight]
	AddGliderFlight(req *RequestAddGliderFlight) *ApiResponse[ResponseAddGliderFlight]
	EditEngineFlight(req *RequestEditEngineFlight) *ApiResponse[ResponseEditEngineFlight]
	EditGliderFlight(req *RequestEditGliderFlight) *ApiResponse[ResponseEditGliderFlight]
	DeleteEngineFlight(req *RequestDeleteFlight) *ApiResponse[ResponseDeleteFlight]
	DeleteGliderFlight(req *RequestDeleteFlight) *ApiResponse[ResponseDeleteFlight]
	GetEngineFlightList(req *RequestFlightList) *ApiResponse[ResponseEngineFlightList]
	GetGliderFlightList(req *RequestFlightList) *ApiResponse[ResponseGliderFlightList]
}

// EngineFlightFields carries everything a pilot types into the engine
// logbook form. Clock times are local "HH:MM"; duration is decimal hours
// and stands on its own, flights may cross midnight.
type EngineFlightFields struct {
	FlightDate      string   `json:"flight_date"`
	InstructorID    *uint    `json:"instructor_id"`
	AircraftID      uint     `json:"aircraft_id"`
	DepartureTime   string   `json:"departure_time"`
	ArrivalTime     string   `json:"arrival_time"`
	DurationHours   float64  `json:"duration_hours"`
	Purpose         string   `json:"purpose"`
	Notes           string   `json:"notes"`
	SlotID          *uint    `json:"slot_id"`
	BillableMinutes *int     `json:"billable_minutes"`
	Route           *string  `json:"route"`
	Landings        *int     `json:"landings"`
	Tows            *int     `json:"tows"`
	OilAddedLiters  *float64 `json:"oil_added_liters"`
	FuelAddedLiters *float64 `json:"fuel_added_liters"`
}

type GliderFlightFields struct {
	FlightDate    string  `json:"flight_date"`
	InstructorID  *uint   `json:"instructor_id"`
	AircraftID    uint    `json:"aircraft_id"`
	TowPilotID    *uint   `json:"tow_pilot_id"`
	TowAircraftID *uint   `json:"tow_aircraft_id"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	DurationHours float64 `json:"duration_hours"`
	Purpose       string  `json:"purpose"`
	Notes         string  `json:"notes"`
	SlotID        *uint   `json:"slot_id"`
}

type RequestAddEngineFlight struct {
	JwtHeader
	EngineFlightFields
}

type ResponseAddEngineFlight operation.EngineFlight

type RequestAddGliderFlight struct {
	JwtHeader
	GliderFlightFields
}

type ResponseAddGliderFlight operation.GliderFlight

type RequestEditEngineFlight struct {
	JwtHeader
	TargetID uint `param:"id"`
	EngineFlightFields
}

type ResponseEditEngineFlight operation.EngineFlight

type RequestEditGliderFlight struct {
	JwtHeader
	TargetID uint `param:"id"`
	GliderFlightFields
}

type ResponseEditGliderFlight operation.GliderFlight

type RequestDeleteFlight struct {
	JwtHeader
	TargetID uint `param:"id"`
}

type ResponseDeleteFlight bool

type RequestFlightList struct {
	JwtHeader
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

type ResponseEngineFlightList struct {
	Items []*operation.EngineFlight `json:"items"`
	Total int64                     `json:"total"`
}

type ResponseGliderFlightList struct {
	Items []*operation.GliderFlight `json:"items"`
	Total int64                     `json:"total"`
}
