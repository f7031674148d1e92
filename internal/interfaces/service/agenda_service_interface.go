// Package service
package service

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
)

type AgendaServiceInterface interface {
	GetAgenda(req *RequestAgenda) *ApiResponse[ResponseAgenda]
	AddSlot(req *RequestAddSlot) *ApiResponse[ResponseAddSlot]
	BookSlot(req *RequestBookSlot) *ApiResponse[ResponseBookSlot]
	ReleaseSlot(req *RequestReleaseSlot) *ApiResponse[ResponseReleaseSlot]
	EditSlot(req *RequestEditSlot) *ApiResponse[ResponseEditSlot]
	DeleteSlot(req *RequestDeleteSlot) *ApiResponse[ResponseDeleteSlot]
}

type RequestAgenda struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

type ResponseAgenda struct {
	Items []*operation.AgendaSlot `json:"items"`
	// Daylight carries the sun times for each day of the requested range,
	// so the agenda view can frame the flyable window without a second call.
	Daylight []*ResponseDaylight `json:"daylight"`
}

type RequestAddSlot struct {
	JwtHeader
	SlotDate  string `json:"slot_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Category  string `json:"category"`
	Available *bool  `json:"available"`
	Notes     string `json:"notes"`
}

type ResponseAddSlot operation.AgendaSlot

type RequestBookSlot struct {
	JwtHeader
	TargetID   uint  `param:"id"`
	AircraftID *uint `json:"aircraft_id"`
}

type ResponseBookSlot operation.AgendaSlot

type RequestReleaseSlot struct {
	JwtHeader
	TargetID uint `param:"id"`
}

type ResponseReleaseSlot operation.AgendaSlot

type RequestEditSlot struct {
	JwtHeader
	TargetID  uint   `param:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available *bool  `json:"available"`
	Status    *int   `json:"status"`
	Notes     string `json:"notes"`
}

type ResponseEditSlot operation.AgendaSlot

type RequestDeleteSlot struct {
	JwtHeader
	TargetID uint `param:"id"`
}

type ResponseDeleteSlot bool
