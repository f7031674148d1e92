// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrFlightNotFound flight id does not resolve
	ErrFlightNotFound = errors.New("flight does not exist")
	// ErrNotFlightOwner edits are restricted to the logging pilot or an admin
	ErrNotFlightOwner = errors.New("flight belongs to another pilot")
)

// FlightFilter narrows a range query to one pilot and/or one aircraft.
// Nil fields are ignored.
type FlightFilter struct {
	PilotID    *uint
	AircraftID *uint
}

// FlightOperationInterface is the persistence contract for the logbook.
// Range queries guarantee only containment in [start, end] and filter
// matching; ordering belongs to the report aggregator.
type FlightOperationInterface interface {
	// GetEngineFlightByID returns one engine flight
	GetEngineFlightByID(id uint) (flight *EngineFlight, err error)
	// GetGliderFlightByID returns one glider flight
	GetGliderFlightByID(id uint) (flight *GliderFlight, err error)
	// GetEngineFlightsInRange returns engine flights whose date falls in [start, end]
	GetEngineFlightsInRange(start, end time.Time, filter FlightFilter) (flights []*EngineFlight, err error)
	// GetGliderFlightsInRange returns glider flights whose date falls in [start, end]
	GetGliderFlightsInRange(start, end time.Time, filter FlightFilter) (flights []*GliderFlight, err error)
	// GetEngineFlightsPage returns one page of engine flights, newest first
	GetEngineFlightsPage(page, pageSize int) (flights []*EngineFlight, total int64, err error)
	// GetGliderFlightsPage returns one page of glider flights, newest first
	GetGliderFlightsPage(page, pageSize int) (flights []*GliderFlight, total int64, err error)
	// AddEngineFlight persists a new engine flight
	AddEngineFlight(flight *EngineFlight) (err error)
	// AddGliderFlight persists a new glider flight
	AddGliderFlight(flight *GliderFlight) (err error)
	// UpdateEngineFlight applies a partial column update
	UpdateEngineFlight(flight *EngineFlight, info map[string]interface{}) (err error)
	// UpdateGliderFlight applies a partial column update
	UpdateGliderFlight(flight *GliderFlight, info map[string]interface{}) (err error)
	// DeleteEngineFlight soft-deletes an engine flight
	DeleteEngineFlight(flight *EngineFlight) (err error)
	// DeleteGliderFlight soft-deletes a glider flight
	DeleteGliderFlight(flight *GliderFlight) (err error)
}
