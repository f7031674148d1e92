// Package operation
package operation

import "errors"

var (
	// ErrAircraftNotFound aircraft id does not resolve
	ErrAircraftNotFound = errors.New("aircraft does not exist")
	// ErrRegistrationTaken uniqueness check on the registration column failed
	ErrRegistrationTaken = errors.New("aircraft registration has been used")
)

type AircraftOperationInterface interface {
	// GetAircraftByID returns the aircraft with the given primary key
	GetAircraftByID(id uint) (aircraft *Aircraft, err error)
	// GetAllAircraft returns the whole fleet, used as a report lookup table
	GetAllAircraft() (aircraft []*Aircraft, err error)
	// GetAircraftByCategory filters the fleet by category
	GetAircraftByCategory(category AircraftCategory) (aircraft []*Aircraft, err error)
	// AddAircraft persists a new airframe after checking the registration is free
	AddAircraft(aircraft *Aircraft) (err error)
	// UpdateAircraftInfo applies a partial column update
	UpdateAircraftInfo(aircraft *Aircraft, info map[string]interface{}) (err error)
	// DeleteAircraft removes an airframe from the fleet
	DeleteAircraft(aircraft *Aircraft) (err error)
}
