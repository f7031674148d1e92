// Package operation
package operation

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrPilotNotFound pilot id or email does not resolve
	ErrPilotNotFound = errors.New("pilot does not exist")
	// ErrEmailTaken uniqueness check on the email column failed
	ErrEmailTaken = errors.New("pilot email has been used")
	// ErrIdentifierCheck uniqueness check errored
	ErrIdentifierCheck = errors.New("identifier check error")
	// ErrPasswordEncode bcrypt refused the password
	ErrPasswordEncode = errors.New("password encode error")
	// ErrOldPassword old password mismatch on password change
	ErrOldPassword = errors.New("old password error")
)

// PilotOperationInterface is the persistence contract for club members.
type PilotOperationInterface interface {
	// GetPilotByID returns the pilot with the given primary key; pilot is valid when err is nil
	GetPilotByID(id uint) (pilot *Pilot, err error)
	// GetPilotByEmail resolves a pilot by login email
	GetPilotByEmail(email string) (pilot *Pilot, err error)
	// GetPilots returns one page of pilots plus the total count
	GetPilots(page, pageSize int) (pilots []*Pilot, total int64, err error)
	// GetAllPilots returns the whole member list, used as a report lookup table
	GetAllPilots() (pilots []*Pilot, err error)
	// GetWeeklySummarySubscribers returns pilots who opted into the weekly email
	GetWeeklySummarySubscribers() (pilots []*Pilot, err error)
	// NewPilot builds an unsaved pilot with a bcrypt-hashed password
	NewPilot(firstName, lastName, email, password string) (pilot *Pilot, err error)
	// AddPilot persists a new pilot after checking the email is free
	AddPilot(pilot *Pilot) (err error)
	// UpdatePilotInfo applies a partial column update
	UpdatePilotInfo(pilot *Pilot, info map[string]interface{}) (err error)
	// UpdatePilotPassword verifies the old password and returns the new hash; nothing is persisted
	UpdatePilotPassword(pilot *Pilot, originalPassword, newPassword string) (encoded []byte, err error)
	// SavePilot writes the whole struct back
	SavePilot(pilot *Pilot) (err error)
	// VerifyPilotPassword checks a cleartext password against the stored hash
	VerifyPilotPassword(pilot *Pilot, password string) (pass bool)
	// IsEmailTaken reports whether another pilot already uses the email
	IsEmailTaken(tx *gorm.DB, email string) (taken bool, err error)
}
