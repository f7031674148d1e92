// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrSlotNotFound agenda slot id does not resolve
	ErrSlotNotFound = errors.New("agenda slot does not exist")
	// ErrSlotTaken slot is already booked by someone else
	ErrSlotTaken = errors.New("agenda slot already booked")
	// ErrSlotNotBooked release requested on a slot nobody holds
	ErrSlotNotBooked = errors.New("agenda slot is not booked")
)

type SlotOperationInterface interface {
	// GetSlotByID returns one agenda slot
	GetSlotByID(id uint) (slot *AgendaSlot, err error)
	// GetSlotsInRange returns slots whose date falls in [start, end]
	GetSlotsInRange(start, end time.Time) (slots []*AgendaSlot, err error)
	// AddSlot persists a new slot
	AddSlot(slot *AgendaSlot) (err error)
	// BookSlot assigns the slot to a pilot; fails with ErrSlotTaken when held
	BookSlot(slot *AgendaSlot, pilotID uint, aircraftID *uint) (err error)
	// ReleaseSlot frees a booked slot
	ReleaseSlot(slot *AgendaSlot) (err error)
	// UpdateSlotInfo applies a partial column update
	UpdateSlotInfo(slot *AgendaSlot, info map[string]interface{}) (err error)
	// DeleteSlot soft-deletes a slot
	DeleteSlot(slot *AgendaSlot) (err error)
}
