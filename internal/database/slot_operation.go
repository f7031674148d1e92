package database

import (
	"context"
	"errors"
	"time"

	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SlotOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewSlotOperation(db *gorm.DB, queryTimeout time.Duration) *SlotOperation {
	return &SlotOperation{db: db, queryTimeout: queryTimeout}
}

func (slotOperation *SlotOperation) GetSlotByID(id uint) (slot *AgendaSlot, err error) {
	slot = &AgendaSlot{}
	ctx, cancel := context.WithTimeout(context.Background(), slotOperation.queryTimeout)
	defer cancel()
	err = slotOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrSlotNotFound
	}
	return
}

func (slotOperation *SlotOperation) GetSlotsInRange(start, end time.Time) (slots []*AgendaSlot, err error) {
	slots = make([]*AgendaSlot, 0)
	ctx, cancel := context.WithTimeout(context.Background(), slotOperation.queryTimeout)
	defer cancel()
	err = slotOperation.db.WithContext(ctx).
		Where("slot_date BETWEEN ? AND ?", start, end).
		Order("slot_date, start_time").
		Find(&slots).Error
	return
}

func (slotOperation *SlotOperation) AddSlot(slot *AgendaSlot) error {
	ctx, cancel := context.WithTimeout(context.Background(), slotOperation.queryTimeout)
	defer cancel()
	return slotOperation.db.WithContext(ctx).Create(slot).Error
}

// BookSlot hands the slot to a pilot. The re-read inside the locking
// transaction is what makes two simultaneous bookings serialize: the
// second booker sees the first one's write and fails with ErrSlotTaken.
func (slotOperation *SlotOperation) BookSlot(slot *AgendaSlot, pilotID uint, aircraftID *uint) error {
	return slotOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), slotOperation.queryTimeout)
		defer cancel()

		current := &AgendaSlot{}
		if err := tx.WithContext(ctx).Where("id = ?", slot.ID).First(current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if current.Status != SlotOpen || current.PilotID != nil {
			return ErrSlotTaken
		}

		updates := map[string]interface{}{
			"pilot_id": pilotID,
			"status":   SlotBooked,
		}
		if aircraftID != nil {
			updates["aircraft_id"] = *aircraftID
		}
		if err := tx.WithContext(ctx).Model(current).Updates(updates).Error; err != nil {
			return err
		}
		slot.PilotID = &pilotID
		slot.AircraftID = aircraftID
		slot.Status = SlotBooked
		return nil
	})
}

func (slotOperation *SlotOperation) ReleaseSlot(slot *AgendaSlot) error {
	return slotOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), slotOperation.queryTimeout)
		defer cancel()

		current := &AgendaSlot{}
		if err := tx.WithContext(ctx).Where("id = ?", slot.ID).First(current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if current.Status != SlotBooked {
			return ErrSlotNotBooked
		}

		updates := map[string]interface{}{
			"pilot_id":    nil,
			"aircraft_id": nil,
			"status":      SlotOpen,
		}
		if err := tx.WithContext(ctx).Model(current).Updates(updates).Error; err != nil {
			return err
		}
		slot.PilotID = nil
		slot.AircraftID = nil
		slot.Status = SlotOpen
		return nil
	})
}

func (slotOperation *SlotOperation) UpdateSlotInfo(slot *AgendaSlot, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), slotOperation.queryTimeout)
	defer cancel()
	return slotOperation.db.WithContext(ctx).Model(slot).Updates(info).Error
}

func (slotOperation *SlotOperation) DeleteSlot(slot *AgendaSlot) error {
	ctx, cancel := context.WithTimeout(context.Background(), slotOperation.queryTimeout)
	defer cancel()
	return slotOperation.db.WithContext(ctx).Delete(slot).Error
}
