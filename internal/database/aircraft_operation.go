package database

import (
	"context"
	"errors"
	"time"

	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AircraftOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAircraftOperation(db *gorm.DB, queryTimeout time.Duration) *AircraftOperation {
	return &AircraftOperation{db: db, queryTimeout: queryTimeout}
}

func (aircraftOperation *AircraftOperation) GetAircraftByID(id uint) (aircraft *Aircraft, err error) {
	aircraft = &Aircraft{}
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(aircraft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrAircraftNotFound
	}
	return
}

func (aircraftOperation *AircraftOperation) GetAllAircraft() (aircraft []*Aircraft, err error) {
	aircraft = make([]*Aircraft, 0)
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Order("registration").
		Find(&aircraft).Error
	return
}

func (aircraftOperation *AircraftOperation) GetAircraftByCategory(category AircraftCategory) (aircraft []*Aircraft, err error) {
	aircraft = make([]*Aircraft, 0)
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	err = aircraftOperation.db.WithContext(ctx).
		Where("category = ?", category).
		Order("registration").
		Find(&aircraft).Error
	return
}

func (aircraftOperation *AircraftOperation) AddAircraft(aircraft *Aircraft) error {
	return aircraftOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
		defer cancel()
		var count int64
		if err := tx.WithContext(ctx).
			Model(&Aircraft{}).
			Where("registration = ?", aircraft.Registration).
			Count(&count).Error; err != nil {
			return ErrIdentifierCheck
		}
		if count > 0 {
			return ErrRegistrationTaken
		}
		return tx.WithContext(ctx).Create(aircraft).Error
	})
}

func (aircraftOperation *AircraftOperation) UpdateAircraftInfo(aircraft *Aircraft, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	return aircraftOperation.db.WithContext(ctx).Model(aircraft).Updates(info).Error
}

func (aircraftOperation *AircraftOperation) DeleteAircraft(aircraft *Aircraft) error {
	ctx, cancel := context.WithTimeout(context.Background(), aircraftOperation.queryTimeout)
	defer cancel()
	return aircraftOperation.db.WithContext(ctx).Delete(aircraft).Error
}
