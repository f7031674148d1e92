package database

import (
	"context"
	"errors"
	"time"

	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	"gorm.io/gorm"
)

type FlightOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlightOperation(db *gorm.DB, queryTimeout time.Duration) *FlightOperation {
	return &FlightOperation{db: db, queryTimeout: queryTimeout}
}

func (flightOperation *FlightOperation) GetEngineFlightByID(id uint) (flight *EngineFlight, err error) {
	flight = &EngineFlight{}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(flight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrFlightNotFound
	}
	return
}

func (flightOperation *FlightOperation) GetGliderFlightByID(id uint) (flight *GliderFlight, err error) {
	flight = &GliderFlight{}
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(flight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrFlightNotFound
	}
	return
}

// rangeQuery applies the date window and the optional pilot and aircraft
// narrowing shared by both logbooks.
func rangeQuery(tx *gorm.DB, start, end time.Time, filter FlightFilter) *gorm.DB {
	tx = tx.Where("flight_date BETWEEN ? AND ?", start, end)
	if filter.PilotID != nil {
		tx = tx.Where("pilot_id = ? OR instructor_id = ?", *filter.PilotID, *filter.PilotID)
	}
	if filter.AircraftID != nil {
		tx = tx.Where("aircraft_id = ?", *filter.AircraftID)
	}
	return tx
}

func (flightOperation *FlightOperation) GetEngineFlightsInRange(start, end time.Time, filter FlightFilter) (flights []*EngineFlight, err error) {
	flights = make([]*EngineFlight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = rangeQuery(flightOperation.db.WithContext(ctx), start, end, filter).
		Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) GetGliderFlightsInRange(start, end time.Time, filter FlightFilter) (flights []*GliderFlight, err error) {
	flights = make([]*GliderFlight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = rangeQuery(flightOperation.db.WithContext(ctx), start, end, filter).
		Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) GetEngineFlightsPage(page, pageSize int) (flights []*EngineFlight, total int64, err error) {
	flights = make([]*EngineFlight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	if err = flightOperation.db.WithContext(ctx).Model(&EngineFlight{}).Count(&total).Error; err != nil {
		return
	}
	err = flightOperation.db.WithContext(ctx).
		Order("flight_date DESC, departure_time DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) GetGliderFlightsPage(page, pageSize int) (flights []*GliderFlight, total int64, err error) {
	flights = make([]*GliderFlight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	if err = flightOperation.db.WithContext(ctx).Model(&GliderFlight{}).Count(&total).Error; err != nil {
		return
	}
	err = flightOperation.db.WithContext(ctx).
		Order("flight_date DESC, departure_time DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&flights).Error
	return
}

func (flightOperation *FlightOperation) AddEngineFlight(flight *EngineFlight) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Create(flight).Error
}

func (flightOperation *FlightOperation) AddGliderFlight(flight *GliderFlight) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Create(flight).Error
}

func (flightOperation *FlightOperation) UpdateEngineFlight(flight *EngineFlight, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Model(flight).Updates(info).Error
}

func (flightOperation *FlightOperation) UpdateGliderFlight(flight *GliderFlight, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Model(flight).Updates(info).Error
}

func (flightOperation *FlightOperation) DeleteEngineFlight(flight *EngineFlight) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Delete(flight).Error
}

func (flightOperation *FlightOperation) DeleteGliderFlight(flight *GliderFlight) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Delete(flight).Error
}
