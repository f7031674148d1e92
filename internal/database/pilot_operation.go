package database

import (
	"context"
	"errors"
	"time"

	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PilotOperation struct {
	config       *c.GeneralConfig
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewPilotOperation(db *gorm.DB, queryTimeout time.Duration, config *c.GeneralConfig) *PilotOperation {
	return &PilotOperation{config: config, db: db, queryTimeout: queryTimeout}
}

func (pilotOperation *PilotOperation) GetPilotByID(id uint) (pilot *Pilot, err error) {
	pilot = &Pilot{}
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).
		Where("id = ?", id).
		First(pilot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrPilotNotFound
	}
	return
}

func (pilotOperation *PilotOperation) GetPilotByEmail(email string) (pilot *Pilot, err error) {
	pilot = &Pilot{}
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).
		Where("email = ?", email).
		First(pilot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrPilotNotFound
	}
	return
}

func (pilotOperation *PilotOperation) GetPilots(page, pageSize int) (pilots []*Pilot, total int64, err error) {
	pilots = make([]*Pilot, 0)
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	if err = pilotOperation.db.WithContext(ctx).Model(&Pilot{}).Count(&total).Error; err != nil {
		return
	}
	err = pilotOperation.db.WithContext(ctx).
		Order("last_name, first_name").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&pilots).Error
	return
}

func (pilotOperation *PilotOperation) GetAllPilots() (pilots []*Pilot, err error) {
	pilots = make([]*Pilot, 0)
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).Find(&pilots).Error
	return
}

func (pilotOperation *PilotOperation) GetWeeklySummarySubscribers() (pilots []*Pilot, err error) {
	pilots = make([]*Pilot, 0)
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	err = pilotOperation.db.WithContext(ctx).
		Where("weekly_summary = ?", true).
		Find(&pilots).Error
	return
}

func (pilotOperation *PilotOperation) NewPilot(firstName, lastName, email, password string) (pilot *Pilot, err error) {
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(password), pilotOperation.config.BcryptCost)
	if err != nil {
		return nil, ErrPasswordEncode
	}
	pilot = &Pilot{
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		Password:      string(encodePassword),
		WeeklySummary: true,
	}
	return
}

func (pilotOperation *PilotOperation) AddPilot(pilot *Pilot) error {
	return pilotOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		taken, err := pilotOperation.IsEmailTaken(tx, pilot.Email)
		if err != nil {
			return ErrIdentifierCheck
		}

		if taken {
			return ErrEmailTaken
		}

		ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
		defer cancel()
		return tx.WithContext(ctx).Create(pilot).Error
	})
}

func (pilotOperation *PilotOperation) UpdatePilotInfo(pilot *Pilot, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	return pilotOperation.db.WithContext(ctx).Model(pilot).Updates(info).Error
}

func (pilotOperation *PilotOperation) UpdatePilotPassword(pilot *Pilot, originalPassword, newPassword string) ([]byte, error) {
	if !pilotOperation.VerifyPilotPassword(pilot, originalPassword) {
		return nil, ErrOldPassword
	}
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), pilotOperation.config.BcryptCost)
	if err != nil {
		return nil, ErrPasswordEncode
	}
	pilot.Password = string(encodePassword)
	return encodePassword, nil
}

func (pilotOperation *PilotOperation) SavePilot(pilot *Pilot) error {
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	return pilotOperation.db.WithContext(ctx).Save(pilot).Error
}

func (pilotOperation *PilotOperation) VerifyPilotPassword(pilot *Pilot, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(pilot.Password), []byte(password))
	return err == nil
}

func (pilotOperation *PilotOperation) IsEmailTaken(tx *gorm.DB, email string) (bool, error) {
	if tx == nil {
		tx = pilotOperation.db
	}
	ctx, cancel := context.WithTimeout(context.Background(), pilotOperation.queryTimeout)
	defer cancel()
	var count int64
	err := tx.WithContext(ctx).
		Model(&Pilot{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}
