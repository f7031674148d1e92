// Package config
package config

import (
	"errors"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	"golang.org/x/crypto/bcrypt"
)

type GeneralConfig struct {
	ClubName   string `json:"club_name"`
	BcryptCost int    `json:"bcrypt_cost"`
}

func defaultGeneralConfig() *GeneralConfig {
	return &GeneralConfig{
		ClubName:   "Aeroclub",
		BcryptCost: 12,
	}
}

func (config *GeneralConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.BcryptCost < bcrypt.MinCost || config.BcryptCost > bcrypt.MaxCost {
		return ValidFail(errors.New("bcrypt_cost out of range, must between 4 and 31"))
	}
	if config.ClubName == "" {
		return ValidFail(errors.New("club_name cannot be empty"))
	}
	return ValidPass()
}
