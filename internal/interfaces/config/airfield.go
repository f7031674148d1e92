// Package config
package config

import (
	"errors"
	"time"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
)

// AirfieldConfig locates the club field. Latitude/longitude feed the
// daylight calculations, the timezone anchors agenda dates.
type AirfieldConfig struct {
	Name      string         `json:"name"`
	ICAOCode  string         `json:"icao_code"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Timezone  string         `json:"timezone"`
	Location  *time.Location `json:"-"`
}

func defaultAirfieldConfig() *AirfieldConfig {
	return &AirfieldConfig{
		Name:      "Club Field",
		ICAOCode:  "SACO",
		Latitude:  -31.32,
		Longitude: -64.21,
		Timezone:  "America/Argentina/Cordoba",
	}
}

func (config *AirfieldConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.Latitude < -90 || config.Latitude > 90 {
		return ValidFail(errors.New("invalid json field airfield.latitude, must between -90 and 90"))
	}
	if config.Longitude < -180 || config.Longitude > 180 {
		return ValidFail(errors.New("invalid json field airfield.longitude, must between -180 and 180"))
	}
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return ValidFailWith(errors.New("invalid json field airfield.timezone"), err)
	}
	config.Location = location
	return ValidPass()
}
