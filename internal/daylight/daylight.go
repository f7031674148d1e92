// Package daylight computes the sun times that bound flying at the club's
// airfield: sunrise, sunset and the civil twilight window.
package daylight

import (
	"time"

	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	"github.com/nathan-osman/go-sunrise"
)

// Civil twilight starts and ends with the sun 6 degrees below the horizon.
const civilTwilightElevation = -6.0

// Times holds one day's sun events in the airfield's local timezone.
// Polar is set when the sun never crosses the horizon that day; the
// timestamps are zero in that case.
type Times struct {
	Sunrise            time.Time
	Sunset             time.Time
	CivilTwilightStart time.Time
	CivilTwilightEnd   time.Time
	Polar              bool
}

type Calculator struct {
	airfield *c.AirfieldConfig
}

func NewCalculator(airfield *c.AirfieldConfig) *Calculator {
	return &Calculator{airfield: airfield}
}

// For computes the sun times for one calendar date at the airfield.
func (calculator *Calculator) For(date time.Time) *Times {
	year, month, day := date.Date()

	rise, set := sunrise.SunriseSunset(
		calculator.airfield.Latitude, calculator.airfield.Longitude,
		year, month, day,
	)
	if rise.IsZero() && set.IsZero() {
		return &Times{Polar: true}
	}

	dawn, dusk := sunrise.TimeOfElevation(
		calculator.airfield.Latitude, calculator.airfield.Longitude,
		civilTwilightElevation,
		year, month, day,
	)

	location := calculator.airfield.Location
	return &Times{
		Sunrise:            rise.In(location),
		Sunset:             set.In(location),
		CivilTwilightStart: dawn.In(location),
		CivilTwilightEnd:   dusk.In(location),
	}
}
