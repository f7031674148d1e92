// Package service
package service

import (
	"time"

	"github.com/aeroclub-dev/clubhouse/internal/daylight"
	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
)

type DaylightService struct {
	logger     log.LoggerInterface
	airfield   *c.AirfieldConfig
	calculator *daylight.Calculator
}

func NewDaylightService(logger log.LoggerInterface, airfield *c.AirfieldConfig) *DaylightService {
	return &DaylightService{
		logger:     logger,
		airfield:   airfield,
		calculator: daylight.NewCalculator(airfield),
	}
}

var SuccessGetDaylight = ApiStatus{StatusName: "GET_DAYLIGHT_SUCCESS", Description: "Daylight times computed", HttpCode: Ok}

func clockOrEmpty(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("15:04")
}

func (daylightService *DaylightService) GetDaylight(req *RequestDaylight) *ApiResponse[ResponseDaylight] {
	var date time.Time
	if req.Date == "" {
		date = time.Now().In(daylightService.airfield.Location)
	} else {
		parsed, status := parseDate(req.Date)
		if status != nil {
			return NewApiResponse[ResponseDaylight](status, Unsatisfied, nil)
		}
		date = parsed
	}

	times := daylightService.calculator.For(date)
	return NewApiResponse(&SuccessGetDaylight, Unsatisfied, &ResponseDaylight{
		Date:               date.Format("2006-01-02"),
		Sunrise:            clockOrEmpty(times.Sunrise),
		Sunset:             clockOrEmpty(times.Sunset),
		CivilTwilightStart: clockOrEmpty(times.CivilTwilightStart),
		CivilTwilightEnd:   clockOrEmpty(times.CivilTwilightEnd),
		Polar:              times.Polar,
	})
}
