// Package service
package service

type DaylightServiceInterface interface {
	GetDaylight(req *RequestDaylight) *ApiResponse[ResponseDaylight]
}

type RequestDaylight struct {
	Date string `query:"date"`
}

// ResponseDaylight carries the day's sun times at the club's airfield in
// its local timezone, formatted "HH:MM".
type ResponseDaylight struct {
	Date               string `json:"date"`
	Sunrise            string `json:"sunrise"`
	Sunset             string `json:"sunset"`
	CivilTwilightStart string `json:"civil_twilight_start"`
	CivilTwilightEnd   string `json:"civil_twilight_end"`
	Polar              bool   `json:"polar"`
}
