// Package service
package service

import (
	"html/template"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	"github.com/aeroclub-dev/clubhouse/internal/report"
)

type EmailServiceInterface interface {
	RenderTemplate(template *template.Template, data interface{}) (string, error)
	VerifyCode(email string, code int) error
	SendEmailCode(email string) error
	SendEmailVerifyCode(req *RequestEmailVerifyCode) *ApiResponse[ResponseEmailVerifyCode]
	SendWeeklySummaryEmail(pilot *operation.Pilot, summary *WeeklySummaryData) error
	SendSlotBookedEmail(pilot *operation.Pilot, slot *operation.AgendaSlot) error
}

type RequestEmailVerifyCode struct {
	Email string `json:"email"`
}

type ResponseEmailVerifyCode struct {
	Email string `json:"email"`
}

// WeeklySummaryData feeds the weekly mail template: last week's flying at
// the club plus the recipient's own share of it.
type WeeklySummaryData struct {
	ClubName    string
	PilotName   string
	WeekStart   string
	WeekEnd     string
	FlightCount int
	Totals      report.Totals
	OwnCount    int
	OwnTotals   report.Totals
}
