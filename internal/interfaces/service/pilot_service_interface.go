// Package service
package service

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
)

type PilotServiceInterface interface {
	PilotRegister(req *RequestPilotRegister) *ApiResponse[ResponsePilotRegister]
	PilotLogin(req *RequestPilotLogin) *ApiResponse[ResponsePilotLogin]
	GetTokenWithFlushToken(req *RequestGetToken) *ApiResponse[ResponseGetToken]
	CheckPilotAvailability(req *RequestPilotAvailability) *ApiResponse[ResponsePilotAvailability]
	GetCurrentProfile(req *RequestPilotCurrentProfile) *ApiResponse[ResponsePilotCurrentProfile]
	EditCurrentProfile(req *RequestPilotEditCurrentProfile) *ApiResponse[ResponsePilotEditCurrentProfile]
	GetPilotProfile(req *RequestPilotProfile) *ApiResponse[ResponsePilotProfile]
	EditPilotProfile(req *RequestPilotEditProfile) *ApiResponse[ResponsePilotEditProfile]
	GetPilotList(req *RequestPilotList) *ApiResponse[ResponsePilotList]
}

type RequestPilotRegister struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	EmailCode int    `json:"email_code"`
}

type ResponsePilotRegister struct {
	Pilot      *operation.Pilot `json:"pilot"`
	Token      string           `json:"token"`
	FlushToken string           `json:"flush_token"`
}

type RequestPilotLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResponsePilotLogin struct {
	Pilot      *operation.Pilot `json:"pilot"`
	Token      string           `json:"token"`
	FlushToken string           `json:"flush_token"`
}

// RequestGetToken refreshes an access token from a refresh token; the
// controller hands over the verified claims wholesale.
type RequestGetToken struct {
	*Claims
}

type ResponseGetToken struct {
	Pilot      *operation.Pilot `json:"pilot"`
	Token      string           `json:"token"`
	FlushToken string           `json:"flush_token"`
}

type RequestPilotAvailability struct {
	Email string `query:"email"`
}

type ResponsePilotAvailability bool

type RequestPilotCurrentProfile struct {
	Uid uint
}

type ResponsePilotCurrentProfile operation.Pilot

type RequestPilotEditCurrentProfile struct {
	JwtHeader
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	EmailCode      int    `json:"email_code"`
	WeeklySummary  *bool  `json:"weekly_summary"`
	OriginPassword string `json:"origin_password"`
	NewPassword    string `json:"new_password"`
}

type ResponsePilotEditCurrentProfile operation.Pilot

type RequestPilotProfile struct {
	JwtHeader
	TargetUid uint `param:"uid"`
}

type ResponsePilotProfile operation.Pilot

// RequestPilotEditProfile is the admin-side edit: role bits included.
type RequestPilotEditProfile struct {
	JwtHeader
	TargetUid  uint   `param:"uid"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Admin      *bool  `json:"admin"`
	Instructor *bool  `json:"instructor"`
	TowPilot   *bool  `json:"tow_pilot"`
}

type ResponsePilotEditProfile operation.Pilot

type RequestPilotList struct {
	JwtHeader
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

type ResponsePilotList struct {
	Items []*operation.Pilot `json:"items"`
	Total int64              `json:"total"`
}
