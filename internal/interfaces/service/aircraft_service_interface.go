// Package service
package service

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
)

type AircraftServiceInterface interface {
	GetAircraftList(req *RequestAircraftList) *ApiResponse[ResponseAircraftList]
	GetAircraft(req *RequestAircraft) *ApiResponse[ResponseAircraft]
	AddAircraft(req *RequestAddAircraft) *ApiResponse[ResponseAddAircraft]
	EditAircraft(req *RequestEditAircraft) *ApiResponse[ResponseEditAircraft]
	DeleteAircraft(req *RequestDeleteAircraft) *ApiResponse[ResponseDeleteAircraft]
}

type RequestAircraftList struct {
	Category string `query:"category"`
}

type ResponseAircraftList struct {
	Items []*operation.Aircraft `json:"items"`
}

type RequestAircraft struct {
	TargetID uint `param:"id"`
}

type ResponseAircraft operation.Aircraft

type RequestAddAircraft struct {
	JwtHeader
	Registration string `json:"registration"`
	Name         string `json:"name"`
	Category     string `json:"category"`
}

type ResponseAddAircraft operation.Aircraft

type RequestEditAircraft struct {
	JwtHeader
	TargetID     uint   `param:"id"`
	Registration string `json:"registration"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Active       *bool  `json:"active"`
}

type ResponseEditAircraft operation.Aircraft

type RequestDeleteAircraft struct {
	JwtHeader
	TargetID uint `param:"id"`
}

type ResponseDeleteAircraft bool
