// Package controller
package controller

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type AircraftControllerInterface interface {
	GetAircraftList(ctx echo.Context) error
	GetAircraft(ctx echo.Context) error
	AddAircraft(ctx echo.Context) error
	EditAircraft(ctx echo.Context) error
	DeleteAircraft(ctx echo.Context) error
}

type AircraftController struct {
	logger  log.LoggerInterface
	service AircraftServiceInterface
}

func NewAircraftHandler(logger log.LoggerInterface, service AircraftServiceInterface) *AircraftController {
	return &AircraftController{
		logger:  logger,
		service: service,
	}
}

func (controller *AircraftController) GetAircraftList(ctx echo.Context) error {
	data := &RequestAircraftList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.GetAircraftList bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetAircraftList(data).Response(ctx)
}

func (controller *AircraftController) GetAircraft(ctx echo.Context) error {
	data := &RequestAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.GetAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetAircraft(data).Response(ctx)
}

func (controller *AircraftController) AddAircraft(ctx echo.Context) error {
	data := &RequestAddAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.AddAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	data.Admin = claim.Admin
	return controller.service.AddAircraft(data).Response(ctx)
}

func (controller *AircraftController) EditAircraft(ctx echo.Context) error {
	data := &RequestEditAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.EditAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	data.Admin = claim.Admin
	return controller.service.EditAircraft(data).Response(ctx)
}

func (controller *AircraftController) DeleteAircraft(ctx echo.Context) error {
	data := &RequestDeleteAircraft{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AircraftController.DeleteAircraft bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	data.Admin = claim.Admin
	return controller.service.DeleteAircraft(data).Response(ctx)
}
