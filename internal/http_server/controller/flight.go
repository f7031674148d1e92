// Package controller
package controller

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type FlightControllerInterface interface {
	AddEngineFlight(ctx echo.Context) error
	AddGliderFlight(ctx echo.Context) error
	EditEngineFlight(ctx echo.Context) error
	EditGliderFlight(ctx echo.Context) error
	DeleteEngineFlight(ctx echo.Context) error
	DeleteGliderFlight(ctx echo.Context) error
	GetEngineFlights(ctx echo.Context) error
	GetGliderFlights(ctx echo.Context) error
}

type FlightController struct {
	logger  log.LoggerInterface
	service FlightServiceInterface
}

func NewFlightHandler(logger log.LoggerInterface, service FlightServiceInterface) *FlightController {
	return &FlightController{
		logger:  logger,
		service: service,
	}
}

func fillJwtHeader(ctx echo.Context, header *JwtHeader) {
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	header.Uid = claim.Uid
	header.Admin = claim.Admin
}

func (controller *FlightController) AddEngineFlight(ctx echo.Context) error {
	data := &RequestAddEngineFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.AddEngineFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.AddEngineFlight(data).Response(ctx)
}

func (controller *FlightController) AddGliderFlight(ctx echo.Context) error {
	data := &RequestAddGliderFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.AddGliderFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.AddGliderFlight(data).Response(ctx)
}

func (controller *FlightController) EditEngineFlight(ctx echo.Context) error {
	data := &RequestEditEngineFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.EditEngineFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.EditEngineFlight(data).Response(ctx)
}

func (controller *FlightController) EditGliderFlight(ctx echo.Context) error {
	data := &RequestEditGliderFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.EditGliderFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.EditGliderFlight(data).Response(ctx)
}

func (controller *FlightController) DeleteEngineFlight(ctx echo.Context) error {
	data := &RequestDeleteFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.DeleteEngineFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.DeleteEngineFlight(data).Response(ctx)
}

func (controller *FlightController) DeleteGliderFlight(ctx echo.Context) error {
	data := &RequestDeleteFlight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.DeleteGliderFlight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.DeleteGliderFlight(data).Response(ctx)
}

func (controller *FlightController) GetEngineFlights(ctx echo.Context) error {
	data := &RequestFlightList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetEngineFlights bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetEngineFlightList(data).Response(ctx)
}

func (controller *FlightController) GetGliderFlights(ctx echo.Context) error {
	data := &RequestFlightList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightController.GetGliderFlights bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetGliderFlightList(data).Response(ctx)
}
