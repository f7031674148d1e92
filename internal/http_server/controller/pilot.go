// Package controller
package controller

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type PilotControllerInterface interface {
	PilotRegister(ctx echo.Context) error
	PilotLogin(ctx echo.Context) error
	GetToken(ctx echo.Context) error
	CheckPilotAvailability(ctx echo.Context) error
	GetCurrentProfile(ctx echo.Context) error
	EditCurrentProfile(ctx echo.Context) error
	GetPilotProfile(ctx echo.Context) error
	EditPilotProfile(ctx echo.Context) error
	GetPilots(ctx echo.Context) error
}

type PilotController struct {
	logger  log.LoggerInterface
	service PilotServiceInterface
}

func NewPilotHandler(logger log.LoggerInterface, service PilotServiceInterface) *PilotController {
	return &PilotController{
		logger:  logger,
		service: service,
	}
}

func (controller *PilotController) PilotRegister(ctx echo.Context) error {
	data := &RequestPilotRegister{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.PilotRegister bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.PilotRegister(data).Response(ctx)
}

func (controller *PilotController) PilotLogin(ctx echo.Context) error {
	data := &RequestPilotLogin{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.PilotLogin bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.PilotLogin(data).Response(ctx)
}

func (controller *PilotController) GetToken(ctx echo.Context) error {
	data := &RequestGetToken{}
	token := ctx.Get("user").(*jwt.Token)
	data.Claims = token.Claims.(*Claims)
	return controller.service.GetTokenWithFlushToken(data).Response(ctx)
}

func (controller *PilotController) CheckPilotAvailability(ctx echo.Context) error {
	data := &RequestPilotAvailability{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.CheckPilotAvailability bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.CheckPilotAvailability(data).Response(ctx)
}

func (controller *PilotController) GetCurrentProfile(ctx echo.Context) error {
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data := &RequestPilotCurrentProfile{Uid: claim.Uid}
	return controller.service.GetCurrentProfile(data).Response(ctx)
}

func (controller *PilotController) EditCurrentProfile(ctx echo.Context) error {
	data := &RequestPilotEditCurrentProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.EditCurrentProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	data.Admin = claim.Admin
	return controller.service.EditCurrentProfile(data).Response(ctx)
}

func (controller *PilotController) GetPilotProfile(ctx echo.Context) error {
	data := &RequestPilotProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.GetPilotProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	data.Admin = claim.Admin
	return controller.service.GetPilotProfile(data).Response(ctx)
}

func (controller *PilotController) EditPilotProfile(ctx echo.Context) error {
	data := &RequestPilotEditProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.EditPilotProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	data.JwtHeader.Admin = claim.Admin
	return controller.service.EditPilotProfile(data).Response(ctx)
}

func (controller *PilotController) GetPilots(ctx echo.Context) error {
	data := &RequestPilotList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.GetPilots bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	data.Uid = claim.Uid
	data.Admin = claim.Admin
	return controller.service.GetPilotList(data).Response(ctx)
}
