// Package controller
package controller

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AgendaControllerInterface interface {
	GetAgenda(ctx echo.Context) error
	AddSlot(ctx echo.Context) error
	BookSlot(ctx echo.Context) error
	ReleaseSlot(ctx echo.Context) error
	EditSlot(ctx echo.Context) error
	DeleteSlot(ctx echo.Context) error
}

type AgendaController struct {
	logger  log.LoggerInterface
	service AgendaServiceInterface
}

func NewAgendaHandler(logger log.LoggerInterface, service AgendaServiceInterface) *AgendaController {
	return &AgendaController{
		logger:  logger,
		service: service,
	}
}

func (controller *AgendaController) GetAgenda(ctx echo.Context) error {
	data := &RequestAgenda{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AgendaController.GetAgenda bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetAgenda(data).Response(ctx)
}

func (controller *AgendaController) AddSlot(ctx echo.Context) error {
	data := &RequestAddSlot{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AgendaController.AddSlot bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.AddSlot(data).Response(ctx)
}

func (controller *AgendaController) BookSlot(ctx echo.Context) error {
	data := &RequestBookSlot{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AgendaController.BookSlot bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.BookSlot(data).Response(ctx)
}

func (controller *AgendaController) ReleaseSlot(ctx echo.Context) error {
	data := &RequestReleaseSlot{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AgendaController.ReleaseSlot bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.ReleaseSlot(data).Response(ctx)
}

func (controller *AgendaController) EditSlot(ctx echo.Context) error {
	data := &RequestEditSlot{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AgendaController.EditSlot bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.EditSlot(data).Response(ctx)
}

func (controller *AgendaController) DeleteSlot(ctx echo.Context) error {
	data := &RequestDeleteSlot{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AgendaController.DeleteSlot bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.DeleteSlot(data).Response(ctx)
}
