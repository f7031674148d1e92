// Package controller
package controller

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type DaylightControllerInterface interface {
	GetDaylight(ctx echo.Context) error
}

type DaylightController struct {
	logger  log.LoggerInterface
	service DaylightServiceInterface
}

func NewDaylightHandler(logger log.LoggerInterface, service DaylightServiceInterface) *DaylightController {
	return &DaylightController{
		logger:  logger,
		service: service,
	}
}

func (controller *DaylightController) GetDaylight(ctx echo.Context) error {
	data := &RequestDaylight{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("DaylightController.GetDaylight bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetDaylight(data).Response(ctx)
}
