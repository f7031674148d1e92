// Package controller
package controller

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type AuditControllerInterface interface {
	GetAuditLogs(ctx echo.Context) error
}

type AuditController struct {
	logger  log.LoggerInterface
	service AuditServiceInterface
}

func NewAuditHandler(logger log.LoggerInterface, service AuditServiceInterface) *AuditController {
	return &AuditController{
		logger:  logger,
		service: service,
	}
}

func (controller *AuditController) GetAuditLogs(ctx echo.Context) error {
	data := &RequestGetAuditLog{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("AuditController.GetAuditLogs bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetAuditLogPage(data).Response(ctx)
}
