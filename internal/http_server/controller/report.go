// Package controller
package controller

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type ReportControllerInterface interface {
	GetFlightReport(ctx echo.Context) error
	ExportFlightReport(ctx echo.Context) error
	ExportAgenda(ctx echo.Context) error
	SendWeeklySummary(ctx echo.Context) error
}

type ReportController struct {
	logger  log.LoggerInterface
	service ReportServiceInterface
}

func NewReportHandler(logger log.LoggerInterface, service ReportServiceInterface) *ReportController {
	return &ReportController{
		logger:  logger,
		service: service,
	}
}

func (controller *ReportController) GetFlightReport(ctx echo.Context) error {
	data := &RequestFlightReport{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("ReportController.GetFlightReport bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.GetFlightReport(data).Response(ctx)
}

func (controller *ReportController) ExportFlightReport(ctx echo.Context) error {
	data := &RequestExportFlightReport{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("ReportController.ExportFlightReport bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.ExportFlightReport(data).Response(ctx)
}

func (controller *ReportController) ExportAgenda(ctx echo.Context) error {
	data := &RequestExportAgenda{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("ReportController.ExportAgenda bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.ExportAgenda(data).Response(ctx)
}

func (controller *ReportController) SendWeeklySummary(ctx echo.Context) error {
	data := &RequestWeeklySummary{}
	fillJwtHeader(ctx, &data.JwtHeader)
	return controller.service.SendWeeklySummary(data).Response(ctx)
}
