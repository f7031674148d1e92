// Package controller
package controller

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type EmailControllerInterface interface {
	SendEmailVerifyCode(ctx echo.Context) error
}

type EmailController struct {
	logger  log.LoggerInterface
	service EmailServiceInterface
}

func NewEmailHandler(logger log.LoggerInterface, service EmailServiceInterface) *EmailController {
	return &EmailController{
		logger:  logger,
		service: service,
	}
}

func (controller *EmailController) SendEmailVerifyCode(ctx echo.Context) error {
	data := &RequestEmailVerifyCode{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("EmailController.SendEmailVerifyCode bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.SendEmailVerifyCode(data).Response(ctx)
}
