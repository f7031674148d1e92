// Package service
package service

import (
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
)

type AuditService struct {
	logger            log.LoggerInterface
	pilotOperation    operation.PilotOperationInterface
	auditLogOperation operation.AuditLogOperationInterface
}

func NewAuditService(
	logger log.LoggerInterface,
	pilotOperation operation.PilotOperationInterface,
	auditLogOperation operation.AuditLogOperationInterface,
) *AuditService {
	return &AuditService{
		logger:            logger,
		pilotOperation:    pilotOperation,
		auditLogOperation: auditLogOperation,
	}
}

var SuccessGetAuditLog = ApiStatus{StatusName: "GET_AUDIT_LOG_SUCCESS", Description: "Audit log page fetched", HttpCode: Ok}

// Log records an administrative action. Failures are logged and swallowed:
// auditing must never fail the operation it describes.
func (auditService *AuditService) Log(uid uint, action, object, detail, ip, userAgent string) {
	entry := auditService.auditLogOperation.NewAuditLog(uid, action, object, detail, ip, userAgent)
	if err := auditService.auditLogOperation.SaveAuditLog(entry); err != nil {
		auditService.logger.ErrorF("AuditService.Log save error: %v", err)
	}
}

func (auditService *AuditService) GetAuditLogPage(req *RequestGetAuditLog) *ApiResponse[ResponseGetAuditLog] {
	if _, res := GetPilotAndCheckAdmin[ResponseGetAuditLog](auditService.logger, auditService.pilotOperation, req.Uid); res != nil {
		return res
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 25
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}
	logs, total, err := auditService.auditLogOperation.GetAuditLogs(req.Page, req.PageSize)
	if err != nil {
		auditService.logger.ErrorF("AuditService.GetAuditLogPage query error: %v", err)
		return NewApiResponse[ResponseGetAuditLog](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetAuditLog, Unsatisfied, &ResponseGetAuditLog{
		Items:    logs,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}
