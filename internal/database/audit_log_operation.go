package database

import (
	"context"
	"time"

	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/operation"
	"gorm.io/gorm"
)

type AuditLogOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAuditLogOperation(db *gorm.DB, queryTimeout time.Duration) *AuditLogOperation {
	return &AuditLogOperation{db: db, queryTimeout: queryTimeout}
}

func (auditLogOperation *AuditLogOperation) NewAuditLog(pilotID uint, action, object, detail, ip, userAgent string) *AuditLog {
	return &AuditLog{
		PilotID:   pilotID,
		Action:    action,
		Object:    object,
		Detail:    detail,
		Ip:        ip,
		UserAgent: userAgent,
	}
}

func (auditLogOperation *AuditLogOperation) SaveAuditLog(log *AuditLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	return auditLogOperation.db.WithContext(ctx).Create(log).Error
}

func (auditLogOperation *AuditLogOperation) GetAuditLogs(page, pageSize int) (logs []*AuditLog, total int64, err error) {
	logs = make([]*AuditLog, 0)
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	if err = auditLogOperation.db.WithContext(ctx).Model(&AuditLog{}).Count(&total).Error; err != nil {
		return
	}
	err = auditLogOperation.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error
	return
}
