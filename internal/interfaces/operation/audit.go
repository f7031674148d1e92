// Package operation
package operation

type AuditLogOperationInterface interface {
	// NewAuditLog builds an unsaved audit entry
	NewAuditLog(pilotID uint, action, object, detail, ip, userAgent string) *AuditLog
	// SaveAuditLog persists one entry
	SaveAuditLog(log *AuditLog) (err error)
	// GetAuditLogs returns one page of entries, newest first
	GetAuditLogs(page, pageSize int) (logs []*AuditLog, total int64, err error)
}
