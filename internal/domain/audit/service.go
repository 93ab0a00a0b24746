package audit

import "context"

// AuditService records mutations. Record failures are logged, never returned:
// a broken audit trail must not fail the business operation.
type AuditService interface {
	Record(ctx context.Context, action, resource string, resourceID, details *string)
	ListLogs(ctx context.Context, filter AuditFilter) (ListAuditResponse, error)
}
