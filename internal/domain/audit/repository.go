package audit

import "context"

type AuditRepository interface {
	Create(ctx context.Context, entry AuditLog) error
	List(ctx context.Context, filter AuditFilter) ([]AuditLog, int64, error)
}
