package audit

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/blubridge/hrms-backend-go/internal/domain/audit"
)

type AuditServiceImpl struct {
	audit.AuditRepository
}

func NewAuditService(auditRepo audit.AuditRepository) audit.AuditService {
	return &AuditServiceImpl{AuditRepository: auditRepo}
}

// Record implements audit.AuditService. Failures are logged and swallowed so
// the mutation that triggered the entry still succeeds.
func (s *AuditServiceImpl) Record(ctx context.Context, action, resource string, resourceID, details *string) {
	userID := "system"
	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if id, ok := claims["user_id"].(string); ok && id != "" {
			userID = id
		}
	}

	entry := audit.AuditLog{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    details,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.AuditRepository.Create(ctx, entry); err != nil {
		slog.Error("failed to record audit log",
			"action", action, "resource", resource, "error", err)
	}
}

// ListLogs implements audit.AuditService.
func (s *AuditServiceImpl) ListLogs(ctx context.Context, filter audit.AuditFilter) (audit.ListAuditResponse, error) {
	if err := filter.Validate(); err != nil {
		return audit.ListAuditResponse{}, err
	}

	logs, totalCount, err := s.AuditRepository.List(ctx, filter)
	if err != nil {
		return audit.ListAuditResponse{}, err
	}

	responses := make([]audit.AuditLogResponse, 0, len(logs))
	for _, entry := range logs {
		responses = append(responses, entry.ToResponse())
	}

	return audit.ListAuditResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(filter.Limit))),
		Logs:       responses,
	}, nil
}
