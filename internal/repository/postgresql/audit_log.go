package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/blubridge/hrms-backend-go/internal/domain/audit"
	"github.com/blubridge/hrms-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}

// Create implements audit.AuditRepository.
func (r *auditRepository) Create(ctx context.Context, entry audit.AuditLog) error {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO audit_logs (id, user_id, action, resource, resource_id, details, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Action, entry.Resource,
		entry.ResourceID, entry.Details, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// List implements audit.AuditRepository.
func (r *auditRepository) List(ctx context.Context, filter audit.AuditFilter) ([]audit.AuditLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Action != nil && *filter.Action != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("action = $%d", argIdx))
		args = append(args, *filter.Action)
		argIdx++
	}
	if filter.Resource != nil && *filter.Resource != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("resource = $%d", argIdx))
		args = append(args, *filter.Resource)
		argIdx++
	}

	where := strings.Join(whereClauses, " AND ")

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM audit_logs WHERE "+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT id, user_id, action, resource, resource_id, details, timestamp FROM audit_logs WHERE %s ORDER BY timestamp DESC LIMIT $%d OFFSET $%d",
		where, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var logs []audit.AuditLog
	for rows.Next() {
		var entry audit.AuditLog
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.Resource, &entry.ResourceID, &entry.Details, &entry.Timestamp); err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit log: %w", err)
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate audit logs: %w", err)
	}

	return logs, totalCount, nil
}
