package audit

import (
	"github.com/blubridge/hrms-backend-go/internal/pkg/validator"
)

type AuditLogResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	Action     string  `json:"action"`
	Resource   string  `json:"resource"`
	ResourceID *string `json:"resource_id,omitempty"`
	Details    *string `json:"details,omitempty"`
	Timestamp  string  `json:"timestamp"`
}

func (a *AuditLog) ToResponse() AuditLogResponse {
	return AuditLogResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Action:     a.Action,
		Resource:   a.Resource,
		ResourceID: a.ResourceID,
		Details:    a.Details,
		Timestamp:  a.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type AuditFilter struct {
	UserID   *string `json:"user_id,omitempty"`
	Action   *string `json:"action,omitempty"`
	Resource *string `json:"resource,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AuditFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 200",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAuditResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Logs       []AuditLogResponse `json:"logs"`
}
