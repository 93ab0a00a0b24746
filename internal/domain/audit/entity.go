package audit

import "time"

// AuditLog is an append-only trail of user-initiated mutations.
type AuditLog struct {
	ID         string
	UserID     string
	Action     string
	Resource   string
	ResourceID *string
	Details    *string
	Timestamp  time.Time
}

const (
	ActionLogin    = "login"
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionAward    = "award"
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)
