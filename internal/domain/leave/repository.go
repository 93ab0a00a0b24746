package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	// Decide flips a pending request only; an already-decided request is a
	// conflict (ErrLeaveAlreadyDecided).
	Decide(ctx context.Context, id string, status Status, approvedBy string) (Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]Leave, int64, error)
	// ApprovedOverlapping returns approved leaves whose span intersects
	// [from, to], for payroll classification.
	ApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error)
	// UpcomingApproved returns approved leaves starting on or after the day.
	UpcomingApproved(ctx context.Context, from time.Time, limit int) ([]Leave, error)
	CountPending(ctx context.Context) (int64, error)
}
