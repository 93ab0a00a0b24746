package dashboard

import (
	"context"
	"time"
)

type DashboardService interface {
	Stats(ctx context.Context, now time.Time) (StatsResponse, error)
	// LeaveList returns employees who have not clocked in on the given day.
	LeaveList(ctx context.Context, now time.Time) (LeaveListResponse, error)
}
