package attendance

import (
	"context"
	"time"
)

// AttendanceService defines clock-in/out and attendance queries. The clock
// operations take the current instant explicitly so classification is
// deterministic and testable.
type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	Stats(ctx context.Context, now time.Time) (StatsResponse, error)
}
