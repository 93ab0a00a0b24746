package attendance

import (
	"context"
	"time"

	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
)

type AttendanceRepository interface {
	// CreateCheckIn inserts the record only if no record exists for the
	// employee and date; a concurrent duplicate yields ErrAlreadyCheckedIn.
	CreateCheckIn(ctx context.Context, record Attendance) (Attendance, error)

	// CompleteCheckOut sets check-out fields only while check_out is still
	// NULL, so a row is finalized exactly once.
	CompleteCheckOut(ctx context.Context, id string, checkOut time.Time, totalMinutes int, status shift.Status, isLOP bool, lopReason *string) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	CountByStatus(ctx context.Context, date time.Time, status shift.Status) (int64, error)
	CountLogged(ctx context.Context, date time.Time) (int64, error)
	CountCheckedOut(ctx context.Context, date time.Time) (int64, error)
}
