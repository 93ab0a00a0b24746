package report

import "context"

type ReportService interface {
	AttendanceReport(ctx context.Context, filter RangeFilter) (AttendanceReport, error)
	LeaveReport(ctx context.Context, filter RangeFilter) (LeaveReport, error)
}
