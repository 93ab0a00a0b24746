package payroll

import (
	"context"
	"time"
)

// PayrollService derives payroll from attendance. Month keys are "YYYY-MM";
// the current instant is passed in so the default month is deterministic.
type PayrollService interface {
	ComputeEmployeeMonth(ctx context.Context, employeeID string, month string, now time.Time) (PayrollResult, error)
	ComputeMonth(ctx context.Context, month string, department *string, now time.Time) ([]PayrollResult, error)
	Summary(ctx context.Context, month string, department *string, now time.Time) (SummaryResult, error)
}
