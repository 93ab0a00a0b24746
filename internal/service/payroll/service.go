package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/leave"
	"github.com/blubridge/hrms-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	leave.LeaveRepository
	location *time.Location
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	location *time.Location,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		LeaveRepository:      leaveRepo,
		location:             location,
	}
}

// resolveMonth parses a YYYY-MM key, defaulting to the current business month.
func (s *PayrollServiceImpl) resolveMonth(month string, now time.Time) (time.Time, error) {
	if month == "" {
		local := now.In(s.location)
		return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, payroll.ErrInvalidMonth
	}
	return parsed, nil
}

// ComputeEmployeeMonth implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputeEmployeeMonth(ctx context.Context, employeeID string, month string, now time.Time) (payroll.PayrollResult, error) {
	monthStart, err := s.resolveMonth(month, now)
	if err != nil {
		return payroll.PayrollResult{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayrollResult{}, err
	}

	return s.compute(ctx, emp, monthStart)
}

func (s *PayrollServiceImpl) compute(ctx context.Context, emp employee.Employee, monthStart time.Time) (payroll.PayrollResult, error) {
	monthEnd := time.Date(monthStart.Year(), monthStart.Month()+1, 0, 0, 0, 0, 0, time.UTC)

	records, err := s.AttendanceRepository.ListByEmployeeRange(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return payroll.PayrollResult{}, err
	}
	leaves, err := s.LeaveRepository.ApprovedOverlapping(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return payroll.PayrollResult{}, err
	}

	return computeEmployeeMonth(emp, monthStart, records, leaves, s.location), nil
}

// ComputeMonth implements payroll.PayrollService. Employees are computed
// concurrently; results keep the roster order.
func (s *PayrollServiceImpl) ComputeMonth(ctx context.Context, month string, department *string, now time.Time) ([]payroll.PayrollResult, error) {
	monthStart, err := s.resolveMonth(month, now)
	if err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.ListActive(ctx, department)
	if err != nil {
		return nil, err
	}

	results := make([]payroll.PayrollResult, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			result, err := s.compute(gctx, emp, monthStart)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary implements payroll.PayrollService.
func (s *PayrollServiceImpl) Summary(ctx context.Context, month string, department *string, now time.Time) (payroll.SummaryResult, error) {
	results, err := s.ComputeMonth(ctx, month, department, now)
	if err != nil {
		return payroll.SummaryResult{}, err
	}

	monthStart, err := s.resolveMonth(month, now)
	if err != nil {
		return payroll.SummaryResult{}, err
	}

	summary := payroll.SummaryResult{
		Month:          monthStart.Format("2006-01"),
		Department:     department,
		EmployeeCount:  len(results),
		TotalSalary:    decimal.Zero,
		TotalDeduction: decimal.Zero,
		TotalNet:       decimal.Zero,
	}
	for _, result := range results {
		summary.TotalSalary = summary.TotalSalary.Add(result.MonthlySalary)
		summary.TotalDeduction = summary.TotalDeduction.Add(result.LOPDeduction)
		summary.TotalNet = summary.TotalNet.Add(result.NetSalary)
		summary.TotalLOPDays += result.LOPDays
		summary.TotalPresent += result.PresentDays
	}
	return summary, nil
}
