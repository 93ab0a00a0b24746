package attendance

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/audit"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	catalog      *shift.Catalog
	location     *time.Location
	auditService audit.AuditService
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	catalog *shift.Catalog,
	location *time.Location,
	auditService audit.AuditService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		catalog:              catalog,
		location:             location,
		auditService:         auditService,
	}
}

// businessDay normalizes an instant to the business-calendar date column value.
func (s *AttendanceServiceImpl) businessDay(now time.Time) time.Time {
	local := now.In(s.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *AttendanceServiceImpl) minuteOfDay(t time.Time) int {
	local := t.In(s.location)
	return local.Hour()*60 + local.Minute()
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.AttendanceTrackingEnabled {
		return attendance.AttendanceResponse{}, employee.ErrTrackingDisabled
	}

	resolved, err := s.catalog.Resolve(emp.ShiftConfig())
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	result := shift.ClassifyCheckIn(resolved, s.minuteOfDay(now))

	checkIn := now.UTC()
	record := attendance.Attendance{
		EmployeeID:     emp.ID,
		EmpName:        emp.Name,
		Team:           emp.Team,
		Date:           s.businessDay(now),
		CheckIn:        &checkIn,
		Status:         result.Status,
		IsLOP:          result.IsLOP,
		LOPReason:      optional(result.Reason),
		ShiftType:      &resolved.Type,
		ExpectedLogin:  resolved.ExpectedLogin,
		ExpectedLogout: resolved.ExpectedLogout,
	}

	created, err := s.AttendanceRepository.CreateCheckIn(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionCheckIn, "attendance", &created.ID, nil)
	return s.toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. The shift is resolved
// again from the employee's current configuration, not from the snapshot, so
// a same-day shift correction applies to the final classification.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string, now time.Time) (attendance.AttendanceResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, s.businessDay(now))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, err
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	// A broken shift configuration at this point falls back to completing
	// the legacy way rather than trapping the employee clocked in.
	resolved, resolveErr := s.catalog.Resolve(emp.ShiftConfig())
	if resolveErr != nil {
		resolved = nil
	}

	in := shift.CheckInResult{
		Status: record.Status,
		IsLOP:  record.IsLOP,
		Reason: deref(record.LOPReason),
	}
	result := shift.ClassifyCheckOut(resolved, in, s.minuteOfDay(*record.CheckIn), s.minuteOfDay(now))

	updated, err := s.AttendanceRepository.CompleteCheckOut(
		ctx, record.ID, now.UTC(), result.WorkedMinutes,
		result.Status, result.IsLOP, optional(result.Reason),
	)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionCheckOut, "attendance", &updated.ID, nil)
	return s.toResponse(updated), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, totalCount, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, s.toResponse(record))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  totalCount,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(totalCount) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

// Stats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Stats(ctx context.Context, now time.Time) (attendance.StatsResponse, error) {
	date := s.businessDay(now)

	active, err := s.EmployeeRepository.ListActive(ctx, nil)
	if err != nil {
		return attendance.StatsResponse{}, err
	}
	total := int64(len(active))

	logged, err := s.AttendanceRepository.CountLogged(ctx, date)
	if err != nil {
		return attendance.StatsResponse{}, err
	}
	earlyOut, err := s.AttendanceRepository.CountByStatus(ctx, date, shift.StatusEarlyOut)
	if err != nil {
		return attendance.StatsResponse{}, err
	}
	lateLogin, err := s.AttendanceRepository.CountByStatus(ctx, date, shift.StatusLateLogin)
	if err != nil {
		return attendance.StatsResponse{}, err
	}
	checkedOut, err := s.AttendanceRepository.CountCheckedOut(ctx, date)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	notLogged := total - logged
	if notLogged < 0 {
		notLogged = 0
	}

	return attendance.StatsResponse{
		Date:      date.Format("02-01-2006"),
		Total:     total,
		Logged:    logged,
		NotLogged: notLogged,
		EarlyOut:  earlyOut,
		LateLogin: lateLogin,
		Logout:    checkedOut,
	}, nil
}

func (s *AttendanceServiceImpl) toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmpName:        a.EmpName,
		Team:           a.Team,
		Date:           a.DayKey(),
		TotalHours:     shift.FormatHours(a.TotalMinutes),
		Status:         string(a.Status),
		IsLOP:          a.IsLOP,
		LOPReason:      a.LOPReason,
		ShiftType:      a.ShiftType,
		ExpectedLogin:  a.ExpectedLogin,
		ExpectedLogout: a.ExpectedLogout,
	}
	if a.CheckIn != nil {
		display := a.CheckIn.In(s.location).Format("03:04 PM")
		resp.CheckIn = &display
	}
	if a.CheckOut != nil {
		display := a.CheckOut.In(s.location).Format("03:04 PM")
		resp.CheckOut = &display
	}
	return resp
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
