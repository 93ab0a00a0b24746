package dashboard

import (
	"context"
	"time"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/dashboard"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/leave"
)

type DashboardServiceImpl struct {
	employee.EmployeeRepository
	leave.LeaveRepository
	attendanceService attendance.AttendanceService
	attendanceRepo    attendance.AttendanceRepository
	location          *time.Location
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	attendanceService attendance.AttendanceService,
	attendanceRepo attendance.AttendanceRepository,
	location *time.Location,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		EmployeeRepository: employeeRepo,
		LeaveRepository:    leaveRepo,
		attendanceService:  attendanceService,
		attendanceRepo:     attendanceRepo,
		location:           location,
	}
}

func (s *DashboardServiceImpl) businessDay(now time.Time) time.Time {
	local := now.In(s.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Stats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Stats(ctx context.Context, now time.Time) (dashboard.StatsResponse, error) {
	active, err := s.EmployeeRepository.ListActive(ctx, nil)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	departmentCounts := make(map[string]int64)
	for _, emp := range active {
		departmentCounts[emp.Department]++
	}

	pendingLeaves, err := s.LeaveRepository.CountPending(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	upcoming, err := s.LeaveRepository.UpcomingApproved(ctx, s.businessDay(now), 10)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	upcomingResponses := make([]leave.LeaveResponse, 0, len(upcoming))
	for _, l := range upcoming {
		upcomingResponses = append(upcomingResponses, l.ToResponse())
	}

	attendanceStats, err := s.attendanceService.Stats(ctx, now)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	return dashboard.StatsResponse{
		TotalEmployees:   int64(len(active)),
		DepartmentCounts: departmentCounts,
		PendingLeaves:    pendingLeaves,
		UpcomingLeaves:   upcomingResponses,
		Attendance:       attendanceStats,
	}, nil
}

// LeaveList implements dashboard.DashboardService. It lists active tracked
// employees with no attendance record yet for the day, capped at 10.
func (s *DashboardServiceImpl) LeaveList(ctx context.Context, now time.Time) (dashboard.LeaveListResponse, error) {
	date := s.businessDay(now)

	active, err := s.EmployeeRepository.ListActive(ctx, nil)
	if err != nil {
		return dashboard.LeaveListResponse{}, err
	}

	var notLogged []dashboard.NotLoggedEntry
	for _, emp := range active {
		if !emp.AttendanceTrackingEnabled {
			continue
		}
		if len(notLogged) >= 10 {
			break
		}
		if _, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date); err == nil {
			continue
		}
		notLogged = append(notLogged, dashboard.NotLoggedEntry{
			EmployeeID: emp.ID,
			EmpID:      emp.EmpID,
			Name:       emp.Name,
			Team:       emp.Team,
			Department: emp.Department,
		})
	}

	return dashboard.LeaveListResponse{
		Date:      date.Format("02-01-2006"),
		NotLogged: notLogged,
	}, nil
}
