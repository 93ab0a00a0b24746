package report

import (
	"context"
	"time"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/leave"
	"github.com/blubridge/hrms-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
	leave.LeaveRepository
	location *time.Location
}

func NewReportService(
	attendanceService attendance.AttendanceService,
	leaveRepo leave.LeaveRepository,
	location *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceService: attendanceService,
		LeaveRepository:   leaveRepo,
		location:          location,
	}
}

// AttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, filter report.RangeFilter) (report.AttendanceReport, error) {
	if err := filter.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	listFilter := attendance.AttendanceFilter{
		StartDate: &filter.StartDate,
		EndDate:   &filter.EndDate,
		Team:      filter.Team,
		Page:      1,
		Limit:     100,
	}
	list, err := s.attendanceService.ListAttendance(ctx, listFilter)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	byStatus := make(map[string]int64)
	for _, record := range list.Attendances {
		byStatus[record.Status]++
	}

	return report.AttendanceReport{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Team:      filter.Team,
		Total:     list.TotalCount,
		ByStatus:  byStatus,
		Records:   list.Attendances,
	}, nil
}

// LeaveReport implements report.ReportService. The range filter is matched in
// memory because leaves span intervals rather than single dates.
func (s *ReportServiceImpl) LeaveReport(ctx context.Context, filter report.RangeFilter) (report.LeaveReport, error) {
	if err := filter.Validate(); err != nil {
		return report.LeaveReport{}, err
	}

	start, _ := time.Parse("02-01-2006", filter.StartDate)
	end, _ := time.Parse("02-01-2006", filter.EndDate)

	listFilter := leave.LeaveFilter{Team: filter.Team, Page: 1, Limit: 100}
	leaves, _, err := s.LeaveRepository.List(ctx, listFilter)
	if err != nil {
		return report.LeaveReport{}, err
	}

	byStatus := make(map[string]int64)
	var records []leave.LeaveResponse
	for _, l := range leaves {
		if l.EndDate.Before(start) || l.StartDate.After(end) {
			continue
		}
		byStatus[string(l.Status)]++
		records = append(records, l.ToResponse())
	}

	return report.LeaveReport{
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Team:      filter.Team,
		Total:     int64(len(records)),
		ByStatus:  byStatus,
		Records:   records,
	}, nil
}
