package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/audit"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLocation = time.FixedZone("IST", 5*3600+30*60)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context, department *string) ([]employee.Employee, error) {
	var active []employee.Employee
	for _, emp := range f.employees {
		if emp.Status == employee.StatusActive {
			active = append(active, emp)
		}
	}
	return active, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records   map[string]attendance.Attendance
	nextID    int
	lookupErr error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) CreateCheckIn(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == record.EmployeeID && existing.Date.Equal(record.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	f.nextID++
	record.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	if f.lookupErr != nil {
		return attendance.Attendance{}, f.lookupErr
	}
	for _, record := range f.records {
		if record.EmployeeID == employeeID && record.Date.Equal(date) {
			return record, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) CompleteCheckOut(ctx context.Context, id string, checkOut time.Time, totalMinutes int, status shift.Status, isLOP bool, lopReason *string) (attendance.Attendance, error) {
	record, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}
	record.CheckOut = &checkOut
	record.TotalMinutes = &totalMinutes
	record.Status = status
	record.IsLOP = isLOP
	record.LOPReason = lopReason
	f.records[id] = record
	return record, nil
}

func (f *fakeAttendanceRepo) CountLogged(ctx context.Context, date time.Time) (int64, error) {
	var n int64
	for _, record := range f.records {
		if record.Date.Equal(date) {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttendanceRepo) CountByStatus(ctx context.Context, date time.Time, status shift.Status) (int64, error) {
	var n int64
	for _, record := range f.records {
		if record.Date.Equal(date) && record.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttendanceRepo) CountCheckedOut(ctx context.Context, date time.Time) (int64, error) {
	var n int64
	for _, record := range f.records {
		if record.Date.Equal(date) && record.CheckOut != nil {
			n++
		}
	}
	return n, nil
}

type fakeAuditService struct {
	audit.AuditService
	actions []string
}

func (f *fakeAuditService) Record(ctx context.Context, action, resource string, resourceID, details *string) {
	f.actions = append(f.actions, action)
}

func newTestService(emps ...employee.Employee) (attendance.AttendanceService, *fakeAttendanceRepo, *fakeAuditService) {
	employeeRepo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range emps {
		employeeRepo.employees[emp.ID] = emp
	}
	attendanceRepo := newFakeAttendanceRepo()
	auditSvc := &fakeAuditService{}
	svc := NewAttendanceService(attendanceRepo, employeeRepo, shift.DefaultCatalog(), testLocation, auditSvc)
	return svc, attendanceRepo, auditSvc
}

func generalEmployee() employee.Employee {
	return employee.Employee{
		ID:                        "emp-1",
		EmpID:                     "EMP0001",
		Name:                      "Chaithanya",
		Team:                      "Data",
		Status:                    employee.StatusActive,
		ShiftType:                 shift.TypeGeneral,
		AttendanceTrackingEnabled: true,
	}
}

func at(hour, min int) time.Time {
	return time.Date(2025, time.September, 10, hour, min, 0, 0, testLocation)
}

func TestCheckInOnTime(t *testing.T) {
	svc, _, auditSvc := newTestService(generalEmployee())

	resp, err := svc.CheckIn(context.Background(), "emp-1", at(9, 55))
	require.NoError(t, err)

	assert.Equal(t, "Login", resp.Status)
	assert.False(t, resp.IsLOP)
	assert.Nil(t, resp.LOPReason)
	assert.Equal(t, "10-09-2025", resp.Date)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "09:55 AM", *resp.CheckIn)
	require.NotNil(t, resp.ShiftType)
	assert.Equal(t, "General", *resp.ShiftType)
	require.NotNil(t, resp.ExpectedLogin)
	assert.Equal(t, "10:00", *resp.ExpectedLogin)
	assert.Equal(t, []string{audit.ActionCheckIn}, auditSvc.actions)
}

func TestCheckInExactlyOnTimeIsNotLate(t *testing.T) {
	svc, _, _ := newTestService(generalEmployee())

	resp, err := svc.CheckIn(context.Background(), "emp-1", at(10, 0))
	require.NoError(t, err)

	assert.Equal(t, "Login", resp.Status)
	assert.False(t, resp.IsLOP)
}

func TestCheckInLateIsLossOfPay(t *testing.T) {
	svc, _, _ := newTestService(generalEmployee())

	resp, err := svc.CheckIn(context.Background(), "emp-1", at(10, 20))
	require.NoError(t, err)

	assert.Equal(t, "Loss of Pay", resp.Status)
	assert.True(t, resp.IsLOP)
	require.NotNil(t, resp.LOPReason)
	assert.Equal(t, "Late login by 20 minute(s) (expected 10:00 AM, actual 10:20 AM)", *resp.LOPReason)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	svc, _, _ := newTestService(generalEmployee())

	_, err := svc.CheckIn(context.Background(), "emp-1", at(9, 55))
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "emp-1", at(11, 0))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInTrackingDisabled(t *testing.T) {
	emp := generalEmployee()
	emp.AttendanceTrackingEnabled = false
	svc, _, _ := newTestService(emp)

	_, err := svc.CheckIn(context.Background(), "emp-1", at(9, 55))
	assert.ErrorIs(t, err, employee.ErrTrackingDisabled)
}

func TestCheckInUnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CheckIn(context.Background(), "nobody", at(9, 55))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckOutFullDay(t *testing.T) {
	svc, _, _ := newTestService(generalEmployee())

	_, err := svc.CheckIn(context.Background(), "emp-1", at(10, 0))
	require.NoError(t, err)

	resp, err := svc.CheckOut(context.Background(), "emp-1", at(21, 0))
	require.NoError(t, err)

	assert.Equal(t, "Present", resp.Status)
	assert.False(t, resp.IsLOP)
	assert.Equal(t, "11h 0m", resp.TotalHours)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "09:00 PM", *resp.CheckOut)
}

func TestCheckOutEarlyIsLossOfPay(t *testing.T) {
	svc, _, _ := newTestService(generalEmployee())

	_, err := svc.CheckIn(context.Background(), "emp-1", at(10, 0))
	require.NoError(t, err)

	resp, err := svc.CheckOut(context.Background(), "emp-1", at(20, 0))
	require.NoError(t, err)

	assert.Equal(t, "Loss of Pay", resp.Status)
	assert.True(t, resp.IsLOP)
	require.NotNil(t, resp.LOPReason)
	assert.Equal(t, "Early logout by 60 minute(s) (expected 09:00 PM, actual 08:00 PM)", *resp.LOPReason)
}

func TestCheckOutKeepsLateLoginReason(t *testing.T) {
	svc, _, _ := newTestService(generalEmployee())

	_, err := svc.CheckIn(context.Background(), "emp-1", at(10, 30))
	require.NoError(t, err)

	resp, err := svc.CheckOut(context.Background(), "emp-1", at(21, 0))
	require.NoError(t, err)

	assert.Equal(t, "Loss of Pay", resp.Status)
	require.NotNil(t, resp.LOPReason)
	assert.Equal(t, "Late login by 30 minute(s) (expected 10:00 AM, actual 10:30 AM)", *resp.LOPReason)
}

func TestCheckOutLookupFailurePropagates(t *testing.T) {
	svc, repo, _ := newTestService(generalEmployee())
	repo.lookupErr = errors.New("connection reset")

	_, err := svc.CheckOut(context.Background(), "emp-1", at(18, 0))
	require.Error(t, err)
	assert.NotErrorIs(t, err, attendance.ErrNotCheckedIn)
	assert.ErrorContains(t, err, "connection reset")
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc, _, _ := newTestService(generalEmployee())

	_, err := svc.CheckOut(context.Background(), "emp-1", at(18, 0))
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutTwiceSameDay(t *testing.T) {
	svc, _, _ := newTestService(generalEmployee())

	_, err := svc.CheckIn(context.Background(), "emp-1", at(10, 0))
	require.NoError(t, err)
	_, err = svc.CheckOut(context.Background(), "emp-1", at(21, 0))
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), "emp-1", at(22, 0))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestStatsCountsForToday(t *testing.T) {
	first := generalEmployee()
	second := generalEmployee()
	second.ID = "emp-2"
	second.Name = "Gowtham"
	svc, _, _ := newTestService(first, second)

	_, err := svc.CheckIn(context.Background(), "emp-1", at(10, 0))
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background(), at(12, 0))
	require.NoError(t, err)

	assert.Equal(t, "10-09-2025", stats.Date)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Logged)
	assert.Equal(t, int64(1), stats.NotLogged)
	assert.Equal(t, int64(0), stats.Logout)
}
