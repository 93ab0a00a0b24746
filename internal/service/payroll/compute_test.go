package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/leave"
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
)

// September 2025 starts on a Monday and has four Sundays (7, 14, 21, 28),
// leaving 26 working days.
var september = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

func testEmployee(salary int64) employee.Employee {
	return employee.Employee{
		ID:            "emp-1",
		EmpID:         "EMP0001",
		Name:          "Asha Verma",
		Department:    "Research",
		Team:          "Platform",
		MonthlySalary: decimal.NewFromInt(salary),
	}
}

func record(day int, status shift.Status, isLOP bool) attendance.Attendance {
	return attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC),
		Status:     status,
		IsLOP:      isLOP,
	}
}

// fullMonth returns a record for every non-Sunday day of September 2025,
// with overrides applied by day number.
func fullMonth(overrides map[int]attendance.Attendance) []attendance.Attendance {
	var records []attendance.Attendance
	for day := 1; day <= 30; day++ {
		date := time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC)
		if date.Weekday() == time.Sunday {
			continue
		}
		if override, ok := overrides[day]; ok {
			records = append(records, override)
			continue
		}
		records = append(records, record(day, shift.StatusPresent, false))
	}
	return records
}

func TestComputeFullPresentMonth(t *testing.T) {
	result := computeEmployeeMonth(testEmployee(60000), september, fullMonth(nil), nil, time.UTC)

	assert.Equal(t, 26, result.WorkingDays)
	assert.Equal(t, 26, result.PresentDays)
	assert.Equal(t, 0.0, result.LOPDays)
	assert.Equal(t, 0, result.AbsentDays)
	assert.Equal(t, "2000.00", result.PerDaySalary.StringFixed(2))
	assert.Equal(t, "0.00", result.LOPDeduction.StringFixed(2))
	assert.Equal(t, "60000.00", result.NetSalary.StringFixed(2))
	assert.Len(t, result.Details, 30)
}

func TestComputeTwoAbsentDays(t *testing.T) {
	// No records on the 1st and 2nd, everything else present.
	records := fullMonth(nil)[2:]

	result := computeEmployeeMonth(testEmployee(60000), september, records, nil, time.UTC)

	assert.Equal(t, 2, result.AbsentDays)
	assert.Equal(t, 24, result.PresentDays)
	assert.Equal(t, "4000.00", result.LOPDeduction.StringFixed(2))
	assert.Equal(t, "56000.00", result.NetSalary.StringFixed(2))
}

func TestComputeHalfDayContributions(t *testing.T) {
	records := fullMonth(map[int]attendance.Attendance{
		3: record(3, shift.StatusLateLogin, false),
		4: record(4, shift.StatusEarlyOut, false),
	})

	result := computeEmployeeMonth(testEmployee(60000), september, records, nil, time.UTC)

	assert.Equal(t, 1.0, result.LOPDays)
	assert.Equal(t, "2000.00", result.LOPDeduction.StringFixed(2))
	assert.Equal(t, "58000.00", result.NetSalary.StringFixed(2))
}

func TestComputeFullLOPDay(t *testing.T) {
	records := fullMonth(map[int]attendance.Attendance{
		5: record(5, shift.StatusLossOfPay, true),
	})

	result := computeEmployeeMonth(testEmployee(60000), september, records, nil, time.UTC)

	assert.Equal(t, 1.0, result.LOPDays)
	assert.Equal(t, 25, result.PresentDays)
	assert.Equal(t, "58000.00", result.NetSalary.StringFixed(2))
}

func TestComputeLateLoginWithLOPFlagIsFullDay(t *testing.T) {
	// The flag wins over the half-day status.
	records := fullMonth(map[int]attendance.Attendance{
		3: record(3, shift.StatusLateLogin, true),
	})

	result := computeEmployeeMonth(testEmployee(60000), september, records, nil, time.UTC)

	assert.Equal(t, 1.0, result.LOPDays)
	assert.Equal(t, "2000.00", result.LOPDeduction.StringFixed(2))
}

func TestComputeSundayRecordContributesNothing(t *testing.T) {
	// A stray LOP record on Sunday the 7th must be ignored entirely.
	records := append(fullMonth(nil), record(7, shift.StatusLossOfPay, true))

	result := computeEmployeeMonth(testEmployee(60000), september, records, nil, time.UTC)

	assert.Equal(t, 0.0, result.LOPDays)
	assert.Equal(t, "60000.00", result.NetSalary.StringFixed(2))

	sunday := result.Details[6]
	assert.True(t, sunday.IsSunday)
	assert.Equal(t, "Sunday", sunday.Status)
	assert.Equal(t, 0.0, sunday.LOPValue)
}

func TestComputeApprovedLeaveCoversMissingDays(t *testing.T) {
	// No records on the 1st and 2nd, but an approved leave spans them.
	records := fullMonth(nil)[2:]
	leaves := []leave.Leave{{
		EmployeeID: "emp-1",
		Status:     leave.StatusApproved,
		StartDate:  time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC),
	}}

	result := computeEmployeeMonth(testEmployee(60000), september, records, leaves, time.UTC)

	assert.Equal(t, 2, result.LeaveDays)
	assert.Equal(t, 0, result.AbsentDays)
	assert.Equal(t, "60000.00", result.NetSalary.StringFixed(2))
	assert.Equal(t, "Leave", result.Details[0].Status)
}

func TestComputePendingLeaveDoesNotCover(t *testing.T) {
	records := fullMonth(nil)[1:]
	leaves := []leave.Leave{{
		EmployeeID: "emp-1",
		Status:     leave.StatusPending,
		StartDate:  time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
	}}

	result := computeEmployeeMonth(testEmployee(60000), september, records, leaves, time.UTC)

	assert.Equal(t, 0, result.LeaveDays)
	assert.Equal(t, 1, result.AbsentDays)
}

func TestComputeUnknownStatusCountsPresent(t *testing.T) {
	records := fullMonth(map[int]attendance.Attendance{
		3: record(3, shift.Status("Mystery"), false),
	})

	result := computeEmployeeMonth(testEmployee(60000), september, records, nil, time.UTC)

	assert.Equal(t, 26, result.PresentDays)
	assert.Equal(t, 0.0, result.LOPDays)
}

func TestComputeRounding(t *testing.T) {
	records := fullMonth(map[int]attendance.Attendance{
		3: record(3, shift.StatusLossOfPay, true),
	})

	result := computeEmployeeMonth(testEmployee(50000), september, records, nil, time.UTC)

	// 50000 / 30 = 1666.666..., rounded at the deduction.
	assert.Equal(t, "1666.67", result.PerDaySalary.StringFixed(2))
	assert.Equal(t, "1666.67", result.LOPDeduction.StringFixed(2))
	assert.Equal(t, "48333.33", result.NetSalary.StringFixed(2))
}

func TestComputeWholeMonthAbsent(t *testing.T) {
	result := computeEmployeeMonth(testEmployee(100), september, nil, nil, time.UTC)

	require.Equal(t, 26, result.AbsentDays)
	assert.Equal(t, 0, result.PresentDays)
	// 100 / 30 * 26 = 86.666..., rounded at the deduction.
	assert.Equal(t, "86.67", result.LOPDeduction.StringFixed(2))
	assert.Equal(t, "13.33", result.NetSalary.StringFixed(2))
}

func TestComputeIsIdempotent(t *testing.T) {
	emp := testEmployee(60000)
	records := fullMonth(map[int]attendance.Attendance{
		3: record(3, shift.StatusLateLogin, false),
		9: record(9, shift.StatusLossOfPay, true),
	})

	first := computeEmployeeMonth(emp, september, records, nil, time.UTC)
	second := computeEmployeeMonth(emp, september, records, nil, time.UTC)

	assert.Equal(t, first, second)
}
