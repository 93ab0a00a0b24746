package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/leave"
	"github.com/blubridge/hrms-backend-go/internal/domain/payroll"
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
)

// The per-day salary divisor is a fixed business constant, independent of the
// actual working-day count of the month.
var perDayDivisor = decimal.NewFromInt(30)

// computeEmployeeMonth derives the payroll for one employee and month from
// the attendance records and approved leaves of that month. It is pure: the
// same inputs always produce the same result.
func computeEmployeeMonth(emp employee.Employee, month time.Time, records []attendance.Attendance, leaves []leave.Leave, loc *time.Location) payroll.PayrollResult {
	byDay := make(map[string]attendance.Attendance, len(records))
	for _, record := range records {
		byDay[record.DayKey()] = record
	}

	daysInMonth := time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()

	var (
		workingDays int
		presentDays int
		leaveDays   int
		absentDays  int
		lopDays     float64
		details     = make([]payroll.DayDetail, 0, daysInMonth)
	)

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
		detail := payroll.DayDetail{
			Date:     date.Format("02-01-2006"),
			Weekday:  date.Weekday().String(),
			IsSunday: date.Weekday() == time.Sunday,
			Hours:    "-",
		}

		if detail.IsSunday {
			detail.Status = "Sunday"
			details = append(details, detail)
			continue
		}
		workingDays++

		if record, ok := byDay[detail.Date]; ok {
			detail.Status = string(record.Status)
			detail.IsLOP = record.IsLOP
			detail.Hours = shift.FormatHours(record.TotalMinutes)
			if record.CheckIn != nil {
				display := record.CheckIn.In(loc).Format("03:04 PM")
				detail.CheckIn = &display
			}
			if record.CheckOut != nil {
				display := record.CheckOut.In(loc).Format("03:04 PM")
				detail.CheckOut = &display
			}

			switch {
			case record.IsLOP || record.Status == shift.StatusLossOfPay:
				detail.LOPValue = 1.0
				lopDays += 1.0
			case record.Status == shift.StatusLateLogin || record.Status == shift.StatusEarlyOut:
				detail.LOPValue = 0.5
				lopDays += 0.5
				presentDays++
			case record.Status == shift.StatusLeave:
				leaveDays++
			case record.Status == shift.StatusNotLogged || record.Status == shift.StatusNA:
				absentDays++
			default:
				// Present, Completed, and anything unrecognized count as
				// worked days.
				presentDays++
			}
			details = append(details, detail)
			continue
		}

		if coveredByApprovedLeave(leaves, date) {
			detail.Status = string(shift.StatusLeave)
			leaveDays++
			details = append(details, detail)
			continue
		}

		detail.Status = "Absent"
		absentDays++
		details = append(details, detail)
	}

	perDay := emp.MonthlySalary.Div(perDayDivisor)
	deduction := perDay.Mul(decimal.NewFromFloat(lopDays).Add(decimal.NewFromInt(int64(absentDays)))).Round(2)
	net := emp.MonthlySalary.Sub(deduction)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return payroll.PayrollResult{
		EmployeeID:    emp.ID,
		EmpID:         emp.EmpID,
		EmpName:       emp.Name,
		Department:    emp.Department,
		Team:          emp.Team,
		Month:         month.Format("2006-01"),
		MonthlySalary: emp.MonthlySalary.Round(2),
		WorkingDays:   workingDays,
		PresentDays:   presentDays,
		LOPDays:       lopDays,
		LeaveDays:     leaveDays,
		AbsentDays:    absentDays,
		PerDaySalary:  perDay.Round(2),
		LOPDeduction:  deduction,
		NetSalary:     net.Round(2),
		Details:       details,
	}
}

func coveredByApprovedLeave(leaves []leave.Leave, date time.Time) bool {
	for i := range leaves {
		if leaves[i].Status == leave.StatusApproved && leaves[i].Covers(date) {
			return true
		}
	}
	return false
}
