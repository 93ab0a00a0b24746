package attendance

import (
	"time"

	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
)

// Attendance is one employee-day. The shift snapshot taken at clock-in is
// stored alongside the record so later shift changes do not rewrite history.
type Attendance struct {
	ID             string
	EmployeeID     string
	EmpName        string
	Team           string
	Date           time.Time // business-calendar day, midnight
	CheckIn        *time.Time
	CheckOut       *time.Time
	TotalMinutes   *int
	Status         shift.Status
	IsLOP          bool
	LOPReason      *string
	ShiftType      *string
	ExpectedLogin  *string
	ExpectedLogout *string
	CreatedAt      time.Time
}

// DayKey renders the record's date in the DD-MM-YYYY business format.
func (a *Attendance) DayKey() string {
	return a.Date.Format("02-01-2006")
}
