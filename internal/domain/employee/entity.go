package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID                        string
	EmpID                     string // "EMP0001", assigned sequentially
	Name                      string
	Email                     string
	Phone                     *string
	Department                string
	Team                      string
	Designation               string
	JoinDate                  *time.Time
	Status                    Status
	Avatar                    *string
	Stars                     int
	UnsafeCount               int
	ShiftType                 string
	CustomLoginTime           *string
	CustomLogoutTime          *string
	CustomTotalHours          *float64
	MonthlySalary             decimal.Decimal
	AttendanceTrackingEnabled bool
	CreatedAt                 time.Time
}

// ShiftConfig exposes the employee's shift assignment for catalog resolution.
func (e *Employee) ShiftConfig() shift.Config {
	return shift.Config{
		Type:             e.ShiftType,
		CustomLoginTime:  e.CustomLoginTime,
		CustomLogoutTime: e.CustomLogoutTime,
		CustomTotalHours: e.CustomTotalHours,
	}
}

// IsActive checks if the employee is currently employed.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
