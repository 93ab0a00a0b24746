package payroll

import "github.com/shopspring/decimal"

// PayrollResult is derived from a month of attendance on demand, never stored.
// Recomputing it with unchanged attendance yields an identical result.
type PayrollResult struct {
	EmployeeID    string          `json:"employee_id"`
	EmpID         string          `json:"emp_id"`
	EmpName       string          `json:"emp_name"`
	Department    string          `json:"department"`
	Team          string          `json:"team"`
	Month         string          `json:"month"` // YYYY-MM
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	WorkingDays   int             `json:"working_days"`
	PresentDays   int             `json:"present_days"`
	LOPDays       float64         `json:"lop_days"`
	LeaveDays     int             `json:"leave_days"`
	AbsentDays    int             `json:"absent_days"`
	PerDaySalary  decimal.Decimal `json:"per_day_salary"`
	LOPDeduction  decimal.Decimal `json:"lop_deduction"`
	NetSalary     decimal.Decimal `json:"net_salary"`
	Details       []DayDetail     `json:"attendance_details"`
}

// DayDetail is one calendar day of the payroll breakdown.
type DayDetail struct {
	Date     string  `json:"date"` // DD-MM-YYYY
	Weekday  string  `json:"weekday"`
	IsSunday bool    `json:"is_sunday"`
	Status   string  `json:"status"`
	IsLOP    bool    `json:"is_lop"`
	LOPValue float64 `json:"lop_value"`
	CheckIn  *string `json:"check_in,omitempty"`  // hh:mm AM/PM
	CheckOut *string `json:"check_out,omitempty"` // hh:mm AM/PM
	Hours    string  `json:"hours"`               // "8h 30m" or "-"
}

// SummaryResult aggregates PayrollResults across an employee set.
type SummaryResult struct {
	Month          string          `json:"month"`
	Department     *string         `json:"department,omitempty"`
	EmployeeCount  int             `json:"employee_count"`
	TotalSalary    decimal.Decimal `json:"total_salary"`
	TotalDeduction decimal.Decimal `json:"total_deduction"`
	TotalNet       decimal.Decimal `json:"total_net"`
	TotalLOPDays   float64         `json:"total_lop_days"`
	TotalPresent   int             `json:"total_present_days"`
}
