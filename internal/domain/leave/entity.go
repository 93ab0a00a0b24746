package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Leave struct {
	ID         string
	EmployeeID string
	EmpName    string
	Team       string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Duration   string // "N day(s)", inclusive span
	Reason     string
	Status     Status
	ApprovedBy *string
	CreatedAt  time.Time
}

// Covers reports whether the leave spans the given calendar day.
func (l *Leave) Covers(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(l.StartDate)) && !d.After(dateOnly(l.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
