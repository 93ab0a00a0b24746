package dashboard

import (
	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/leave"
)

type StatsResponse struct {
	TotalEmployees   int64                    `json:"total_employees"`
	DepartmentCounts map[string]int64         `json:"department_counts"`
	PendingLeaves    int64                    `json:"pending_leaves"`
	UpcomingLeaves   []leave.LeaveResponse    `json:"upcoming_leaves"`
	Attendance       attendance.StatsResponse `json:"attendance"`
}

type NotLoggedEntry struct {
	EmployeeID string `json:"employee_id"`
	EmpID      string `json:"emp_id"`
	Name       string `json:"name"`
	Team       string `json:"team"`
	Department string `json:"department"`
}

type LeaveListResponse struct {
	Date      string           `json:"date"` // DD-MM-YYYY
	NotLogged []NotLoggedEntry `json:"not_logged"`
}
