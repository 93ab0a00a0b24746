package reward

import "time"

// StarReward is one award event. Stars may be negative to revoke.
type StarReward struct {
	ID         string
	EmployeeID string
	EmpName    string
	Team       string
	Stars      int
	Reason     string
	AwardedBy  string
	Month      string // YYYY-MM
	CreatedAt  time.Time
}
