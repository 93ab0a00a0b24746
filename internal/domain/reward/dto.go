package reward

import (
	"github.com/blubridge/hrms-backend-go/internal/pkg/validator"
)

type RewardResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	EmpName    string `json:"emp_name"`
	Team       string `json:"team"`
	Stars      int    `json:"stars"`
	Reason     string `json:"reason"`
	AwardedBy  string `json:"awarded_by"`
	Month      string `json:"month"`
	CreatedAt  string `json:"created_at"`
}

func (r *StarReward) ToResponse() RewardResponse {
	return RewardResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		EmpName:    r.EmpName,
		Team:       r.Team,
		Stars:      r.Stars,
		Reason:     r.Reason,
		AwardedBy:  r.AwardedBy,
		Month:      r.Month,
		CreatedAt:  r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type AwardRequest struct {
	EmployeeID string `json:"employee_id"`
	Stars      int    `json:"stars"`
	Reason     string `json:"reason"`
}

func (r *AwardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Stars == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "stars",
			Message: "stars must not be zero",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaderboardEntry struct {
	EmployeeID string `json:"employee_id"`
	EmpID      string `json:"emp_id"`
	Name       string `json:"name"`
	Team       string `json:"team"`
	Department string `json:"department"`
	Stars      int    `json:"stars"`
	Rank       int    `json:"rank"`
}

type LeaderboardFilter struct {
	Team   *string `json:"team,omitempty"`
	Search *string `json:"search,omitempty"`
	Limit  int     `json:"limit"`
}

func (f *LeaderboardFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
