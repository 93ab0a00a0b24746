package team

import "github.com/blubridge/hrms-backend-go/internal/domain/employee"

type TeamResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	LeadID      *string `json:"lead_id,omitempty"`
	LeadName    *string `json:"lead_name,omitempty"`
	MemberCount int     `json:"member_count"`
}

func (t *Team) ToResponse() TeamResponse {
	return TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Department:  t.Department,
		LeadID:      t.LeadID,
		LeadName:    t.LeadName,
		MemberCount: t.MemberCount,
	}
}

type TeamDetailResponse struct {
	TeamResponse
	Members []employee.EmployeeResponse `json:"members"`
}

type DepartmentResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	HeadID    *string `json:"head_id,omitempty"`
	HeadName  *string `json:"head_name,omitempty"`
	TeamCount int     `json:"team_count"`
}

func (d *Department) ToResponse() DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		HeadID:    d.HeadID,
		HeadName:  d.HeadName,
		TeamCount: d.TeamCount,
	}
}
