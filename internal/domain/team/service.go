package team

import "context"

type TeamService interface {
	ListTeams(ctx context.Context, department *string) ([]TeamResponse, error)
	GetTeam(ctx context.Context, id string) (TeamDetailResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
}
