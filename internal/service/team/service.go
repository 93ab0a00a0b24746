package team

import (
	"context"

	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/team"
)

type TeamServiceImpl struct {
	team.TeamRepository
	employee.EmployeeRepository
}

func NewTeamService(teamRepo team.TeamRepository, employeeRepo employee.EmployeeRepository) team.TeamService {
	return &TeamServiceImpl{
		TeamRepository:     teamRepo,
		EmployeeRepository: employeeRepo,
	}
}

// ListTeams implements team.TeamService.
func (s *TeamServiceImpl) ListTeams(ctx context.Context, department *string) ([]team.TeamResponse, error) {
	teams, err := s.TeamRepository.List(ctx, department)
	if err != nil {
		return nil, err
	}

	responses := make([]team.TeamResponse, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, t.ToResponse())
	}
	return responses, nil
}

// GetTeam implements team.TeamService. The roster comes from the employee
// table, matched by team name.
func (s *TeamServiceImpl) GetTeam(ctx context.Context, id string) (team.TeamDetailResponse, error) {
	t, err := s.TeamRepository.GetByID(ctx, id)
	if err != nil {
		return team.TeamDetailResponse{}, err
	}

	filter := employee.EmployeeFilter{Team: &t.Name, Page: 1, Limit: 100}
	members, _, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return team.TeamDetailResponse{}, err
	}

	memberResponses := make([]employee.EmployeeResponse, 0, len(members))
	for _, m := range members {
		memberResponses = append(memberResponses, m.ToResponse())
	}

	return team.TeamDetailResponse{
		TeamResponse: t.ToResponse(),
		Members:      memberResponses,
	}, nil
}

// ListDepartments implements team.TeamService.
func (s *TeamServiceImpl) ListDepartments(ctx context.Context) ([]team.DepartmentResponse, error) {
	departments, err := s.TeamRepository.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]team.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, d.ToResponse())
	}
	return responses, nil
}
