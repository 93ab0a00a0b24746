package team

import "context"

type TeamRepository interface {
	GetByID(ctx context.Context, id string) (Team, error)
	GetByName(ctx context.Context, name string) (Team, error)
	List(ctx context.Context, department *string) ([]Team, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, newTeam Team) (Team, error)
	CreateDepartment(ctx context.Context, newDepartment Department) (Department, error)
}
