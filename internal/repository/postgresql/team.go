package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/blubridge/hrms-backend-go/internal/domain/team"
	"github.com/blubridge/hrms-backend-go/internal/pkg/database"
)

type teamRepository struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepository{db: db}
}

const teamSelect = `
	SELECT t.id, t.name, t.department, t.lead_id, e.name,
	       (SELECT COUNT(*) FROM employees m WHERE m.team = t.name AND m.status = 'active'),
	       t.created_at
	FROM teams t
	LEFT JOIN employees e ON e.id = t.lead_id
`

func scanTeam(row pgx.Row) (team.Team, error) {
	var t team.Team
	err := row.Scan(&t.ID, &t.Name, &t.Department, &t.LeadID, &t.LeadName, &t.MemberCount, &t.CreatedAt)
	return t, err
}

// GetByID implements team.TeamRepository.
func (r *teamRepository) GetByID(ctx context.Context, id string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTeam(q.QueryRow(ctx, teamSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, fmt.Errorf("failed to get team: %w", err)
	}
	return t, nil
}

// GetByName implements team.TeamRepository.
func (r *teamRepository) GetByName(ctx context.Context, name string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTeam(q.QueryRow(ctx, teamSelect+` WHERE t.name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, fmt.Errorf("failed to get team by name: %w", err)
	}
	return t, nil
}

// List implements team.TeamRepository.
func (r *teamRepository) List(ctx context.Context, department *string) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := teamSelect
	args := []interface{}{}
	if department != nil && *department != "" {
		query += ` WHERE t.department = $1`
		args = append(args, *department)
	}
	query += ` ORDER BY t.name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}

// ListDepartments implements team.TeamRepository.
func (r *teamRepository) ListDepartments(ctx context.Context) ([]team.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.head_id, e.name,
		       (SELECT COUNT(*) FROM teams t WHERE t.department = d.name),
		       d.created_at
		FROM departments d
		LEFT JOIN employees e ON e.id = d.head_id
		ORDER BY d.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []team.Department
	for rows.Next() {
		var d team.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.HeadID, &d.HeadName, &d.TeamCount, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}

// Create implements team.TeamRepository.
func (r *teamRepository) Create(ctx context.Context, newTeam team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	if newTeam.ID == "" {
		newTeam.ID = uuid.New().String()
	}

	query := `
		INSERT INTO teams (id, name, department, lead_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, newTeam.ID, newTeam.Name, newTeam.Department, newTeam.LeadID).Scan(&newTeam.CreatedAt)
	if err != nil {
		return team.Team{}, fmt.Errorf("failed to create team: %w", err)
	}
	return newTeam, nil
}

// CreateDepartment implements team.TeamRepository.
func (r *teamRepository) CreateDepartment(ctx context.Context, newDepartment team.Department) (team.Department, error) {
	q := GetQuerier(ctx, r.db)

	if newDepartment.ID == "" {
		newDepartment.ID = uuid.New().String()
	}

	query := `
		INSERT INTO departments (id, name, head_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, newDepartment.ID, newDepartment.Name, newDepartment.HeadID).Scan(&newDepartment.CreatedAt)
	if err != nil {
		return team.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return newDepartment, nil
}
