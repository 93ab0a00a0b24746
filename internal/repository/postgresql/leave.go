package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/blubridge/hrms-backend-go/internal/domain/leave"
	"github.com/blubridge/hrms-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, employee_id, emp_name, team, leave_type, start_date, end_date,
	duration, reason, status, approved_by, created_at`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.EmpName, &l.Team, &l.LeaveType, &l.StartDate,
		&l.EndDate, &l.Duration, &l.Reason, &l.Status, &l.ApprovedBy, &l.CreatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	if newLeave.ID == "" {
		newLeave.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leaves (
			id, employee_id, emp_name, team, leave_type, start_date, end_date,
			duration, reason, status, approved_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newLeave.ID, newLeave.EmployeeID, newLeave.EmpName, newLeave.Team,
		newLeave.LeaveType, newLeave.StartDate, newLeave.EndDate,
		newLeave.Duration, newLeave.Reason, newLeave.Status, newLeave.ApprovedBy,
	).Scan(&newLeave.CreatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return newLeave, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE id = $1`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}
	return l, nil
}

// Decide implements leave.LeaveRepository. The update only matches pending
// rows, so a decided request cannot flip again; zero rows affected is
// disambiguated with a follow-up read.
func (r *leaveRepository) Decide(ctx context.Context, id string, status leave.Status, approvedBy string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, approved_by = $2
		WHERE id = $3 AND status = 'pending'
		RETURNING ` + leaveColumns

	l, err := scanLeave(q.QueryRow(ctx, query, status, approvedBy, id))
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.Leave{}, fmt.Errorf("failed to decide leave: %w", err)
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return leave.Leave{}, leave.ErrLeaveAlreadyDecided
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Team != nil && *filter.Team != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("team = $%d", argIdx))
		args = append(args, *filter.Team)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(whereClauses, " AND ")

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM leaves WHERE "+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT "+leaveColumns+" FROM leaves WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leaves: %w", err)
	}

	return leaves, totalCount, nil
}

// ApprovedOverlapping implements leave.LeaveRepository.
func (r *leaveRepository) ApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE employee_id = $1 AND status = 'approved'
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaves: %w", err)
	}

	return leaves, nil
}

// UpcomingApproved implements leave.LeaveRepository.
func (r *leaveRepository) UpcomingApproved(ctx context.Context, from time.Time, limit int) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE status = 'approved' AND start_date >= $1
		ORDER BY start_date ASC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, from, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaves: %w", err)
	}

	return leaves, nil
}

// CountPending implements leave.LeaveRepository.
func (r *leaveRepository) CountPending(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leaves WHERE status = 'pending'`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return count, nil
}
