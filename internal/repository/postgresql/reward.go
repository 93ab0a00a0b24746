package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/blubridge/hrms-backend-go/internal/domain/reward"
	"github.com/blubridge/hrms-backend-go/internal/pkg/database"
)

type rewardRepository struct {
	db *database.DB
}

func NewRewardRepository(db *database.DB) reward.RewardRepository {
	return &rewardRepository{db: db}
}

// CreateTx implements reward.RewardRepository.
func (r *rewardRepository) CreateTx(ctx context.Context, q database.Querier, newReward reward.StarReward) (reward.StarReward, error) {
	if newReward.ID == "" {
		newReward.ID = uuid.New().String()
	}

	query := `
		INSERT INTO star_rewards (id, employee_id, emp_name, team, stars, reason, awarded_by, month)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newReward.ID, newReward.EmployeeID, newReward.EmpName, newReward.Team,
		newReward.Stars, newReward.Reason, newReward.AwardedBy, newReward.Month,
	).Scan(&newReward.CreatedAt)
	if err != nil {
		return reward.StarReward{}, fmt.Errorf("failed to create star reward: %w", err)
	}

	return newReward, nil
}

// ListByEmployee implements reward.RewardRepository.
func (r *rewardRepository) ListByEmployee(ctx context.Context, employeeID string) ([]reward.StarReward, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, emp_name, team, stars, reason, awarded_by, month, created_at
		FROM star_rewards
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list star rewards: %w", err)
	}
	defer rows.Close()

	var rewards []reward.StarReward
	for rows.Next() {
		var sr reward.StarReward
		if err := rows.Scan(
			&sr.ID, &sr.EmployeeID, &sr.EmpName, &sr.Team, &sr.Stars,
			&sr.Reason, &sr.AwardedBy, &sr.Month, &sr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan star reward: %w", err)
		}
		rewards = append(rewards, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate star rewards: %w", err)
	}

	return rewards, nil
}

// Leaderboard implements reward.RewardRepository. Rank is dense over the
// current star counters on the employee rows.
func (r *rewardRepository) Leaderboard(ctx context.Context, filter reward.LeaderboardFilter) ([]reward.LeaderboardEntry, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"status = 'active'"}
	args := []interface{}{}
	argIdx := 1

	if filter.Team != nil && *filter.Team != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("team = $%d", argIdx))
		args = append(args, *filter.Team)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(name ILIKE $%d OR emp_id ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, emp_id, name, team, department, stars,
		       DENSE_RANK() OVER (ORDER BY stars DESC) AS rank
		FROM employees
		WHERE %s
		ORDER BY stars DESC, emp_id ASC
		LIMIT $%d
	`, strings.Join(whereClauses, " AND "), argIdx)
	args = append(args, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []reward.LeaderboardEntry
	for rows.Next() {
		var e reward.LeaderboardEntry
		if err := rows.Scan(&e.EmployeeID, &e.EmpID, &e.Name, &e.Team, &e.Department, &e.Stars, &e.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard: %w", err)
	}

	return entries, nil
}
