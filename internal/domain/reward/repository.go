package reward

import (
	"context"

	"github.com/blubridge/hrms-backend-go/internal/pkg/database"
)

type RewardRepository interface {
	// CreateTx inserts the reward inside an existing transaction so the
	// employee star counter moves in the same commit.
	CreateTx(ctx context.Context, q database.Querier, newReward StarReward) (StarReward, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]StarReward, error)
	Leaderboard(ctx context.Context, filter LeaderboardFilter) ([]LeaderboardEntry, error)
}
