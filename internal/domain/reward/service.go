package reward

import "context"

type RewardService interface {
	// Award records stars and moves the employee counter atomically.
	Award(ctx context.Context, req AwardRequest) (RewardResponse, error)
	History(ctx context.Context, employeeID string) ([]RewardResponse, error)
	Leaderboard(ctx context.Context, filter LeaderboardFilter) ([]LeaderboardEntry, error)
}
