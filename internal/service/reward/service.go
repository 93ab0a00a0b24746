package reward

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/blubridge/hrms-backend-go/internal/domain/audit"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/reward"
	"github.com/blubridge/hrms-backend-go/internal/pkg/database"
	"github.com/blubridge/hrms-backend-go/internal/repository/postgresql"
)

type RewardServiceImpl struct {
	db *database.DB
	reward.RewardRepository
	employee.EmployeeRepository
	location     *time.Location
	auditService audit.AuditService
}

func NewRewardService(
	db *database.DB,
	rewardRepo reward.RewardRepository,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
	auditService audit.AuditService,
) reward.RewardService {
	return &RewardServiceImpl{
		db:                 db,
		RewardRepository:   rewardRepo,
		EmployeeRepository: employeeRepo,
		location:           location,
		auditService:       auditService,
	}
}

// Award implements reward.RewardService. The reward row and the employee's
// star counter move in one transaction.
func (s *RewardServiceImpl) Award(ctx context.Context, req reward.AwardRequest) (reward.RewardResponse, error) {
	if err := req.Validate(); err != nil {
		return reward.RewardResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return reward.RewardResponse{}, err
	}

	newReward := reward.StarReward{
		EmployeeID: emp.ID,
		EmpName:    emp.Name,
		Team:       emp.Team,
		Stars:      req.Stars,
		Reason:     req.Reason,
		AwardedBy:  s.awardedBy(ctx),
		Month:      time.Now().In(s.location).Format("2006-01"),
	}

	var created reward.StarReward
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context, tx pgx.Tx) error {
		var txErr error
		created, txErr = s.RewardRepository.CreateTx(txCtx, tx, newReward)
		if txErr != nil {
			return txErr
		}
		return s.EmployeeRepository.AddStars(txCtx, emp.ID, req.Stars)
	})
	if err != nil {
		return reward.RewardResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionAward, "star_reward", &created.ID, nil)
	return created.ToResponse(), nil
}

// History implements reward.RewardService.
func (s *RewardServiceImpl) History(ctx context.Context, employeeID string) ([]reward.RewardResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	rewards, err := s.RewardRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]reward.RewardResponse, 0, len(rewards))
	for _, r := range rewards {
		responses = append(responses, r.ToResponse())
	}
	return responses, nil
}

// Leaderboard implements reward.RewardService.
func (s *RewardServiceImpl) Leaderboard(ctx context.Context, filter reward.LeaderboardFilter) ([]reward.LeaderboardEntry, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.RewardRepository.Leaderboard(ctx, filter)
}

func (s *RewardServiceImpl) awardedBy(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "system"
	}
	if username, ok := claims["username"].(string); ok && username != "" {
		return username
	}
	return "system"
}
