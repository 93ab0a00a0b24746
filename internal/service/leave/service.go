package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/blubridge/hrms-backend-go/internal/domain/audit"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	auditService audit.AuditService
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	auditService audit.AuditService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
		auditService:       auditService,
	}
}

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	days := int(end.Sub(start).Hours()/24) + 1

	newLeave := leave.Leave{
		EmployeeID: emp.ID,
		EmpName:    emp.Name,
		Team:       emp.Team,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Duration:   fmt.Sprintf("%d day(s)", days),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.LeaveRepository.Create(ctx, newLeave)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionCreate, "leave", &created.ID, nil)
	return created.ToResponse(), nil
}

// ApproveLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, leave.StatusApproved, audit.ActionApprove)
}

// RejectLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, leave.StatusRejected, audit.ActionReject)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, id string, status leave.Status, action string) (leave.LeaveResponse, error) {
	decidedBy := usernameFromClaims(ctx)

	decided, err := s.LeaveRepository.Decide(ctx, id, status, decidedBy)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.auditService.Record(ctx, action, "leave", &decided.ID, nil)
	return decided.ToResponse(), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	leaves, totalCount, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, l.ToResponse())
	}

	return leave.ListLeaveResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(filter.Limit))),
		Leaves:     responses,
	}, nil
}

func usernameFromClaims(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "system"
	}
	if username, ok := claims["username"].(string); ok && username != "" {
		return username
	}
	return "system"
}
