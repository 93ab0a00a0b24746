package employee

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blubridge/hrms-backend-go/internal/domain/audit"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	catalog      *shift.Catalog
	auditService audit.AuditService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	catalog *shift.Catalog,
	auditService audit.AuditService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		catalog:            catalog,
		auditService:       auditService,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.EmployeeRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	empID, err := s.EmployeeRepository.NextEmpID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		EmpID:                     empID,
		Name:                      req.Name,
		Email:                     req.Email,
		Phone:                     req.Phone,
		Department:                req.Department,
		Team:                      req.Team,
		Designation:               req.Designation,
		Status:                    employee.StatusActive,
		ShiftType:                 shift.TypeGeneral,
		MonthlySalary:             decimal.Zero,
		AttendanceTrackingEnabled: true,
	}
	if req.JoinDate != nil && *req.JoinDate != "" {
		joinDate, _ := time.Parse("2006-01-02", *req.JoinDate)
		newEmployee.JoinDate = &joinDate
	}
	if req.MonthlySalary != nil && *req.MonthlySalary != "" {
		salary, _ := decimal.NewFromString(*req.MonthlySalary)
		newEmployee.MonthlySalary = salary
	}

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionCreate, "employee", &created.ID, nil)
	return created.ToResponse(), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, totalCount, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, emp.ToResponse())
	}

	return employee.ListEmployeeResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionUpdate, "employee", &req.ID, nil)
	return s.GetEmployee(ctx, req.ID)
}

// UpdateShift implements employee.EmployeeService. A Custom shift gets its
// total hours computed once, here, from the submitted times; switching to a
// named shift clears the custom fields.
func (s *EmployeeServiceImpl) UpdateShift(ctx context.Context, req employee.UpdateShiftRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ShiftType == shift.TypeCustom {
		loginMin, err := shift.MinutesOfDay(*req.CustomLoginTime)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		logoutMin, err := shift.MinutesOfDay(*req.CustomLogoutTime)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		hours := float64(shift.SpanMinutes(loginMin, logoutMin)) / 60
		req.CustomTotalHours = &hours
	} else {
		req.CustomLoginTime = nil
		req.CustomLogoutTime = nil
		req.CustomTotalHours = nil
	}

	if err := s.EmployeeRepository.UpdateShift(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	details := "shift_type=" + req.ShiftType
	s.auditService.Record(ctx, audit.ActionUpdate, "employee_shift", &req.ID, &details)
	return s.GetEmployee(ctx, req.ID)
}

// UpdateSalary implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateSalary(ctx context.Context, req employee.UpdateSalaryRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	salary, err := decimal.NewFromString(req.MonthlySalary)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse salary: %w", err)
	}

	if err := s.EmployeeRepository.UpdateSalary(ctx, req.ID, salary); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditService.Record(ctx, audit.ActionUpdate, "employee_salary", &req.ID, nil)
	return s.GetEmployee(ctx, req.ID)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.auditService.Record(ctx, audit.ActionDelete, "employee", &id, nil)
	return nil
}
