package employee

import "context"

// EmployeeService defines business logic for employee master data
type EmployeeService interface {
	// CreateEmployee creates a new employee with the next EMP#### code (admin/hr only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists employees with filters
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// UpdateEmployee updates master data fields (admin/hr only)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// UpdateShift assigns a shift; Custom shifts get their hours computed here (admin/hr only)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (EmployeeResponse, error)

	// UpdateSalary sets the monthly salary (admin/hr only)
	UpdateSalary(ctx context.Context, req UpdateSalaryRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee (admin only)
	DeleteEmployee(ctx context.Context, id string) error
}
