package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmpID(ctx context.Context, empID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	NextEmpID(ctx context.Context) (string, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	UpdateShift(ctx context.Context, req UpdateShiftRequest) error
	UpdateSalary(ctx context.Context, id string, salary decimal.Decimal) error
	AddStars(ctx context.Context, id string, delta int) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListActive(ctx context.Context, department *string) ([]Employee, error)
}
