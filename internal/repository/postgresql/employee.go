package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, emp_id, name, email, phone, department, team, designation,
	join_date, status, avatar, stars, unsafe_count, shift_type,
	custom_login_time, custom_logout_time, custom_total_hours,
	monthly_salary, attendance_tracking_enabled, created_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmpID, &e.Name, &e.Email, &e.Phone, &e.Department, &e.Team,
		&e.Designation, &e.JoinDate, &e.Status, &e.Avatar, &e.Stars,
		&e.UnsafeCount, &e.ShiftType, &e.CustomLoginTime, &e.CustomLogoutTime,
		&e.CustomTotalHours, &e.MonthlySalary, &e.AttendanceTrackingEnabled,
		&e.CreatedAt,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// GetByEmpID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE emp_id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, empID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (
			id, emp_id, name, email, phone, department, team, designation,
			join_date, status, avatar, stars, unsafe_count, shift_type,
			custom_login_time, custom_logout_time, custom_total_hours,
			monthly_salary, attendance_tracking_enabled
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.EmpID, newEmployee.Name, newEmployee.Email,
		newEmployee.Phone, newEmployee.Department, newEmployee.Team,
		newEmployee.Designation, newEmployee.JoinDate, newEmployee.Status,
		newEmployee.Avatar, newEmployee.Stars, newEmployee.UnsafeCount,
		newEmployee.ShiftType, newEmployee.CustomLoginTime,
		newEmployee.CustomLogoutTime, newEmployee.CustomTotalHours,
		newEmployee.MonthlySalary, newEmployee.AttendanceTrackingEnabled,
	).Scan(&newEmployee.CreatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}
	return exists, nil
}

// NextEmpID returns the next sequential EMP#### code.
func (r *employeeRepository) NextEmpID(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	var maxSeq int
	query := `SELECT COALESCE(MAX(CAST(SUBSTRING(emp_id FROM 4) AS INTEGER)), 0) FROM employees WHERE emp_id ~ '^EMP[0-9]+$'`
	if err := q.QueryRow(ctx, query).Scan(&maxSeq); err != nil {
		return "", fmt.Errorf("failed to compute next employee code: %w", err)
	}
	return fmt.Sprintf("EMP%04d", maxSeq+1), nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Department != nil {
		addSet("department", *req.Department)
	}
	if req.Team != nil {
		addSet("team", *req.Team)
	}
	if req.Designation != nil {
		addSet("designation", *req.Designation)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.Avatar != nil {
		addSet("avatar", *req.Avatar)
	}
	if req.TrackingOn != nil {
		addSet("attendance_tracking_enabled", *req.TrackingOn)
	}

	if len(setClauses) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// UpdateShift implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateShift(ctx context.Context, req employee.UpdateShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET shift_type = $1, custom_login_time = $2, custom_logout_time = $3, custom_total_hours = $4
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		req.ShiftType, req.CustomLoginTime, req.CustomLogoutTime, req.CustomTotalHours, req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// UpdateSalary implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateSalary(ctx context.Context, id string, salary decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET monthly_salary = $1 WHERE id = $2`, salary, id)
	if err != nil {
		return fmt.Errorf("failed to update employee salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// AddStars implements employee.EmployeeRepository.
func (r *employeeRepository) AddStars(ctx context.Context, id string, delta int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET stars = stars + $1 WHERE id = $2`, delta, id)
	if err != nil {
		return fmt.Errorf("failed to update employee stars: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Department != nil && *filter.Department != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *filter.Department)
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
	if filter.Search != nil && *filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(name ILIKE $%d OR emp_id ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	where := strings.Join(whereClauses, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM employees WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT "+employeeColumns+" FROM employees WHERE %s ORDER BY emp_id ASC LIMIT $%d OFFSET $%d",
		where, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, totalCount, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context, department *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status = 'active'`
	args := []interface{}{}
	if department != nil && *department != "" {
		query += ` AND department = $1`
		args = append(args, *department)
	}
	query += ` ORDER BY emp_id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
