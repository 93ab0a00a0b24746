package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
	"github.com/blubridge/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, emp_name, team, date, check_in, check_out,
	total_minutes, status, is_lop, lop_reason, shift_type,
	expected_login, expected_logout, created_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.EmpName, &a.Team, &a.Date, &a.CheckIn,
		&a.CheckOut, &a.TotalMinutes, &a.Status, &a.IsLOP, &a.LOPReason,
		&a.ShiftType, &a.ExpectedLogin, &a.ExpectedLogout, &a.CreatedAt,
	)
	return a, err
}

// CreateCheckIn implements attendance.AttendanceRepository. The insert is
// conditional on the (employee_id, date) uniqueness so two concurrent
// check-ins produce exactly one row; the loser sees ErrAlreadyCheckedIn.
func (r *attendanceRepository) CreateCheckIn(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance (
			id, employee_id, emp_name, team, date, check_in, status,
			is_lop, lop_reason, shift_type, expected_login, expected_logout
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.EmpName, record.Team, record.Date,
		record.CheckIn, record.Status, record.IsLOP, record.LOPReason,
		record.ShiftType, record.ExpectedLogin, record.ExpectedLogout,
	).Scan(&record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create check-in: %w", err)
	}

	return record, nil
}

// CompleteCheckOut implements attendance.AttendanceRepository. The update only
// matches while check_out is NULL, so a finalized row is never rewritten. Zero
// rows affected is disambiguated with a follow-up read.
func (r *attendanceRepository) CompleteCheckOut(ctx context.Context, id string, checkOut time.Time, totalMinutes int, status shift.Status, isLOP bool, lopReason *string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET check_out = $1, total_minutes = $2, status = $3, is_lop = $4, lop_reason = $5
		WHERE id = $6 AND check_out IS NULL
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query, checkOut, totalMinutes, status, isLOP, lopReason, id))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, fmt.Errorf("failed to complete check-out: %w", err)
	}

	existing, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}
	return attendance.Attendance{}, attendance.ErrNotCheckedIn
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE employee_id = $1 AND date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}
	return a, nil
}

// ListByEmployeeRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("emp_name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.EmployeeName+"%")
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
	if filter.Date != nil && *filter.Date != "" {
		if d, ok := parseDayKey(*filter.Date); ok {
			whereClauses = append(whereClauses, fmt.Sprintf("date = $%d", argIdx))
			args = append(args, d)
			argIdx++
		}
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		if d, ok := parseDayKey(*filter.StartDate); ok {
			whereClauses = append(whereClauses, fmt.Sprintf("date >= $%d", argIdx))
			args = append(args, d)
			argIdx++
		}
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		if d, ok := parseDayKey(*filter.EndDate); ok {
			whereClauses = append(whereClauses, fmt.Sprintf("date <= $%d", argIdx))
			args = append(args, d)
			argIdx++
		}
	}

	where := strings.Join(whereClauses, " AND ")

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM attendance WHERE "+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	sortColumn := map[string]string{
		"date":     "date",
		"emp_name": "emp_name",
		"status":   "status",
	}[filter.SortBy]
	if sortColumn == "" {
		sortColumn = "date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(
		"SELECT "+attendanceColumns+" FROM attendance WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		where, sortColumn, sortOrder, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, totalCount, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByStatus(ctx context.Context, date time.Time, status shift.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`, date, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	return count, nil
}

// CountLogged implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountLogged(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date = $1 AND check_in IS NOT NULL`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count logged attendance: %w", err)
	}
	return count, nil
}

// CountCheckedOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountCheckedOut(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date = $1 AND check_out IS NOT NULL`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count checked-out attendance: %w", err)
	}
	return count, nil
}

func parseDayKey(s string) (time.Time, bool) {
	d, err := time.Parse("02-01-2006", s)
	return d, err == nil
}
