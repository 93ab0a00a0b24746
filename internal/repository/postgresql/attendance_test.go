package postgresql_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
	"github.com/blubridge/hrms-backend-go/internal/repository/postgresql"
)

func checkInRecord(employeeID string, day time.Time) attendance.Attendance {
	checkIn := day.Add(10 * time.Hour)
	login := "10:00"
	logout := "21:00"
	shiftType := "General"
	return attendance.Attendance{
		EmployeeID:     employeeID,
		EmpName:        "Aarav Sharma",
		Team:           "Platform",
		Date:           day,
		CheckIn:        &checkIn,
		Status:         shift.StatusLogin,
		ShiftType:      &shiftType,
		ExpectedLogin:  &login,
		ExpectedLogout: &logout,
	}
}

func countAttendanceRows(t *testing.T, employeeID string, day time.Time) int64 {
	t.Helper()
	var count int64
	err := testDB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM attendance WHERE employee_id = $1 AND date = $2",
		employeeID, day,
	).Scan(&count)
	require.NoError(t, err)
	return count
}

func TestAttendanceRepository_CreateCheckIn_SecondSameDayConflicts(t *testing.T) {
	db := newTestDatabase(t)
	repo := postgresql.NewAttendanceRepository(db)

	ctx := context.Background()
	day := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	created, err := repo.CreateCheckIn(ctx, checkInRecord("emp-1", day))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.CreateCheckIn(ctx, checkInRecord("emp-1", day))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	assert.Equal(t, int64(1), countAttendanceRows(t, "emp-1", day))
}

func TestAttendanceRepository_CreateCheckIn_ConcurrentSameDay(t *testing.T) {
	db := newTestDatabase(t)
	repo := postgresql.NewAttendanceRepository(db)

	ctx := context.Background()
	day := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.CreateCheckIn(ctx, checkInRecord("emp-1", day))
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, attendance.ErrAlreadyCheckedIn):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)

	assert.Equal(t, int64(1), countAttendanceRows(t, "emp-1", day))
}

func TestAttendanceRepository_CompleteCheckOut(t *testing.T) {
	db := newTestDatabase(t)
	repo := postgresql.NewAttendanceRepository(db)

	ctx := context.Background()
	day := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

	created, err := repo.CreateCheckIn(ctx, checkInRecord("emp-1", day))
	require.NoError(t, err)

	checkOut := day.Add(21 * time.Hour)
	completed, err := repo.CompleteCheckOut(ctx, created.ID, checkOut, 660, shift.StatusPresent, false, nil)
	require.NoError(t, err)
	require.NotNil(t, completed.CheckOut)
	assert.True(t, completed.CheckOut.Equal(checkOut))
	require.NotNil(t, completed.TotalMinutes)
	assert.Equal(t, 660, *completed.TotalMinutes)
	assert.Equal(t, shift.StatusPresent, completed.Status)

	_, err = repo.CompleteCheckOut(ctx, created.ID, checkOut.Add(time.Hour), 720, shift.StatusPresent, false, nil)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.TotalMinutes)
	assert.Equal(t, 660, *fetched.TotalMinutes)
}

func TestAttendanceRepository_CompleteCheckOut_MissingRow(t *testing.T) {
	db := newTestDatabase(t)
	repo := postgresql.NewAttendanceRepository(db)

	checkOut := time.Date(2025, 9, 10, 21, 0, 0, 0, time.UTC)
	_, err := repo.CompleteCheckOut(context.Background(), "missing-id", checkOut, 660, shift.StatusPresent, false, nil)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}
