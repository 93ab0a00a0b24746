package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
	"github.com/blubridge/hrms-backend-go/internal/domain/team"
	"github.com/blubridge/hrms-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seeder loads the demo dataset into an empty database.
type Seeder interface {
	Seed(ctx context.Context, now time.Time) (string, error)
}

type SeederImpl struct {
	user.UserRepository
	team.TeamRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	catalog  *shift.Catalog
	location *time.Location
}

func NewSeeder(
	userRepository user.UserRepository,
	teamRepository team.TeamRepository,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	catalog *shift.Catalog,
	location *time.Location,
) Seeder {
	return &SeederImpl{
		UserRepository:       userRepository,
		TeamRepository:       teamRepository,
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
		catalog:              catalog,
		location:             location,
	}
}

var departmentNames = []string{"Research Unit", "Support Staff", "Business & Product"}

var teamSeeds = []struct {
	Name       string
	Department string
}{
	{"Compiler - Auto Differentiation", "Research Unit"},
	{"Compiler - Computation Graph", "Research Unit"},
	{"Data", "Research Unit"},
	{"Framework - Graph & Auto-differentiation", "Research Unit"},
	{"Framework - parallelism", "Research Unit"},
	{"Framework - Tensor & Ops", "Research Unit"},
	{"Framework - Quantz", "Research Unit"},
	{"Tokenizer", "Research Unit"},
	{"Administration", "Support Staff"},
}

var employeeSeeds = []struct {
	Name        string
	Email       string
	Team        string
	Stars       int
	UnsafeCount int
}{
	{"Adhitya Charan", "adhitya.blubridge@evoplus.in", "Framework - parallelism", -11, 3},
	{"Adwaid Suresh", "suresh.blubridge@evoplus.in", "Compiler - Auto Differentiation", -2, 0},
	{"Amarnath V S", "amarnath.blubridge@evoplus.in", "Framework - Quantz", -5, 2},
	{"Anuj Kumar", "anuj.blubridge@evoplus.in", "Framework - parallelism", -11, 3},
	{"Aravind P", "aravind.blubridge@evoplus.in", "Tokenizer", -5, 2},
	{"Aravind S", "aravinds.blubridge@evoplus.in", "Compiler - Auto Differentiation", -5, 2},
	{"Chaithanya", "chaithanya.blubridge@evoplus.in", "Data", 0, 0},
	{"Dinesh", "dinesh.blubridge@evoplus.in", "Framework - parallelism", 2, 0},
	{"Gowtham", "gowtham.blubridge@evoplus.in", "Data", 5, 0},
	{"Gowthamkumar", "gowthamkumar.blubridge@evoplus.in", "Framework - Tensor & Ops", 3, 0},
	{"Grishma", "grishma.blubridge@evoplus.in", "Framework - Graph & Auto-differentiation", 1, 0},
	{"Hamza", "hamza.blubridge@evoplus.in", "Administration", 0, 0},
	{"Harshini", "harshini.blubridge@evoplus.in", "Compiler - Auto Differentiation", 2, 0},
	{"Jenifa", "jenifa.blubridge@evoplus.in", "Compiler - Auto Differentiation", 4, 0},
	{"Jona", "jona.blubridge@evoplus.in", "Compiler - Auto Differentiation", 1, 0},
	{"Kota", "kota.blubridge@evoplus.in", "Framework - Tensor & Ops", -3, 1},
	{"Pragathi V", "pragathi.blubridge@evoplus.in", "Administration", 0, 0},
	{"Suresh", "suresh2.blubridge@evoplus.in", "Compiler - Auto Differentiation", 2, 0},
}

// Seed implements Seeder.
func (s *SeederImpl) Seed(ctx context.Context, now time.Time) (string, error) {
	exists, err := s.UserRepository.ExistsByUsername(ctx, "admin")
	if err != nil {
		return "", fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		return "Database already seeded", nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin password: %w", err)
	}

	adminDepartment := "Administration"
	_, err = s.UserRepository.Create(ctx, user.User{
		Username:     "admin",
		Email:        "admin@blubridge.com",
		PasswordHash: string(hash),
		Name:         "System Admin",
		Role:         user.RoleAdmin,
		Department:   &adminDepartment,
		IsActive:     true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create admin user: %w", err)
	}

	for _, name := range departmentNames {
		if _, err := s.TeamRepository.CreateDepartment(ctx, team.Department{Name: name}); err != nil {
			return "", fmt.Errorf("failed to create department %q: %w", name, err)
		}
	}

	for _, t := range teamSeeds {
		if _, err := s.TeamRepository.Create(ctx, team.Team{Name: t.Name, Department: t.Department}); err != nil {
			return "", fmt.Errorf("failed to create team %q: %w", t.Name, err)
		}
	}

	joinDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	created := make([]employee.Employee, 0, len(employeeSeeds))
	for i, e := range employeeSeeds {
		department := "Research Unit"
		if e.Team == "Administration" {
			department = "Support Staff"
		}

		emp, err := s.EmployeeRepository.Create(ctx, employee.Employee{
			EmpID:                     fmt.Sprintf("EMP%04d", i+1),
			Name:                      e.Name,
			Email:                     e.Email,
			Department:                department,
			Team:                      e.Team,
			Designation:               "Software Engineer",
			JoinDate:                  &joinDate,
			Status:                    employee.StatusActive,
			Stars:                     e.Stars,
			UnsafeCount:               e.UnsafeCount,
			ShiftType:                 shift.TypeGeneral,
			MonthlySalary:             decimal.Zero,
			AttendanceTrackingEnabled: true,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create employee %q: %w", e.Name, err)
		}
		created = append(created, emp)
	}

	if err := s.seedAttendance(ctx, created, now); err != nil {
		return "", err
	}

	return "Database seeded successfully", nil
}

// seedAttendance writes an open check-in for the first 15 employees so the
// dashboard has data on a fresh install. Check-in times are staggered
// deterministically between 08:00 and 10:59.
func (s *SeederImpl) seedAttendance(ctx context.Context, employees []employee.Employee, now time.Time) error {
	local := now.In(s.location)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	general, _ := s.catalog.Get(shift.TypeGeneral)

	count := len(employees)
	if count > 15 {
		count = 15
	}

	for i := 0; i < count; i++ {
		emp := employees[i]
		checkIn := time.Date(local.Year(), local.Month(), local.Day(), 8+i%3, (i*7)%60, 0, 0, s.location).UTC()

		shiftType := emp.ShiftType
		_, err := s.AttendanceRepository.CreateCheckIn(ctx, attendance.Attendance{
			EmployeeID:     emp.ID,
			EmpName:        emp.Name,
			Team:           emp.Team,
			Date:           day,
			CheckIn:        &checkIn,
			Status:         shift.StatusLogin,
			ShiftType:      &shiftType,
			ExpectedLogin:  general.LoginTime,
			ExpectedLogout: general.LogoutTime,
		})
		if err != nil {
			return fmt.Errorf("failed to seed attendance for %q: %w", emp.Name, err)
		}
	}

	return nil
}
