package response

import (
	"errors"
	"net/http"

	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/auth"
	"github.com/blubridge/hrms-backend-go/internal/domain/employee"
	"github.com/blubridge/hrms-backend-go/internal/domain/leave"
	"github.com/blubridge/hrms-backend-go/internal/domain/payroll"
	"github.com/blubridge/hrms-backend-go/internal/domain/reward"
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
	"github.com/blubridge/hrms-backend-go/internal/domain/team"
	"github.com/blubridge/hrms-backend-go/internal/domain/user"
	"github.com/blubridge/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var parseErr *shift.ParseError
	if errors.As(err, &parseErr) {
		BadRequest(w, parseErr.Error(), nil)
		return
	}

	// Auth and user domain errors
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrUnauthorized):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmpIDExists):
		Conflict(w, "Employee code already assigned")
	case errors.Is(err, employee.ErrTrackingDisabled):
		Forbidden(w, "Attendance tracking is disabled for this employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open check-in found for today")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyDecided):
		Conflict(w, "Leave request already decided")
	case errors.Is(err, leave.ErrInvalidLeaveInterval):
		BadRequest(w, "Leave end date must not be before start date", nil)

	// Reward domain errors
	case errors.Is(err, reward.ErrRewardNotFound):
		NotFound(w, "Reward not found")
	case errors.Is(err, reward.ErrZeroStars):
		BadRequest(w, "Stars must be a positive number", nil)

	// Team domain errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Shift and payroll domain errors
	case errors.Is(err, shift.ErrUnknownShiftType):
		BadRequest(w, "Unknown shift type", nil)
	case errors.Is(err, shift.ErrMissingCustomTimes):
		BadRequest(w, "Custom shift requires both start and end times", nil)
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
