package employee

import (
	"github.com/shopspring/decimal"

	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
	"github.com/blubridge/hrms-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID                        string   `json:"id"`
	EmpID                     string   `json:"emp_id"`
	Name                      string   `json:"name"`
	Email                     string   `json:"email"`
	Phone                     *string  `json:"phone,omitempty"`
	Department                string   `json:"department"`
	Team                      string   `json:"team"`
	Designation               string   `json:"designation"`
	JoinDate                  *string  `json:"join_date,omitempty"`
	Status                    string   `json:"status"`
	Avatar                    *string  `json:"avatar,omitempty"`
	Stars                     int      `json:"stars"`
	UnsafeCount               int      `json:"unsafe_count"`
	ShiftType                 string   `json:"shift_type"`
	CustomLoginTime           *string  `json:"custom_login_time,omitempty"`
	CustomLogoutTime          *string  `json:"custom_logout_time,omitempty"`
	CustomTotalHours          *float64 `json:"custom_total_hours,omitempty"`
	MonthlySalary             string   `json:"monthly_salary"`
	AttendanceTrackingEnabled bool     `json:"attendance_tracking_enabled"`
	CreatedAt                 string   `json:"created_at"`
}

func (e *Employee) ToResponse() EmployeeResponse {
	resp := EmployeeResponse{
		ID:                        e.ID,
		EmpID:                     e.EmpID,
		Name:                      e.Name,
		Email:                     e.Email,
		Phone:                     e.Phone,
		Department:                e.Department,
		Team:                      e.Team,
		Designation:               e.Designation,
		Status:                    string(e.Status),
		Avatar:                    e.Avatar,
		Stars:                     e.Stars,
		UnsafeCount:               e.UnsafeCount,
		ShiftType:                 e.ShiftType,
		CustomLoginTime:           e.CustomLoginTime,
		CustomLogoutTime:          e.CustomLogoutTime,
		CustomTotalHours:          e.CustomTotalHours,
		MonthlySalary:             e.MonthlySalary.StringFixed(2),
		AttendanceTrackingEnabled: e.AttendanceTrackingEnabled,
		CreatedAt:                 e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if e.JoinDate != nil {
		joined := e.JoinDate.Format("2006-01-02")
		resp.JoinDate = &joined
	}
	return resp
}

type CreateEmployeeRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone,omitempty"`
	Department    string  `json:"department"`
	Team          string  `json:"team"`
	Designation   string  `json:"designation"`
	JoinDate      *string `json:"join_date,omitempty"` // YYYY-MM-DD
	MonthlySalary *string `json:"monthly_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if validator.IsEmpty(r.Team) {
		errs = append(errs, validator.ValidationError{
			Field:   "team",
			Message: "team is required",
		})
	}
	if r.JoinDate != nil && *r.JoinDate != "" {
		if _, valid := validator.IsValidDate(*r.JoinDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.MonthlySalary != nil && *r.MonthlySalary != "" {
		if salary, err := decimal.NewFromString(*r.MonthlySalary); err != nil || salary.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "monthly_salary",
				Message: "monthly_salary must be a non-negative number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Department  *string `json:"department,omitempty"`
	Team        *string `json:"team,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Status      *string `json:"status,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
	TrackingOn  *bool   `json:"attendance_tracking_enabled,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}
	if r.Status != nil {
		validStatuses := []string{string(StatusActive), string(StatusInactive)}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, inactive",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID               string   `json:"-"`
	ShiftType        string   `json:"shift_type"`
	CustomLoginTime  *string  `json:"custom_login_time,omitempty"`
	CustomLogoutTime *string  `json:"custom_logout_time,omitempty"`
	CustomTotalHours *float64 `json:"-"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftType) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type is required",
		})
	}
	if r.ShiftType == shift.TypeCustom {
		if r.CustomLoginTime == nil || r.CustomLogoutTime == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_type",
				Message: "custom shift requires custom_login_time and custom_logout_time",
			})
		} else {
			if !validator.IsValidClockTime(*r.CustomLoginTime) {
				errs = append(errs, validator.ValidationError{
					Field:   "custom_login_time",
					Message: "custom_login_time must be in HH:MM format",
				})
			}
			if !validator.IsValidClockTime(*r.CustomLogoutTime) {
				errs = append(errs, validator.ValidationError{
					Field:   "custom_logout_time",
					Message: "custom_logout_time must be in HH:MM format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRequest struct {
	ID            string `json:"-"`
	MonthlySalary string `json:"monthly_salary"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MonthlySalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary is required",
		})
	} else if salary, err := decimal.NewFromString(r.MonthlySalary); err != nil || salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Department *string `json:"department,omitempty"`
	Team       *string `json:"team,omitempty"`
	Status     *string `json:"status,omitempty"`
	Search     *string `json:"search,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}
	if f.Status != nil {
		validStatuses := []string{string(StatusActive), string(StatusInactive)}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, inactive",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
