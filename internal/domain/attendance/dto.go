package attendance

import (
	"github.com/blubridge/hrms-backend-go/internal/domain/shift"
	"github.com/blubridge/hrms-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmpName        string  `json:"emp_name"`
	Team           string  `json:"team"`
	Date           string  `json:"date"` // DD-MM-YYYY
	CheckIn        *string `json:"check_in,omitempty"`
	CheckOut       *string `json:"check_out,omitempty"`
	TotalHours     string  `json:"total_hours"`
	Status         string  `json:"status"`
	IsLOP          bool    `json:"is_lop"`
	LOPReason      *string `json:"lop_reason,omitempty"`
	ShiftType      *string `json:"shift_type,omitempty"`
	ExpectedLogin  *string `json:"expected_login,omitempty"`
	ExpectedLogout *string `json:"expected_logout,omitempty"`
}

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeName *string `json:"employee_name,omitempty"`
	Team         *string `json:"team,omitempty"`
	Date         *string `json:"date,omitempty"`       // DD-MM-YYYY
	StartDate    *string `json:"start_date,omitempty"` // DD-MM-YYYY
	EndDate      *string `json:"end_date,omitempty"`   // DD-MM-YYYY
	Status       *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, emp_name, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *AttendanceFilter) Validate() error {
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
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{
			string(shift.StatusNotLogged), string(shift.StatusLogin),
			string(shift.StatusPresent), string(shift.StatusLossOfPay),
			string(shift.StatusCompleted), string(shift.StatusLateLogin),
			string(shift.StatusEarlyOut), string(shift.StatusLeave),
			string(shift.StatusNA),
		}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status is not a recognized attendance status",
			})
		}
	}

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDayKey(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in DD-MM-YYYY format",
				})
			}
		}
	}

	if f.SortBy != "" {
		validSortFields := []string{"date", "emp_name", "status"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, emp_name, status",
			})
		}
	} else {
		f.SortBy = "date"
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(f.SortOrder, validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type StatsResponse struct {
	Date      string `json:"date"` // DD-MM-YYYY
	Total     int64  `json:"total"`
	Logged    int64  `json:"logged"`
	NotLogged int64  `json:"not_logged"`
	EarlyOut  int64  `json:"early_out"`
	LateLogin int64  `json:"late_login"`
	Logout    int64  `json:"logout"`
}
