package report

import (
	"github.com/blubridge/hrms-backend-go/internal/domain/attendance"
	"github.com/blubridge/hrms-backend-go/internal/domain/leave"
	"github.com/blubridge/hrms-backend-go/internal/pkg/validator"
)

type RangeFilter struct {
	StartDate string  `json:"start_date"` // DD-MM-YYYY
	EndDate   string  `json:"end_date"`   // DD-MM-YYYY
	Team      *string `json:"team,omitempty"`
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDayKey(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in DD-MM-YYYY format",
		})
	}
	end, endOK := validator.IsValidDayKey(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in DD-MM-YYYY format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceReport struct {
	StartDate string                          `json:"start_date"`
	EndDate   string                          `json:"end_date"`
	Team      *string                         `json:"team,omitempty"`
	Total     int64                           `json:"total"`
	ByStatus  map[string]int64                `json:"by_status"`
	Records   []attendance.AttendanceResponse `json:"records"`
}

type LeaveReport struct {
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	Team      *string               `json:"team,omitempty"`
	Total     int64                 `json:"total"`
	ByStatus  map[string]int64      `json:"by_status"`
	Records   []leave.LeaveResponse `json:"records"`
}
