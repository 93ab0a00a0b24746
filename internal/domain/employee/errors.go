package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrEmpIDExists      = errors.New("employee code already assigned")
	ErrTrackingDisabled = errors.New("attendance tracking is disabled for this employee")
)
