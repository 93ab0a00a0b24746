package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrLeaveAlreadyDecided  = errors.New("leave request already approved or rejected")
	ErrInvalidLeaveInterval = errors.New("end_date must not be before start_date")
)
