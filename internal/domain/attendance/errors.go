package attendance

import "errors"

var (
	ErrAlreadyCheckedIn  = errors.New("already clocked in today")
	ErrNotCheckedIn      = errors.New("not clocked in yet")
	ErrAlreadyCheckedOut = errors.New("already clocked out today")
	ErrRecordNotFound    = errors.New("attendance record not found")
)
