package leave

import "errors"

var (
	ErrLeaveTypeNotFound            = errors.New("leave type not found")
	ErrLeaveTypeCodeExists          = errors.New("leave type code already exists")
	ErrLeaveTypeInUse               = errors.New("leave type still referenced by leave requests")
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInsufficientQuota            = errors.New("insufficient leave quota")
)
