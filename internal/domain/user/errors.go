package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrApproverRoleRequired  = errors.New("approver role required")
	ErrPeopleManagerRequired = errors.New("people management role required")
	ErrSuperAdminRequired    = errors.New("super admin access required")
	ErrEmployeeClaimRequired = errors.New("no employee record linked to this account")
	ErrTenantClaimRequired   = errors.New("no tenant linked to this account")
)
