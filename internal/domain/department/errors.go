package department

import "errors"

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentCodeExists = errors.New("department code already exists")
	ErrDepartmentInUse      = errors.New("department still has employees assigned")
)
