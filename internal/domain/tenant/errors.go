package tenant

import "errors"

var (
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrTenantDomainExists = errors.New("tenant domain already registered")
)
