package http

import (
	"net/http"

	"github.com/bambooclone/hr-backend-go/internal/domain/auth"
	"github.com/bambooclone/hr-backend-go/internal/domain/user"
	"github.com/bambooclone/hr-backend-go/internal/handler/http/middleware"
)

func sessionFromRequest(r *http.Request) (middleware.Session, error) {
	s, err := middleware.SessionFromRequest(r)
	if err != nil {
		return middleware.Session{}, auth.ErrInvalidToken
	}
	return s, nil
}

// tenantFromRequest resolves the caller's tenant scope. Every tenant-scoped
// route requires the claim; the platform operator has no tenant of its own.
func tenantFromRequest(r *http.Request) (string, error) {
	s, err := sessionFromRequest(r)
	if err != nil {
		return "", err
	}
	if s.TenantID == nil {
		return "", user.ErrTenantClaimRequired
	}
	return *s.TenantID, nil
}

// employeeFromRequest resolves the caller's own employee record, required by
// the self-service endpoints.
func employeeFromRequest(r *http.Request) (string, error) {
	s, err := sessionFromRequest(r)
	if err != nil {
		return "", err
	}
	if s.EmployeeID == nil {
		return "", user.ErrEmployeeClaimRequired
	}
	return *s.EmployeeID, nil
}
