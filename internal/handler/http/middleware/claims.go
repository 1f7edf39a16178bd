package middleware

import (
	"net/http"

	"github.com/bambooclone/hr-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// Session is the caller's identity as carried in the access token.
type Session struct {
	UserID     string
	Email      string
	TenantID   *string
	EmployeeID *string
	Role       user.Role
}

// SessionFromRequest extracts the identity claims of the verified token.
// AuthRequired must run first.
func SessionFromRequest(r *http.Request) (Session, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Session{}, err
	}

	s := Session{}
	if v, ok := claims["user_id"].(string); ok {
		s.UserID = v
	}
	if v, ok := claims["email"].(string); ok {
		s.Email = v
	}
	if v, ok := claims["tenant_id"].(string); ok && v != "" {
		s.TenantID = &v
	}
	if v, ok := claims["employee_id"].(string); ok && v != "" {
		s.EmployeeID = &v
	}
	if v, ok := claims["role"].(string); ok {
		s.Role = user.Role(v)
	}

	return s, nil
}
