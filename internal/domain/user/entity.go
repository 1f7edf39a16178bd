package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super_admin" // Platform operator - full access
	RoleAdmin      Role = "admin"       // Tenant administrator
	RoleHR         Role = "hr"          // HR staff - manages people records
	RoleManager    Role = "manager"     // Can approve leave and timesheets
	RoleEmployee   Role = "employee"    // Regular employee
)

// Roles lists every valid role.
var Roles = []Role{RoleSuperAdmin, RoleAdmin, RoleHR, RoleManager, RoleEmployee}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanApprove checks if the role may resolve leave requests and submitted
// time entries.
func (r Role) CanApprove() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleHR, RoleManager:
		return true
	}
	return false
}

// CanManagePeople checks if the role may manage employees, departments,
// leave types, clients and projects.
func (r Role) CanManagePeople() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleHR:
		return true
	}
	return false
}

// IsSuperAdmin checks if the role manages tenants.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

type User struct {
	ID              string
	TenantID        *string
	Email           string
	PasswordHash    *string
	FullName        string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// CanApprove checks if user can approve requests
func (u *User) CanApprove() bool {
	return u.Role.CanApprove()
}
