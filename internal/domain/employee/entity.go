package employee

import "time"

type Employee struct {
	ID             string         `json:"id"`
	TenantID       string         `json:"tenant_id"`
	EmployeeCode   string         `json:"employee_id"`
	FullName       string         `json:"full_name"`
	Email          string         `json:"email"`
	Phone          *string        `json:"phone,omitempty"`
	DepartmentID   *string        `json:"department_id,omitempty"`
	Designation    *string        `json:"designation,omitempty"`
	DateOfJoining  *time.Time     `json:"date_of_joining,omitempty"`
	ReportingTo    *string        `json:"reporting_to,omitempty"`
	EmploymentType EmploymentType `json:"employment_type"`
	Status         Status         `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Join
	DepartmentName *string `json:"department_name,omitempty"`
}

type EmploymentType string

const (
	EmploymentTypeFullTime   EmploymentType = "full-time"
	EmploymentTypePartTime   EmploymentType = "part-time"
	EmploymentTypeContract   EmploymentType = "contract"
	EmploymentTypeInternship EmploymentType = "internship"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
