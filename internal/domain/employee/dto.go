package employee

import "github.com/bambooclone/hr-backend-go/internal/pkg/validator"

var employmentTypes = []string{
	string(EmploymentTypeFullTime),
	string(EmploymentTypePartTime),
	string(EmploymentTypeContract),
	string(EmploymentTypeInternship),
}

type CreateEmployeeRequest struct {
	EmployeeCode   string  `json:"employee_id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	DateOfJoining  *string `json:"date_of_joining,omitempty"`
	ReportingTo    *string `json:"reporting_to,omitempty"`
	EmploymentType string  `json:"employment_type,omitempty"`
	Status         string  `json:"status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EmploymentType != "" && !validator.IsInSlice(r.EmploymentType, employmentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type is not recognized",
		})
	}

	if r.Status != "" && r.Status != string(StatusActive) && r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'active' or 'inactive'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName       *string `json:"full_name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	DepartmentID   *string `json:"department_id,omitempty"`
	Designation    *string `json:"designation,omitempty"`
	DateOfJoining  *string `json:"date_of_joining,omitempty"`
	ReportingTo    *string `json:"reporting_to,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, employmentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type is not recognized",
		})
	}

	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'active' or 'inactive'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows employee listings.
type ListFilter struct {
	Status       *string
	DepartmentID *string
	Search       *string
}
