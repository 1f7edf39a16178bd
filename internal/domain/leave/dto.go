package leave

import "github.com/bambooclone/hr-backend-go/internal/pkg/validator"

type CreateLeaveTypeRequest struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	DaysAllowed  int    `json:"days_allowed"`
	CarryForward bool   `json:"carry_forward"`
	Encashable   bool   `json:"encashable"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 1-20 characters of letters, digits, '-' or '_'",
		})
	}

	if r.DaysAllowed <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_allowed",
			Message: "days_allowed must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveTypeRequest struct {
	Name         *string `json:"name,omitempty"`
	DaysAllowed  *int    `json:"days_allowed,omitempty"`
	CarryForward *bool   `json:"carry_forward,omitempty"`
	Encashable   *bool   `json:"encashable,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.DaysAllowed != nil && *r.DaysAllowed <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_allowed",
			Message: "days_allowed must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateLeaveRequestRequest struct {
	EmployeeID  string  `json:"-"`
	LeaveTypeID string  `json:"leave_type_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RequestFilter narrows leave request listings.
type RequestFilter struct {
	EmployeeID *string
	Status     *string
}
