package timesheet

import "github.com/bambooclone/hr-backend-go/internal/pkg/validator"

type CreateClientRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 1-20 characters of letters, digits, '-' or '_'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateProjectRequest struct {
	ClientID    string   `json:"client_id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	BudgetHours *float64 `json:"budget_hours,omitempty"`
	IsBillable  bool     `json:"is_billable"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 1-20 characters of letters, digits, '-' or '_'",
		})
	}

	if r.BudgetHours != nil && *r.BudgetHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "budget_hours",
			Message: "budget_hours must be positive when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateEntryRequest struct {
	EmployeeID  string  `json:"-"`
	ProjectID   string  `json:"project_id"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Description *string `json:"description,omitempty"`
	IsBillable  bool    `json:"is_billable"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsQuarterHours(r.Hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0.25 and 24 in quarter-hour steps",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitWeekRequest struct {
	EmployeeID string   `json:"-"`
	WeekStart  string   `json:"week_start"`
	EntryIDs   []string `json:"entries"`
}

func (r *SubmitWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}

	if len(r.EntryIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "entries must list at least one entry id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EntryFilter narrows time entry listings.
type EntryFilter struct {
	EmployeeID *string
	ProjectID  *string
	Status     *string
	From       *string
	To         *string
}
