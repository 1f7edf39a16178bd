package tenant

import "github.com/bambooclone/hr-backend-go/internal/pkg/validator"

type CreateTenantRequest struct {
	Name     string  `json:"name"`
	Domain   string  `json:"domain"`
	Industry *string `json:"industry,omitempty"`
}

func (r *CreateTenantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Domain) {
		errs = append(errs, validator.ValidationError{
			Field:   "domain",
			Message: "domain is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
