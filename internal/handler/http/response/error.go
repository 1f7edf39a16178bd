package response

import (
	"errors"
	"net/http"

	"github.com/bambooclone/hr-backend-go/internal/domain/attendance"
	"github.com/bambooclone/hr-backend-go/internal/domain/auth"
	"github.com/bambooclone/hr-backend-go/internal/domain/department"
	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/domain/invitation"
	"github.com/bambooclone/hr-backend-go/internal/domain/leave"
	"github.com/bambooclone/hr-backend-go/internal/domain/tenant"
	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
	"github.com/bambooclone/hr-backend-go/internal/domain/user"
	"github.com/bambooclone/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Validation problems and
// rejected inputs are 400, authentication 401, authorization 403, missing
// records 404, and workflow-state violations 409.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrOAuthNotLinked):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrApproverRoleRequired),
		errors.Is(err, user.ErrPeopleManagerRequired),
		errors.Is(err, user.ErrSuperAdminRequired),
		errors.Is(err, user.ErrEmployeeClaimRequired),
		errors.Is(err, user.ErrTenantClaimRequired):
		Forbidden(w, err.Error())

	// Tenant
	case errors.Is(err, tenant.ErrTenantNotFound):
		NotFound(w, "Tenant not found")
	case errors.Is(err, tenant.ErrTenantDomainExists):
		Conflict(w, "Tenant domain already registered")

	// Department
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentCodeExists):
		Conflict(w, "Department code already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has employees assigned")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this tenant")

	// Invitation
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationExpired):
		Conflict(w, "Invitation has expired")

	// Leave
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveTypeCodeExists):
		Conflict(w, "Leave type code already exists")
	case errors.Is(err, leave.ErrLeaveTypeInUse):
		Conflict(w, "Leave type still referenced by leave requests")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientQuota):
		BadRequest(w, err.Error(), nil)

	// Timesheet
	case errors.Is(err, timesheet.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, timesheet.ErrClientCodeExists):
		Conflict(w, "Client code already exists")
	case errors.Is(err, timesheet.ErrClientHasProjects):
		Conflict(w, "Client still has projects")
	case errors.Is(err, timesheet.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, timesheet.ErrProjectCodeExists):
		Conflict(w, "Project code already exists")
	case errors.Is(err, timesheet.ErrProjectInactive):
		BadRequest(w, "Project is not active", nil)
	case errors.Is(err, timesheet.ErrProjectHasEntries):
		Conflict(w, "Project still has time entries")
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timesheet.ErrEntryNotOwned),
		errors.Is(err, timesheet.ErrEntryNotDraft):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timesheet.ErrEntryNotSubmitted),
		errors.Is(err, timesheet.ErrEntryAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, timesheet.ErrEntryOutsideWeek):
		BadRequest(w, err.Error(), nil)

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Not checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
