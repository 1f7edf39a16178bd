package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bambooclone/hr-backend-go/internal/domain/attendance"
	"github.com/bambooclone/hr-backend-go/internal/domain/auth"
	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/domain/leave"
	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
	"github.com/bambooclone/hr-backend-go/internal/domain/user"
	"github.com/bambooclone/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation errors", validator.ValidationErrors{{Field: "hours", Message: "bad"}}, http.StatusBadRequest},
		{"insufficient quota", leave.ErrInsufficientQuota, http.StatusBadRequest},
		{"inactive project", timesheet.ErrProjectInactive, http.StatusBadRequest},
		{"entry not draft", timesheet.ErrEntryNotDraft, http.StatusBadRequest},
		{"entry not owned", timesheet.ErrEntryNotOwned, http.StatusBadRequest},
		{"entry outside week", timesheet.ErrEntryOutsideWeek, http.StatusBadRequest},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"approver role required", user.ErrApproverRoleRequired, http.StatusForbidden},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"entry not found", timesheet.ErrEntryNotFound, http.StatusNotFound},
		{"request already processed", leave.ErrLeaveRequestAlreadyProcessed, http.StatusConflict},
		{"entry already processed", timesheet.ErrEntryAlreadyProcessed, http.StatusConflict},
		{"entry not submitted", timesheet.ErrEntryNotSubmitted, http.StatusConflict},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"project has entries", timesheet.ErrProjectHasEntries, http.StatusConflict},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}
