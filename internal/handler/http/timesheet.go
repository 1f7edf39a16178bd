package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
	"github.com/bambooclone/hr-backend-go/internal/domain/user"
	"github.com/bambooclone/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	CreateClient(w http.ResponseWriter, r *http.Request)
	ListClients(w http.ResponseWriter, r *http.Request)
	DeleteClient(w http.ResponseWriter, r *http.Request)

	CreateProject(w http.ResponseWriter, r *http.Request)
	ListProjects(w http.ResponseWriter, r *http.Request)
	DeleteProject(w http.ResponseWriter, r *http.Request)

	AddEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	SubmitWeek(w http.ResponseWriter, r *http.Request)
	ApproveEntry(w http.ResponseWriter, r *http.Request)
	RejectEntry(w http.ResponseWriter, r *http.Request)
	WeeklySummary(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

func (h *timesheetHandlerImpl) CreateClient(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.CreateClient(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created", result)
}

func (h *timesheetHandlerImpl) ListClients(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.ListClients(r.Context(), tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) DeleteClient(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.timesheetService.DeleteClient(r.Context(), tenantID, chi.URLParam(r, "clientID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted", nil)
}

func (h *timesheetHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.CreateProject(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created", result)
}

func (h *timesheetHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.ListProjects(r.Context(), tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) DeleteProject(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.timesheetService.DeleteProject(r.Context(), tenantID, chi.URLParam(r, "projectID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted", nil)
}

func (h *timesheetHandlerImpl) AddEntry(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, err := employeeFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.timesheetService.AddEntry(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created", result)
}

func (h *timesheetHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	session, err := sessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := timesheet.EntryFilter{}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("project_id"); v != "" {
		filter.ProjectID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("from"); v != "" {
		filter.From = &v
	}
	if v := r.URL.Query().Get("to"); v != "" {
		filter.To = &v
	}

	// Employees only ever see their own entries.
	if session.Role == user.RoleEmployee {
		filter.EmployeeID = session.EmployeeID
	}

	result, err := h.timesheetService.ListEntries(r.Context(), tenantID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, err := employeeFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.timesheetService.DeleteEntry(r.Context(), tenantID, employeeID, chi.URLParam(r, "entryID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted", nil)
}

func (h *timesheetHandlerImpl) SubmitWeek(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, err := employeeFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.SubmitWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.timesheetService.SubmitWeek(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet submitted", result)
}

func (h *timesheetHandlerImpl) ApproveEntry(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.timesheetService.ApproveEntry, "Time entry approved")
}

func (h *timesheetHandlerImpl) RejectEntry(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.timesheetService.RejectEntry, "Time entry rejected")
}

func (h *timesheetHandlerImpl) resolve(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, tenantID, entryID, resolvedBy string) (timesheet.TimeEntry, error),
	message string,
) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	session, err := sessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := fn(r.Context(), tenantID, chi.URLParam(r, "entryID"), session.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}

func (h *timesheetHandlerImpl) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	session, err := sessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" || session.Role == user.RoleEmployee {
		own, err := employeeFromRequest(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		employeeID = own
	}

	result, err := h.timesheetService.WeeklySummary(r.Context(), tenantID, employeeID, r.URL.Query().Get("week_start"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
