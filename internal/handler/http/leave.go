package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/leave"
	"github.com/bambooclone/hr-backend-go/internal/domain/user"
	"github.com/bambooclone/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)

	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

func (h *leaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.CreateLeaveType(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created", result)
}

func (h *leaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.ListLeaveTypes(r.Context(), tenantID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.UpdateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.UpdateLeaveType(r.Context(), tenantID, chi.URLParam(r, "leaveTypeID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.leaveService.DeleteLeaveType(r.Context(), tenantID, chi.URLParam(r, "leaveTypeID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type deleted", nil)
}

func (h *leaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
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

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.leaveService.SubmitRequest(r.Context(), tenantID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

func (h *leaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
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

	filter := leave.RequestFilter{}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}

	// Employees only ever see their own requests.
	if session.Role == user.RoleEmployee {
		filter.EmployeeID = session.EmployeeID
	}

	result, err := h.leaveService.ListRequests(r.Context(), tenantID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.leaveService.ApproveRequest, "Leave request approved")
}

func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.leaveService.RejectRequest, "Leave request rejected")
}

func (h *leaveHandlerImpl) resolve(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, tenantID, requestID, resolvedBy string) (leave.LeaveRequest, error),
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

	result, err := fn(r.Context(), tenantID, chi.URLParam(r, "requestID"), session.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}

func (h *leaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
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

	year := time.Now().UTC().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Query parameter 'year' must be a number", nil)
			return
		}
		year = parsed
	}

	result, err := h.leaveService.GetBalances(r.Context(), tenantID, employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
