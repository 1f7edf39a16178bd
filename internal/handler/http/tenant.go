package http

import (
	"encoding/json"
	"net/http"

	"github.com/bambooclone/hr-backend-go/internal/domain/tenant"
	"github.com/bambooclone/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TenantHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type tenantHandlerImpl struct {
	tenantService tenant.TenantService
}

func NewTenantHandler(tenantService tenant.TenantService) TenantHandler {
	return &tenantHandlerImpl{tenantService: tenantService}
}

func (h *tenantHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req tenant.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.tenantService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tenant created", result)
}

func (h *tenantHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.tenantService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *tenantHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.tenantService.GetByID(r.Context(), chi.URLParam(r, "tenantID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
