package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/storo-shop/backend/modules/core/domain/entities/tenant"
	"github.com/storo-shop/backend/modules/core/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/core/services"
	"github.com/storo-shop/backend/modules/superadmin/presentation/controllers/dtos"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/httpapi"
)

// TenantsController is the cross-tenant management surface. It talks to
// the tenant directory directly and never runs under ambient tenant
// scope; requests under /superadmin skip tenant resolution.
type TenantsController struct {
	app application.Application
}

func NewTenantsController(app application.Application) application.Controller {
	return &TenantsController{app: app}
}

func (c *TenantsController) Key() string {
	return "/superadmin/tenants"
}

func (c *TenantsController) Register(r *mux.Router) {
	router := r.PathPrefix("/superadmin/tenants").Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-f-]+}/block", c.Block).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}/unblock", c.Unblock).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}/plan", c.SetPlan).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}/trial", c.ExtendTrial).Methods(http.MethodPost)
}

func (c *TenantsController) service() *services.TenantService {
	return c.app.Service(services.TenantService{}).(*services.TenantService)
}

func (c *TenantsController) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := c.service().List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteList(w, dtos.NewTenantListResponse(tenants), int64(len(tenants)))
}

func (c *TenantsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := tenantID(w, r)
	if !ok {
		return
	}
	t, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewTenantResponse(t))
}

func (c *TenantsController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	opts := []tenant.Option{
		tenant.WithSubdomain(req.Subdomain),
		tenant.WithCustomDomain(req.CustomDomain),
		tenant.WithContactEmail(req.ContactEmail),
		tenant.WithContactPhone(req.ContactPhone),
	}
	if req.Plan != "" {
		opts = append(opts, tenant.WithPlan(tenant.Plan(req.Plan)))
	}
	created, err := c.service().Create(r.Context(), tenant.New(req.Name, opts...))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.NewTenantResponse(created))
}

func (c *TenantsController) Block(w http.ResponseWriter, r *http.Request) {
	id, ok := tenantID(w, r)
	if !ok {
		return
	}
	t, err := c.service().Block(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewTenantResponse(t))
}

func (c *TenantsController) Unblock(w http.ResponseWriter, r *http.Request) {
	id, ok := tenantID(w, r)
	if !ok {
		return
	}
	t, err := c.service().Unblock(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewTenantResponse(t))
}

func (c *TenantsController) SetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := tenantID(w, r)
	if !ok {
		return
	}
	var req dtos.SetPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	t, err := c.service().SetPlan(r.Context(), id, tenant.Plan(req.Plan))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewTenantResponse(t))
}

func (c *TenantsController) ExtendTrial(w http.ResponseWriter, r *http.Request) {
	id, ok := tenantID(w, r)
	if !ok {
		return
	}
	var req dtos.ExtendTrialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	t, err := c.service().ExtendTrial(r.Context(), id, req.Until)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewTenantResponse(t))
}

func tenantID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, persistence.ErrTenantNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "tenant not found", nil)
	case errors.Is(err, services.ErrInvalidPlan):
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_plan", err.Error(), nil)
	default:
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "internal", err.Error(), nil)
	}
}
