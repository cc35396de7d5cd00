package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/storo-shop/backend/modules/core/domain/entities/user"
	"github.com/storo-shop/backend/modules/core/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/core/presentation/controllers/dtos"
	"github.com/storo-shop/backend/modules/core/services"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/configuration"
	"github.com/storo-shop/backend/pkg/httpapi"
)

type UsersController struct {
	app application.Application
}

func NewUsersController(app application.Application) application.Controller {
	return &UsersController{app: app}
}

func (c *UsersController) Key() string {
	return "/api/users"
}

func (c *UsersController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/users").Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *UsersController) service() *services.UserService {
	return c.app.Service(services.UserService{}).(*services.UserService)
}

func (c *UsersController) List(w http.ResponseWriter, r *http.Request) {
	params := &user.FindParams{
		Limit:  limitParam(r),
		Offset: offsetParam(r),
		Search: r.URL.Query().Get("q"),
		Role:   user.Role(r.URL.Query().Get("role")),
	}

	users, err := c.service().GetPaginated(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	total, err := c.service().Count(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_ = httpapi.WriteList(w, dtos.NewUserListResponse(users), total)
}

func (c *UsersController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	u, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewUserResponse(u))
}

func (c *UsersController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	opts := []user.Option{user.WithName(req.FirstName, req.LastName)}
	if req.Role != "" {
		opts = append(opts, user.WithRole(user.Role(req.Role)))
	}
	u := user.New(req.Email, opts...)
	if req.Password != "" {
		if err := u.SetPassword(req.Password); err != nil {
			_ = httpapi.WriteError(w, http.StatusInternalServerError, "internal", "failed to hash password", nil)
			return
		}
	}
	created, err := c.service().Create(r.Context(), u)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.NewUserResponse(created))
}

func (c *UsersController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	var req dtos.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	existing, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	opts := []user.Option{
		user.WithID(existing.ID()),
		user.WithTenantID(existing.TenantID()),
		user.WithPasswordHash(existing.PasswordHash()),
		user.WithName(req.FirstName, req.LastName),
		user.WithCreatedAt(existing.CreatedAt()),
	}
	if req.Role != "" {
		opts = append(opts, user.WithRole(user.Role(req.Role)))
	} else {
		opts = append(opts, user.WithRole(existing.Role()))
	}
	updated, err := c.service().Update(r.Context(), user.New(existing.Email(), opts...))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewUserResponse(updated))
}

func (c *UsersController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, persistence.ErrUserNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "user not found", nil)
	case errors.Is(err, persistence.ErrTenantNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "tenant not found", nil)
	default:
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "internal", err.Error(), nil)
	}
}

func limitParam(r *http.Request) int {
	conf := configuration.Use()
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return conf.PageSize
	}
	if limit > conf.MaxPageSize {
		return conf.MaxPageSize
	}
	return limit
}

func offsetParam(r *http.Request) int {
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
