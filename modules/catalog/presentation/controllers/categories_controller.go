package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/storo-shop/backend/modules/catalog/domain/entities/category"
	"github.com/storo-shop/backend/modules/catalog/presentation/controllers/dtos"
	"github.com/storo-shop/backend/modules/catalog/services"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/httpapi"
)

type CategoriesController struct {
	app application.Application
}

func NewCategoriesController(app application.Application) application.Controller {
	return &CategoriesController{app: app}
}

func (c *CategoriesController) Key() string {
	return "/api/categories"
}

func (c *CategoriesController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/categories").Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *CategoriesController) service() *services.CategoryService {
	return c.app.Service(services.CategoryService{}).(*services.CategoryService)
}

func (c *CategoriesController) List(w http.ResponseWriter, r *http.Request) {
	params := &category.FindParams{
		Limit:  limitParam(r),
		Offset: offsetParam(r),
		Search: r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("parentId"); raw != "" {
		parentID, err := uuid.Parse(raw)
		if err != nil {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_parent_id", "parentId must be a uuid", nil)
			return
		}
		params.ParentID = &parentID
	}

	categories, err := c.service().GetPaginated(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	total, err := c.service().Count(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteList(w, dtos.NewCategoryListResponse(categories), total)
}

func (c *CategoriesController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	cat, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewCategoryResponse(cat))
}

func (c *CategoriesController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	created, err := c.service().Create(r.Context(), category.New(
		req.Name,
		req.Slug,
		category.WithParentID(req.ParentID),
		category.WithSortOrder(req.SortOrder),
	))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.NewCategoryResponse(created))
}

func (c *CategoriesController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	var req dtos.UpdateCategoryRequest
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
		writeServiceError(w, err)
		return
	}
	existing.Rename(req.Name)
	existing.SetSlug(req.Slug)
	existing.SetParentID(req.ParentID)
	existing.SetSortOrder(req.SortOrder)

	updated, err := c.service().Update(r.Context(), existing)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewCategoryResponse(updated))
}

func (c *CategoriesController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	if err := c.service().Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
