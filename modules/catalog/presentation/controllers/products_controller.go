package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/storo-shop/backend/modules/catalog/domain/entities/product"
	"github.com/storo-shop/backend/modules/catalog/presentation/controllers/dtos"
	"github.com/storo-shop/backend/modules/catalog/services"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/httpapi"
)

type ProductsController struct {
	app application.Application
}

func NewProductsController(app application.Application) application.Controller {
	return &ProductsController{app: app}
}

func (c *ProductsController) Key() string {
	return "/api/products"
}

func (c *ProductsController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/products").Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/slug/{slug}", c.GetBySlug).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *ProductsController) service() *services.ProductService {
	return c.app.Service(services.ProductService{}).(*services.ProductService)
}

func (c *ProductsController) List(w http.ResponseWriter, r *http.Request) {
	q, err := composables.UseQuery(&dtos.ProductListQuery{}, r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_query", err.Error(), nil)
		return
	}
	params := &product.FindParams{
		Limit:      clampLimit(q.Limit),
		Offset:     clampOffset(q.Offset),
		Search:     q.Search,
		ActiveOnly: q.Active,
	}
	if q.CategoryID != "" {
		categoryID, err := uuid.Parse(q.CategoryID)
		if err != nil {
			_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_category_id", "categoryId must be a uuid", nil)
			return
		}
		params.CategoryID = &categoryID
	}

	products, err := c.service().GetPaginated(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	total, err := c.service().Count(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteList(w, dtos.NewProductListResponse(products), total)
}

func (c *ProductsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	p, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewProductResponse(p))
}

func (c *ProductsController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := c.service().GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewProductResponse(p))
}

func (c *ProductsController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	opts := []product.Option{
		product.WithCategoryID(req.CategoryID),
		product.WithSKU(req.SKU),
		product.WithDescription(req.Description),
		product.WithStock(req.Stock),
		product.WithImages(req.Images),
	}
	if req.Active != nil {
		opts = append(opts, product.WithActive(*req.Active))
	}
	created, err := c.service().Create(r.Context(), product.New(
		req.Name, req.Slug, req.PriceMinor, req.Currency, opts...,
	))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.NewProductResponse(created))
}

func (c *ProductsController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	var req dtos.UpdateProductRequest
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
	existing.SetSKU(req.SKU)
	existing.SetDescription(req.Description)
	existing.SetPrice(req.PriceMinor, req.Currency)
	existing.SetStock(req.Stock)
	existing.SetImages(req.Images)
	existing.SetCategoryID(req.CategoryID)
	if req.Active != nil {
		if *req.Active {
			existing.Activate()
		} else {
			existing.Deactivate()
		}
	}

	updated, err := c.service().Update(r.Context(), existing)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewProductResponse(updated))
}

func (c *ProductsController) Delete(w http.ResponseWriter, r *http.Request) {
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
