package dtos

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/catalog/domain/entities/category"
	"github.com/storo-shop/backend/modules/catalog/domain/entities/product"
)

var Validate = validator.New()

type CreateCategoryRequest struct {
	Name      string     `json:"name" validate:"required,max=255"`
	Slug      string     `json:"slug" validate:"required,max=255"`
	ParentID  *uuid.UUID `json:"parentId"`
	SortOrder int        `json:"sortOrder" validate:"gte=0"`
}

type UpdateCategoryRequest struct {
	Name      string     `json:"name" validate:"required,max=255"`
	Slug      string     `json:"slug" validate:"required,max=255"`
	ParentID  *uuid.UUID `json:"parentId"`
	SortOrder int        `json:"sortOrder" validate:"gte=0"`
}

type CategoryResponse struct {
	ID        uuid.UUID  `json:"id"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	SortOrder int        `json:"sortOrder"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func NewCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID(),
		ParentID:  c.ParentID(),
		Name:      c.Name(),
		Slug:      c.Slug(),
		SortOrder: c.SortOrder(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func NewCategoryListResponse(categories []*category.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

type ProductListQuery struct {
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
	Search     string `form:"q"`
	Active     bool   `form:"active"`
	CategoryID string `form:"categoryId"`
}

type CreateProductRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Slug        string     `json:"slug" validate:"required,max=255"`
	SKU         string     `json:"sku" validate:"max=64"`
	Description string     `json:"description"`
	PriceMinor  int64      `json:"priceMinor" validate:"gte=0"`
	Currency    string     `json:"currency" validate:"required,len=3"`
	Stock       int        `json:"stock" validate:"gte=0"`
	Images      []string   `json:"images" validate:"dive,url"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	Active      *bool      `json:"active"`
}

type UpdateProductRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Slug        string     `json:"slug" validate:"required,max=255"`
	SKU         string     `json:"sku" validate:"max=64"`
	Description string     `json:"description"`
	PriceMinor  int64      `json:"priceMinor" validate:"gte=0"`
	Currency    string     `json:"currency" validate:"required,len=3"`
	Stock       int        `json:"stock" validate:"gte=0"`
	Images      []string   `json:"images" validate:"dive,url"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	Active      *bool      `json:"active"`
}

type ProductResponse struct {
	ID          uuid.UUID  `json:"id"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	SKU         string     `json:"sku,omitempty"`
	Description string     `json:"description,omitempty"`
	PriceMinor  int64      `json:"priceMinor"`
	Currency    string     `json:"currency"`
	Stock       int        `json:"stock"`
	Images      []string   `json:"images"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID(),
		CategoryID:  p.CategoryID(),
		Name:        p.Name(),
		Slug:        p.Slug(),
		SKU:         p.SKU(),
		Description: p.Description(),
		PriceMinor:  p.PriceMinor(),
		Currency:    p.Currency(),
		Stock:       p.Stock(),
		Images:      p.Images(),
		Active:      p.Active(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func NewProductListResponse(products []*product.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
