package persistence

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/catalog/domain/entities/category"
	"github.com/storo-shop/backend/modules/catalog/domain/entities/product"
	"github.com/storo-shop/backend/modules/catalog/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/mapping"
)

func parseNullUUID(v sql.NullString) (*uuid.UUID, error) {
	if !v.Valid {
		return nil, nil
	}
	id, err := uuid.Parse(v.String)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toDomainCategory(c *models.Category) (*category.Category, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return nil, err
	}
	tenantID, err := uuid.Parse(c.TenantID)
	if err != nil {
		return nil, err
	}
	parentID, err := parseNullUUID(c.ParentID)
	if err != nil {
		return nil, err
	}

	return category.New(
		c.Name,
		c.Slug,
		category.WithID(id),
		category.WithTenantID(tenantID),
		category.WithParentID(parentID),
		category.WithSortOrder(c.SortOrder),
		category.WithCreatedAt(c.CreatedAt),
		category.WithUpdatedAt(c.UpdatedAt),
	), nil
}

func toDomainProduct(p *models.Product) (*product.Product, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil, err
	}
	tenantID, err := uuid.Parse(p.TenantID)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseNullUUID(p.CategoryID)
	if err != nil {
		return nil, err
	}

	return product.New(
		p.Name,
		p.Slug,
		p.PriceMinor,
		p.Currency,
		product.WithID(id),
		product.WithTenantID(tenantID),
		product.WithCategoryID(categoryID),
		product.WithSKU(mapping.SQLNullStringToValue(p.SKU)),
		product.WithDescription(mapping.SQLNullStringToValue(p.Description)),
		product.WithStock(p.Stock),
		product.WithImages(p.Images),
		product.WithActive(p.Active),
		product.WithCreatedAt(p.CreatedAt),
		product.WithUpdatedAt(p.UpdatedAt),
	), nil
}
