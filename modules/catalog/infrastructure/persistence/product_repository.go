package persistence

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/catalog/domain/entities/product"
	"github.com/storo-shop/backend/modules/catalog/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/mapping"
	"github.com/storo-shop/backend/pkg/repo"
)

var (
	ErrProductNotFound = fmt.Errorf("product not found")
)

const (
	productFindQuery = `
		SELECT p.id, p.tenant_id, p.category_id, p.name, p.slug, p.sku, p.description, p.price_minor, p.currency, p.stock, p.images, p.active, p.created_at, p.updated_at
		FROM products p`
	productCountQuery = `SELECT COUNT(*) FROM products p`
)

type PgProductRepository struct{}

func NewProductRepository() product.Repository {
	return &PgProductRepository{}
}

func (g *PgProductRepository) buildFilters(ctx context.Context, params *product.FindParams) ([]string, []interface{}, error) {
	var where []string
	var args []interface{}

	if params.CategoryID != nil {
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
		args = append(args, params.CategoryID.String())
	}

	if params.ActiveOnly {
		where = append(where, "p.active")
	}

	if params.Search != "" {
		index := len(args) + 1
		where = append(
			where,
			fmt.Sprintf("(p.name ILIKE $%d OR p.sku ILIKE $%d)", index, index),
		)
		args = append(args, "%"+params.Search+"%")
	}

	return repo.ScopeFilters(ctx, "p.tenant_id", where, args)
}

func (g *PgProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	where, args, err := repo.ScopeFilters(ctx, "p.tenant_id", []string{"p.id = $1"}, []interface{}{id.String()})
	if err != nil {
		return nil, err
	}
	products, err := g.queryProducts(ctx, repo.Join(productFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}
	return products[0], nil
}

func (g *PgProductRepository) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	where, args, err := repo.ScopeFilters(ctx, "p.tenant_id", []string{"p.slug = $1"}, []interface{}{slug})
	if err != nil {
		return nil, err
	}
	products, err := g.queryProducts(ctx, repo.Join(productFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}
	return products[0], nil
}

func (g *PgProductRepository) GetPaginated(ctx context.Context, params *product.FindParams) ([]*product.Product, error) {
	where, args, err := g.buildFilters(ctx, params)
	if err != nil {
		return nil, err
	}

	query := repo.Join(
		productFindQuery,
		repo.JoinWhere(where...),
		"ORDER BY p.created_at DESC",
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)
	products, err := g.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get paginated products")
	}
	return products, nil
}

func (g *PgProductRepository) Count(ctx context.Context, params *product.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}

	where, args, err := g.buildFilters(ctx, params)
	if err != nil {
		return 0, err
	}

	var count int64
	query := repo.Join(productCountQuery, repo.JoinWhere(where...))
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}
	return count, nil
}

func (g *PgProductRepository) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	fields := []string{"id", "category_id", "name", "slug", "sku", "description", "price_minor", "currency", "stock", "images", "active", "created_at", "updated_at"}
	values := []interface{}{
		p.ID().String(),
		uuidPointerToSQLNullString(p.CategoryID()),
		p.Name(),
		p.Slug(),
		mapping.ValueToSQLNullString(p.SKU()),
		mapping.ValueToSQLNullString(p.Description()),
		p.PriceMinor(),
		p.Currency(),
		p.Stock(),
		p.Images(),
		p.Active(),
		p.CreatedAt(),
		p.UpdatedAt(),
	}
	if p.TenantID() != uuid.Nil {
		fields = append(fields, "tenant_id")
		values = append(values, p.TenantID())
	}
	fields, values, err = repo.ScopeInsert(ctx, fields, values)
	if err != nil {
		return nil, err
	}

	var idStr string
	if err := tx.QueryRow(ctx, repo.Insert("products", fields, "id"), values...).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert product")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return g.GetByID(ctx, id)
}

func (g *PgProductRepository) Update(ctx context.Context, p *product.Product) (*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	fields := []string{"category_id", "name", "slug", "sku", "description", "price_minor", "currency", "stock", "images", "active", "updated_at"}
	values := []interface{}{
		uuidPointerToSQLNullString(p.CategoryID()),
		p.Name(),
		p.Slug(),
		mapping.ValueToSQLNullString(p.SKU()),
		mapping.ValueToSQLNullString(p.Description()),
		p.PriceMinor(),
		p.Currency(),
		p.Stock(),
		p.Images(),
		p.Active(),
		p.UpdatedAt(),
	}

	where := []string{fmt.Sprintf("id = $%d", len(values)+1)}
	values = append(values, p.ID().String())
	where, values, err = repo.ScopeFilters(ctx, "tenant_id", where, values)
	if err != nil {
		return nil, err
	}

	query := repo.Update("products", fields, where[0])
	for _, cond := range where[1:] {
		query += " AND " + cond
	}
	if _, err := tx.Exec(ctx, query, values...); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}
	return g.GetByID(ctx, p.ID())
}

func (g *PgProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	where, args, err := repo.ScopeFilters(ctx, "tenant_id", []string{"id = $1"}, []interface{}{id.String()})
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, repo.Join("DELETE FROM products", repo.JoinWhere(where...)), args...)
	return errors.Wrap(err, "failed to delete product")
}

func (g *PgProductRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*product.Product, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID,
			&p.TenantID,
			&p.CategoryID,
			&p.Name,
			&p.Slug,
			&p.SKU,
			&p.Description,
			&p.PriceMinor,
			&p.Currency,
			&p.Stock,
			&p.Images,
			&p.Active,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan product row")
		}
		entity, err := toDomainProduct(&p)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map product row")
		}
		products = append(products, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return products, nil
}
