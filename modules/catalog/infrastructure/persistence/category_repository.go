package persistence

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/catalog/domain/entities/category"
	"github.com/storo-shop/backend/modules/catalog/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/mapping"
	"github.com/storo-shop/backend/pkg/repo"
)

var (
	ErrCategoryNotFound = fmt.Errorf("category not found")
)

const (
	categoryFindQuery = `
		SELECT c.id, c.tenant_id, c.parent_id, c.name, c.slug, c.sort_order, c.created_at, c.updated_at
		FROM categories c`
	categoryCountQuery = `SELECT COUNT(*) FROM categories c`
)

type PgCategoryRepository struct{}

func NewCategoryRepository() category.Repository {
	return &PgCategoryRepository{}
}

func (g *PgCategoryRepository) buildFilters(ctx context.Context, params *category.FindParams) ([]string, []interface{}, error) {
	var where []string
	var args []interface{}

	if params.ParentID != nil {
		where = append(where, fmt.Sprintf("c.parent_id = $%d", len(args)+1))
		args = append(args, params.ParentID.String())
	}

	if params.Search != "" {
		where = append(where, fmt.Sprintf("c.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+params.Search+"%")
	}

	return repo.ScopeFilters(ctx, "c.tenant_id", where, args)
}

func (g *PgCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	where, args, err := repo.ScopeFilters(ctx, "c.tenant_id", []string{"c.id = $1"}, []interface{}{id.String()})
	if err != nil {
		return nil, err
	}
	categories, err := g.queryCategories(ctx, repo.Join(categoryFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrCategoryNotFound
	}
	return categories[0], nil
}

func (g *PgCategoryRepository) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	where, args, err := repo.ScopeFilters(ctx, "c.tenant_id", []string{"c.slug = $1"}, []interface{}{slug})
	if err != nil {
		return nil, err
	}
	categories, err := g.queryCategories(ctx, repo.Join(categoryFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrCategoryNotFound
	}
	return categories[0], nil
}

func (g *PgCategoryRepository) GetPaginated(ctx context.Context, params *category.FindParams) ([]*category.Category, error) {
	where, args, err := g.buildFilters(ctx, params)
	if err != nil {
		return nil, err
	}

	query := repo.Join(
		categoryFindQuery,
		repo.JoinWhere(where...),
		"ORDER BY c.sort_order ASC, c.name ASC",
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)
	categories, err := g.queryCategories(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get paginated categories")
	}
	return categories, nil
}

func (g *PgCategoryRepository) Count(ctx context.Context, params *category.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}

	where, args, err := g.buildFilters(ctx, params)
	if err != nil {
		return 0, err
	}

	var count int64
	query := repo.Join(categoryCountQuery, repo.JoinWhere(where...))
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count categories")
	}
	return count, nil
}

func (g *PgCategoryRepository) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	fields := []string{"id", "parent_id", "name", "slug", "sort_order", "created_at", "updated_at"}
	values := []interface{}{
		c.ID().String(),
		uuidPointerToSQLNullString(c.ParentID()),
		c.Name(),
		c.Slug(),
		c.SortOrder(),
		c.CreatedAt(),
		c.UpdatedAt(),
	}
	if c.TenantID() != uuid.Nil {
		fields = append(fields, "tenant_id")
		values = append(values, c.TenantID())
	}
	fields, values, err = repo.ScopeInsert(ctx, fields, values)
	if err != nil {
		return nil, err
	}

	var idStr string
	if err := tx.QueryRow(ctx, repo.Insert("categories", fields, "id"), values...).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert category")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return g.GetByID(ctx, id)
}

func (g *PgCategoryRepository) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	fields := []string{"parent_id", "name", "slug", "sort_order", "updated_at"}
	values := []interface{}{
		uuidPointerToSQLNullString(c.ParentID()),
		c.Name(),
		c.Slug(),
		c.SortOrder(),
		c.UpdatedAt(),
	}

	where := []string{fmt.Sprintf("id = $%d", len(values)+1)}
	values = append(values, c.ID().String())
	where, values, err = repo.ScopeFilters(ctx, "tenant_id", where, values)
	if err != nil {
		return nil, err
	}

	query := repo.Update("categories", fields, where[0])
	for _, cond := range where[1:] {
		query += " AND " + cond
	}
	if _, err := tx.Exec(ctx, query, values...); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}
	return g.GetByID(ctx, c.ID())
}

func (g *PgCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	where, args, err := repo.ScopeFilters(ctx, "tenant_id", []string{"id = $1"}, []interface{}{id.String()})
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, repo.Join("DELETE FROM categories", repo.JoinWhere(where...)), args...)
	return errors.Wrap(err, "failed to delete category")
}

func (g *PgCategoryRepository) queryCategories(ctx context.Context, query string, args ...interface{}) ([]*category.Category, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var categories []*category.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(
			&c.ID,
			&c.TenantID,
			&c.ParentID,
			&c.Name,
			&c.Slug,
			&c.SortOrder,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan category row")
		}
		entity, err := toDomainCategory(&c)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map category row")
		}
		categories = append(categories, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return categories, nil
}

func uuidPointerToSQLNullString(id *uuid.UUID) interface{} {
	if id == nil {
		return mapping.ValueToSQLNullString("")
	}
	return mapping.ValueToSQLNullString(id.String())
}
