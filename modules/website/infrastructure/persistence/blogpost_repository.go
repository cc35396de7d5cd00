package persistence

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/website/domain/entities/blogpost"
	"github.com/storo-shop/backend/modules/website/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/mapping"
	"github.com/storo-shop/backend/pkg/repo"
)

var (
	ErrPostNotFound = fmt.Errorf("blog post not found")
)

const (
	postFindQuery = `
		SELECT p.id, p.tenant_id, p.title, p.slug, p.body, p.cover_url, p.published, p.published_at, p.created_at, p.updated_at
		FROM blog_posts p`
	postCountQuery = `SELECT COUNT(*) FROM blog_posts p`
)

type PgBlogPostRepository struct{}

func NewBlogPostRepository() blogpost.Repository {
	return &PgBlogPostRepository{}
}

func (g *PgBlogPostRepository) buildFilters(ctx context.Context, params *blogpost.FindParams) ([]string, []interface{}, error) {
	var where []string
	var args []interface{}

	if params.PublishedOnly {
		where = append(where, "p.published")
	}

	if params.Search != "" {
		where = append(where, fmt.Sprintf("p.title ILIKE $%d", len(args)+1))
		args = append(args, "%"+params.Search+"%")
	}

	return repo.ScopeFilters(ctx, "p.tenant_id", where, args)
}

func (g *PgBlogPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*blogpost.Post, error) {
	where, args, err := repo.ScopeFilters(ctx, "p.tenant_id", []string{"p.id = $1"}, []interface{}{id.String()})
	if err != nil {
		return nil, err
	}
	posts, err := g.queryPosts(ctx, repo.Join(postFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrPostNotFound
	}
	return posts[0], nil
}

func (g *PgBlogPostRepository) GetBySlug(ctx context.Context, slug string) (*blogpost.Post, error) {
	where, args, err := repo.ScopeFilters(ctx, "p.tenant_id", []string{"p.slug = $1"}, []interface{}{slug})
	if err != nil {
		return nil, err
	}
	posts, err := g.queryPosts(ctx, repo.Join(postFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrPostNotFound
	}
	return posts[0], nil
}

func (g *PgBlogPostRepository) GetPaginated(ctx context.Context, params *blogpost.FindParams) ([]*blogpost.Post, error) {
	where, args, err := g.buildFilters(ctx, params)
	if err != nil {
		return nil, err
	}

	query := repo.Join(
		postFindQuery,
		repo.JoinWhere(where...),
		"ORDER BY p.created_at DESC",
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)
	posts, err := g.queryPosts(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get paginated blog posts")
	}
	return posts, nil
}

func (g *PgBlogPostRepository) Count(ctx context.Context, params *blogpost.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}

	where, args, err := g.buildFilters(ctx, params)
	if err != nil {
		return 0, err
	}

	var count int64
	query := repo.Join(postCountQuery, repo.JoinWhere(where...))
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count blog posts")
	}
	return count, nil
}

func (g *PgBlogPostRepository) Create(ctx context.Context, p *blogpost.Post) (*blogpost.Post, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	fields := []string{"id", "title", "slug", "body", "cover_url", "published", "published_at", "created_at", "updated_at"}
	values := []interface{}{
		p.ID().String(),
		p.Title(),
		p.Slug(),
		p.Body(),
		mapping.ValueToSQLNullString(p.CoverURL()),
		p.Published(),
		mapping.PointerToSQLNullTime(p.PublishedAt()),
		p.CreatedAt(),
		p.UpdatedAt(),
	}
	fields, values, err = repo.ScopeInsert(ctx, fields, values)
	if err != nil {
		return nil, err
	}

	var idStr string
	if err := tx.QueryRow(ctx, repo.Insert("blog_posts", fields, "id"), values...).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert blog post")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return g.GetByID(ctx, id)
}

func (g *PgBlogPostRepository) Update(ctx context.Context, p *blogpost.Post) (*blogpost.Post, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	fields := []string{"title", "slug", "body", "cover_url", "published", "published_at", "updated_at"}
	values := []interface{}{
		p.Title(),
		p.Slug(),
		p.Body(),
		mapping.ValueToSQLNullString(p.CoverURL()),
		p.Published(),
		mapping.PointerToSQLNullTime(p.PublishedAt()),
		p.UpdatedAt(),
	}

	where := []string{fmt.Sprintf("id = $%d", len(values)+1)}
	values = append(values, p.ID().String())
	where, values, err = repo.ScopeFilters(ctx, "tenant_id", where, values)
	if err != nil {
		return nil, err
	}

	query := repo.Update("blog_posts", fields, where[0])
	for _, cond := range where[1:] {
		query += " AND " + cond
	}
	if _, err := tx.Exec(ctx, query, values...); err != nil {
		return nil, errors.Wrap(err, "failed to update blog post")
	}
	return g.GetByID(ctx, p.ID())
}

func (g *PgBlogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	where, args, err := repo.ScopeFilters(ctx, "tenant_id", []string{"id = $1"}, []interface{}{id.String()})
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, repo.Join("DELETE FROM blog_posts", repo.JoinWhere(where...)), args...)
	return errors.Wrap(err, "failed to delete blog post")
}

func (g *PgBlogPostRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*blogpost.Post, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var posts []*blogpost.Post
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(
			&p.ID,
			&p.TenantID,
			&p.Title,
			&p.Slug,
			&p.Body,
			&p.CoverURL,
			&p.Published,
			&p.PublishedAt,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan blog post row")
		}
		entity, err := toDomainPost(&p)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map blog post row")
		}
		posts = append(posts, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return posts, nil
}
