package category

import (
	"context"

	"github.com/google/uuid"
)

type FindParams struct {
	Limit    int
	Offset   int
	ParentID *uuid.UUID
	Search   string
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Category, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	Create(ctx context.Context, c *Category) (*Category, error)
	Update(ctx context.Context, c *Category) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
