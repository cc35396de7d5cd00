package blogpost

import (
	"context"

	"github.com/google/uuid"
)

type FindParams struct {
	Limit         int
	Offset        int
	PublishedOnly bool
	Search        string
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Post, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	Create(ctx context.Context, p *Post) (*Post, error)
	Update(ctx context.Context, p *Post) (*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
