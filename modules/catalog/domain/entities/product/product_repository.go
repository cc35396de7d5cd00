package product

import (
	"context"

	"github.com/google/uuid"
)

type FindParams struct {
	Limit      int
	Offset     int
	CategoryID *uuid.UUID
	Search     string
	ActiveOnly bool
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Product, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
