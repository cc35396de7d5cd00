package order

import (
	"context"

	"github.com/google/uuid"
)

type FindParams struct {
	Limit  int
	Offset int
	Status Status
	Search string
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetByNumber(ctx context.Context, number int64) (*Order, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]*Order, error)
	Count(ctx context.Context, params *FindParams) (int64, error)
	Create(ctx context.Context, o *Order) (*Order, error)
	Update(ctx context.Context, o *Order) (*Order, error)
}
