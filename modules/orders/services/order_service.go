package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/orders/domain/entities/order"
	"github.com/storo-shop/backend/pkg/eventbus"
	"github.com/storo-shop/backend/pkg/serrors"
)

var ErrUnknownStatus = serrors.NewError("ORDER_UNKNOWN_STATUS", "unknown order status", "")

type OrderService struct {
	repo      order.Repository
	publisher eventbus.EventBus
}

func NewOrderService(repo order.Repository, publisher eventbus.EventBus) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrderService) GetByNumber(ctx context.Context, number int64) (*order.Order, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *OrderService) GetPaginated(ctx context.Context, params *order.FindParams) ([]*order.Order, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *OrderService) Count(ctx context.Context, params *order.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *OrderService) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&order.CreatedEvent{Result: *created})
	return created, nil
}

// SetStatus moves the order through its status machine. The transition
// check lives on the entity; this only loads, transitions and saves.
func (s *OrderService) SetStatus(ctx context.Context, id uuid.UUID, status order.Status) (*order.Order, error) {
	if !status.Valid() {
		return nil, ErrUnknownStatus.WithDetails(string(status))
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := o.Status()
	if err := o.Transition(status); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, o)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&order.StatusChangedEvent{Previous: previous, Result: *updated})
	return updated, nil
}

func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return s.SetStatus(ctx, id, order.StatusCancelled)
}
