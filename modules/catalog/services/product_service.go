package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/catalog/domain/entities/product"
	"github.com/storo-shop/backend/pkg/eventbus"
)

type ProductService struct {
	repo      product.Repository
	publisher eventbus.EventBus
}

func NewProductService(repo product.Repository, publisher eventbus.EventBus) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *ProductService) GetPaginated(ctx context.Context, params *product.FindParams) ([]*product.Product, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *ProductService) Count(ctx context.Context, params *product.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *ProductService) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&product.CreatedEvent{Result: *created})
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, p *product.Product) (*product.Product, error) {
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&product.UpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(&product.DeletedEvent{Result: *p})
	return nil
}
