package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/catalog/domain/entities/category"
)

type CategoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *CategoryService) GetPaginated(ctx context.Context, params *category.FindParams) ([]*category.Category, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *CategoryService) Count(ctx context.Context, params *category.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *CategoryService) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	return s.repo.Create(ctx, c)
}

func (s *CategoryService) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	return s.repo.Update(ctx, c)
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
