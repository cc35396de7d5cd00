package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/core/domain/entities/user"
	"github.com/storo-shop/backend/pkg/eventbus"
)

type UserService struct {
	repo      user.Repository
	publisher eventbus.EventBus
}

func NewUserService(repo user.Repository, publisher eventbus.EventBus) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) GetPaginated(ctx context.Context, params *user.FindParams) ([]*user.User, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *UserService) Count(ctx context.Context, params *user.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *UserService) Create(ctx context.Context, u *user.User) (*user.User, error) {
	return s.repo.Create(ctx, u)
}

func (s *UserService) Update(ctx context.Context, u *user.User) (*user.User, error) {
	return s.repo.Update(ctx, u)
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
