package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/website/domain/entities/blogpost"
	"github.com/storo-shop/backend/modules/website/domain/entities/settings"
)

type WebsiteService struct {
	settings settings.Repository
	posts    blogpost.Repository
}

func NewWebsiteService(settingsRepo settings.Repository, postsRepo blogpost.Repository) *WebsiteService {
	return &WebsiteService{
		settings: settingsRepo,
		posts:    postsRepo,
	}
}

func (s *WebsiteService) GetSettings(ctx context.Context) (*settings.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *WebsiteService) SaveSettings(ctx context.Context, st *settings.Settings) (*settings.Settings, error) {
	return s.settings.Save(ctx, st)
}

func (s *WebsiteService) GetPostByID(ctx context.Context, id uuid.UUID) (*blogpost.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *WebsiteService) GetPostBySlug(ctx context.Context, slug string) (*blogpost.Post, error) {
	return s.posts.GetBySlug(ctx, slug)
}

func (s *WebsiteService) GetPostsPaginated(ctx context.Context, params *blogpost.FindParams) ([]*blogpost.Post, error) {
	return s.posts.GetPaginated(ctx, params)
}

func (s *WebsiteService) CountPosts(ctx context.Context, params *blogpost.FindParams) (int64, error) {
	return s.posts.Count(ctx, params)
}

func (s *WebsiteService) CreatePost(ctx context.Context, p *blogpost.Post) (*blogpost.Post, error) {
	return s.posts.Create(ctx, p)
}

func (s *WebsiteService) UpdatePost(ctx context.Context, p *blogpost.Post) (*blogpost.Post, error) {
	return s.posts.Update(ctx, p)
}

func (s *WebsiteService) DeletePost(ctx context.Context, id uuid.UUID) error {
	return s.posts.Delete(ctx, id)
}
