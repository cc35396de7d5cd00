package dtos

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/website/domain/entities/blogpost"
	"github.com/storo-shop/backend/modules/website/domain/entities/settings"
)

var Validate = validator.New()

type SaveSettingsRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description"`
	LogoURL      string `json:"logoUrl" validate:"omitempty,url"`
	PrimaryColor string `json:"primaryColor" validate:"omitempty,hexcolor"`
	AccentColor  string `json:"accentColor" validate:"omitempty,hexcolor"`
	ContactPhone string `json:"contactPhone" validate:"max=32"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	Address      string `json:"address"`
	Instagram    string `json:"instagram" validate:"max=255"`
	Facebook     string `json:"facebook" validate:"max=255"`
	Telegram     string `json:"telegram" validate:"max=255"`
}

type SettingsResponse struct {
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	PrimaryColor string    `json:"primaryColor,omitempty"`
	AccentColor  string    `json:"accentColor,omitempty"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	Address      string    `json:"address,omitempty"`
	Instagram    string    `json:"instagram,omitempty"`
	Facebook     string    `json:"facebook,omitempty"`
	Telegram     string    `json:"telegram,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewSettingsResponse(s *settings.Settings) *SettingsResponse {
	return &SettingsResponse{
		Title:        s.Title(),
		Description:  s.Description(),
		LogoURL:      s.LogoURL(),
		PrimaryColor: s.PrimaryColor(),
		AccentColor:  s.AccentColor(),
		ContactPhone: s.ContactPhone(),
		ContactEmail: s.ContactEmail(),
		Address:      s.Address(),
		Instagram:    s.Instagram(),
		Facebook:     s.Facebook(),
		Telegram:     s.Telegram(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

type CreatePostRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	Slug      string `json:"slug" validate:"required,max=255"`
	Body      string `json:"body" validate:"required"`
	CoverURL  string `json:"coverUrl" validate:"omitempty,url"`
	Published bool   `json:"published"`
}

type UpdatePostRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	Slug      string `json:"slug" validate:"required,max=255"`
	Body      string `json:"body" validate:"required"`
	CoverURL  string `json:"coverUrl" validate:"omitempty,url"`
	Published *bool  `json:"published"`
}

type PostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	CoverURL    string     `json:"coverUrl,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewPostResponse(p *blogpost.Post) *PostResponse {
	return &PostResponse{
		ID:          p.ID(),
		Title:       p.Title(),
		Slug:        p.Slug(),
		Body:        p.Body(),
		CoverURL:    p.CoverURL(),
		Published:   p.Published(),
		PublishedAt: p.PublishedAt(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func NewPostListResponse(posts []*blogpost.Post) []*PostResponse {
	out := make([]*PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}
