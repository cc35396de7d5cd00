package persistence

import (
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/website/domain/entities/blogpost"
	"github.com/storo-shop/backend/modules/website/domain/entities/settings"
	"github.com/storo-shop/backend/modules/website/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/mapping"
)

func toDomainSettings(s *models.SiteSettings) (*settings.Settings, error) {
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return nil, err
	}
	tenantID, err := uuid.Parse(s.TenantID)
	if err != nil {
		return nil, err
	}

	return settings.New(
		s.Title,
		settings.WithID(id),
		settings.WithTenantID(tenantID),
		settings.WithDescription(mapping.SQLNullStringToValue(s.Description)),
		settings.WithLogoURL(mapping.SQLNullStringToValue(s.LogoURL)),
		settings.WithPalette(
			mapping.SQLNullStringToValue(s.PrimaryColor),
			mapping.SQLNullStringToValue(s.AccentColor),
		),
		settings.WithContacts(
			mapping.SQLNullStringToValue(s.ContactPhone),
			mapping.SQLNullStringToValue(s.ContactEmail),
			mapping.SQLNullStringToValue(s.Address),
		),
		settings.WithSocials(
			mapping.SQLNullStringToValue(s.Instagram),
			mapping.SQLNullStringToValue(s.Facebook),
			mapping.SQLNullStringToValue(s.Telegram),
		),
		settings.WithUpdatedAt(s.UpdatedAt),
	), nil
}

func toDomainPost(p *models.BlogPost) (*blogpost.Post, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil, err
	}
	tenantID, err := uuid.Parse(p.TenantID)
	if err != nil {
		return nil, err
	}

	return blogpost.New(
		p.Title,
		p.Slug,
		p.Body,
		blogpost.WithID(id),
		blogpost.WithTenantID(tenantID),
		blogpost.WithCoverURL(mapping.SQLNullStringToValue(p.CoverURL)),
		blogpost.WithPublished(p.Published, mapping.SQLNullTimeToPointer(p.PublishedAt)),
		blogpost.WithCreatedAt(p.CreatedAt),
		blogpost.WithUpdatedAt(p.UpdatedAt),
	), nil
}
