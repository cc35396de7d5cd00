package persistence

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/storo-shop/backend/modules/website/domain/entities/settings"
	"github.com/storo-shop/backend/modules/website/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/mapping"
	"github.com/storo-shop/backend/pkg/repo"
)

var (
	ErrSettingsNotFound = fmt.Errorf("site settings not found")
)

const (
	settingsFindQuery = `
		SELECT s.id, s.tenant_id, s.title, s.description, s.logo_url, s.primary_color, s.accent_color,
		       s.contact_phone, s.contact_email, s.address, s.instagram, s.facebook, s.telegram, s.updated_at
		FROM site_settings s`
	settingsUpsertQuery = `
		INSERT INTO site_settings (id, tenant_id, title, description, logo_url, primary_color, accent_color,
		                           contact_phone, contact_email, address, instagram, facebook, telegram, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (tenant_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			logo_url = EXCLUDED.logo_url,
			primary_color = EXCLUDED.primary_color,
			accent_color = EXCLUDED.accent_color,
			contact_phone = EXCLUDED.contact_phone,
			contact_email = EXCLUDED.contact_email,
			address = EXCLUDED.address,
			instagram = EXCLUDED.instagram,
			facebook = EXCLUDED.facebook,
			telegram = EXCLUDED.telegram,
			updated_at = EXCLUDED.updated_at`
)

type PgSettingsRepository struct{}

func NewSettingsRepository() settings.Repository {
	return &PgSettingsRepository{}
}

func (g *PgSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	where, args, err := repo.ScopeFilters(ctx, "s.tenant_id", nil, nil)
	if err != nil {
		return nil, err
	}

	var s models.SiteSettings
	query := repo.Join(settingsFindQuery, repo.JoinWhere(where...))
	if err := tx.QueryRow(ctx, query, args...).Scan(
		&s.ID,
		&s.TenantID,
		&s.Title,
		&s.Description,
		&s.LogoURL,
		&s.PrimaryColor,
		&s.AccentColor,
		&s.ContactPhone,
		&s.ContactEmail,
		&s.Address,
		&s.Instagram,
		&s.Facebook,
		&s.Telegram,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, errors.Wrap(err, "failed to query site settings")
	}
	return toDomainSettings(&s)
}

func (g *PgSettingsRepository) Save(ctx context.Context, s *settings.Settings) (*settings.Settings, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, settingsUpsertQuery,
		s.ID().String(),
		tenantID.String(),
		s.Title(),
		mapping.ValueToSQLNullString(s.Description()),
		mapping.ValueToSQLNullString(s.LogoURL()),
		mapping.ValueToSQLNullString(s.PrimaryColor()),
		mapping.ValueToSQLNullString(s.AccentColor()),
		mapping.ValueToSQLNullString(s.ContactPhone()),
		mapping.ValueToSQLNullString(s.ContactEmail()),
		mapping.ValueToSQLNullString(s.Address()),
		mapping.ValueToSQLNullString(s.Instagram()),
		mapping.ValueToSQLNullString(s.Facebook()),
		mapping.ValueToSQLNullString(s.Telegram()),
		s.UpdatedAt(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save site settings")
	}
	return g.Get(ctx)
}
