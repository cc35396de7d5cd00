package settings

import "context"

type Repository interface {
	// Get returns the tenant's settings row, or ErrSettingsNotFound
	// when the tenant never saved any.
	Get(ctx context.Context) (*Settings, error)
	// Save inserts or replaces the tenant's single settings row.
	Save(ctx context.Context, s *Settings) (*Settings, error)
}
