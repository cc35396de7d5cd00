package composables

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/storo-shop/backend/pkg/constants"
)

var ErrNoTenant = errors.New("tenant not found in context")

// Tenant is the request-scoped snapshot of the resolved tenant. It is a
// plain struct (not the domain entity) so low-level packages can depend on
// it without importing module code.
type Tenant struct {
	ID           uuid.UUID
	Name         string
	Subdomain    string
	CustomDomain string
	Plan         string
	Blocked      bool
}

func WithTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, constants.TenantKey, t)
}

func WithTenantID(ctx context.Context, id uuid.UUID) context.Context {
	return WithTenant(ctx, &Tenant{ID: id})
}

func UseTenant(ctx context.Context) (*Tenant, error) {
	t, ok := ctx.Value(constants.TenantKey).(*Tenant)
	if !ok || t == nil {
		return nil, ErrNoTenant
	}
	return t, nil
}

func UseTenantID(ctx context.Context) (uuid.UUID, error) {
	t, err := UseTenant(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return t.ID, nil
}
