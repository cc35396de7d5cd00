package tenant

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the tenant directory. Lookups that find nothing return
// persistence.ErrTenantNotFound; infrastructure faults surface as wrapped
// driver errors so callers can tell a miss from an outage.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	GetByCustomDomain(ctx context.Context, domain string) (*Tenant, error)
	GetBySubdomain(ctx context.Context, label string) (*Tenant, error)
	Create(ctx context.Context, t *Tenant) (*Tenant, error)
	Update(ctx context.Context, t *Tenant) (*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
}
