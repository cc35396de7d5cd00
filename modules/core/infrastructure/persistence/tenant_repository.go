package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/core/domain/entities/tenant"
	"github.com/storo-shop/backend/modules/core/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/mapping"
)

var (
	ErrTenantNotFound = fmt.Errorf("tenant not found")
)

const (
	tenantFindQuery = `
		SELECT id, name, subdomain, custom_domain, plan, trial_ends_at, blocked, contact_email, contact_phone, created_at, updated_at
		FROM tenants`
)

// TenantRepository is the tenant directory. It is the one repository that is
// not tenant-scoped: its rows are the tenants themselves.
type TenantRepository struct{}

func NewTenantRepository() tenant.Repository {
	return &TenantRepository{}
}

func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	query := tenantFindQuery + " WHERE id = $1"
	tenants, err := r.queryTenants(ctx, query, id.String())
	if err != nil {
		return nil, err
	}

	if len(tenants) == 0 {
		return nil, ErrTenantNotFound
	}

	return tenants[0], nil
}

func (r *TenantRepository) GetByCustomDomain(ctx context.Context, domain string) (*tenant.Tenant, error) {
	query := tenantFindQuery + " WHERE custom_domain = $1"
	tenants, err := r.queryTenants(ctx, query, strings.ToLower(strings.TrimSpace(domain)))
	if err != nil {
		return nil, err
	}

	if len(tenants) == 0 {
		return nil, ErrTenantNotFound
	}

	return tenants[0], nil
}

func (r *TenantRepository) GetBySubdomain(ctx context.Context, label string) (*tenant.Tenant, error) {
	query := tenantFindQuery + " WHERE subdomain = $1"
	tenants, err := r.queryTenants(ctx, query, strings.ToLower(strings.TrimSpace(label)))
	if err != nil {
		return nil, err
	}

	if len(tenants) == 0 {
		return nil, ErrTenantNotFound
	}

	return tenants[0], nil
}

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	query := `
		INSERT INTO tenants (id, name, subdomain, custom_domain, plan, trial_ends_at, blocked, contact_email, contact_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var idStr string
	if err := tx.QueryRow(
		ctx,
		query,
		t.ID().String(),
		t.Name(),
		mapping.ValueToSQLNullString(strings.ToLower(strings.TrimSpace(t.Subdomain()))),
		mapping.ValueToSQLNullString(strings.ToLower(strings.TrimSpace(t.CustomDomain()))),
		string(t.Plan()),
		mapping.PointerToSQLNullTime(t.TrialEndsAt()),
		t.Blocked(),
		mapping.ValueToSQLNullString(t.ContactEmail()),
		mapping.ValueToSQLNullString(t.ContactPhone()),
		t.CreatedAt(),
		t.UpdatedAt(),
	).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert tenant")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	query := `
		UPDATE tenants
		SET name = $1, subdomain = $2, custom_domain = $3, plan = $4, trial_ends_at = $5, blocked = $6, contact_email = $7, contact_phone = $8, updated_at = $9
		WHERE id = $10
		RETURNING id
	`
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var idStr string
	if err := tx.QueryRow(
		ctx,
		query,
		t.Name(),
		mapping.ValueToSQLNullString(strings.ToLower(strings.TrimSpace(t.Subdomain()))),
		mapping.ValueToSQLNullString(strings.ToLower(strings.TrimSpace(t.CustomDomain()))),
		string(t.Plan()),
		mapping.PointerToSQLNullTime(t.TrialEndsAt()),
		t.Blocked(),
		mapping.ValueToSQLNullString(t.ContactEmail()),
		mapping.ValueToSQLNullString(t.ContactPhone()),
		t.UpdatedAt(),
		t.ID().String(),
	).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to update tenant")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *TenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	return r.queryTenants(ctx, tenantFindQuery+" ORDER BY created_at")
}

func (r *TenantRepository) queryTenants(ctx context.Context, query string, args ...interface{}) ([]*tenant.Tenant, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var tenants []*tenant.Tenant
	for rows.Next() {
		var t models.Tenant
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Subdomain,
			&t.CustomDomain,
			&t.Plan,
			&t.TrialEndsAt,
			&t.Blocked,
			&t.ContactEmail,
			&t.ContactPhone,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan tenant row")
		}
		entity, err := toDomainTenant(&t)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map tenant row")
		}
		tenants = append(tenants, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return tenants, nil
}
