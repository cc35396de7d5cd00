package persistence

import (
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/core/domain/entities/tenant"
	"github.com/storo-shop/backend/modules/core/domain/entities/user"
	"github.com/storo-shop/backend/modules/core/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/mapping"
)

func toDomainTenant(t *models.Tenant) (*tenant.Tenant, error) {
	id, err := uuid.Parse(t.ID)
	if err != nil {
		return nil, err
	}

	return tenant.New(
		t.Name,
		tenant.WithID(id),
		tenant.WithSubdomain(mapping.SQLNullStringToValue(t.Subdomain)),
		tenant.WithCustomDomain(mapping.SQLNullStringToValue(t.CustomDomain)),
		tenant.WithPlan(tenant.Plan(t.Plan)),
		tenant.WithTrialEndsAt(mapping.SQLNullTimeToPointer(t.TrialEndsAt)),
		tenant.WithBlocked(t.Blocked),
		tenant.WithContactEmail(mapping.SQLNullStringToValue(t.ContactEmail)),
		tenant.WithContactPhone(mapping.SQLNullStringToValue(t.ContactPhone)),
		tenant.WithCreatedAt(t.CreatedAt),
		tenant.WithUpdatedAt(t.UpdatedAt),
	), nil
}

func toDomainUser(u *models.User) (*user.User, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, err
	}
	tenantID, err := uuid.Parse(u.TenantID)
	if err != nil {
		return nil, err
	}

	return user.New(
		u.Email,
		user.WithID(id),
		user.WithTenantID(tenantID),
		user.WithPasswordHash(mapping.SQLNullStringToValue(u.PasswordHash)),
		user.WithName(
			mapping.SQLNullStringToValue(u.FirstName),
			mapping.SQLNullStringToValue(u.LastName),
		),
		user.WithRole(user.Role(u.Role)),
		user.WithLastLoginAt(mapping.SQLNullTimeToPointer(u.LastLoginAt)),
		user.WithCreatedAt(u.CreatedAt),
		user.WithUpdatedAt(u.UpdatedAt),
	), nil
}
