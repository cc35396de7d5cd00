package repo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storo-shop/backend/pkg/composables"
)

func TestScopeFilters_InjectsAmbientTenant(t *testing.T) {
	tenantID := uuid.New()
	ctx := composables.WithTenantID(context.Background(), tenantID)

	conds := []string{"p.slug = $1"}
	args := []any{"blue-mug"}

	conds, args, err := ScopeFilters(ctx, "p.tenant_id", conds, args)
	require.NoError(t, err)
	require.Len(t, conds, 2)
	assert.Equal(t, "p.tenant_id = $2", conds[1])
	require.Len(t, args, 2)
	assert.Equal(t, tenantID, args[1])
}

func TestScopeFilters_ByPrimaryKeyStillScoped(t *testing.T) {
	tenantID := uuid.New()
	ctx := composables.WithTenantID(context.Background(), tenantID)

	conds, args, err := ScopeFilters(ctx, "tenant_id", []string{"id = $1"}, []any{uuid.New()})
	require.NoError(t, err)
	require.Len(t, conds, 2)
	assert.Equal(t, "tenant_id = $2", conds[1])
	assert.Equal(t, tenantID, args[1])
}

func TestScopeFilters_ExplicitConstraintWins(t *testing.T) {
	// An explicit tenant filter in the query must not be overwritten by the
	// ambient one, even when they differ.
	explicit := uuid.New()
	ambient := uuid.New()
	ctx := composables.WithTenantID(context.Background(), ambient)

	conds := []string{"tenant_id = $1"}
	args := []any{explicit}

	conds, args, err := ScopeFilters(ctx, "tenant_id", conds, args)
	require.NoError(t, err)
	assert.Len(t, conds, 1)
	assert.Len(t, args, 1)
	assert.Equal(t, explicit, args[0])
}

func TestScopeFilters_NoScopeIsHardError(t *testing.T) {
	_, _, err := ScopeFilters(context.Background(), "tenant_id", []string{"id = $1"}, []any{1})
	require.ErrorIs(t, err, ErrNoTenantScope)
}

func TestScopeInsert_StampsAmbientTenant(t *testing.T) {
	tenantID := uuid.New()
	ctx := composables.WithTenantID(context.Background(), tenantID)

	fields := []string{"name", "slug"}
	values := []any{"Blue Mug", "blue-mug"}

	fields, values, err := ScopeInsert(ctx, fields, values)
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, TenantColumn, fields[2])
	assert.Equal(t, tenantID, values[2])
}

func TestScopeInsert_ExplicitTenantKept(t *testing.T) {
	explicit := uuid.New()
	ctx := composables.WithTenantID(context.Background(), uuid.New())

	fields := []string{"name", "tenant_id"}
	values := []any{"Blue Mug", explicit}

	fields, values, err := ScopeInsert(ctx, fields, values)
	require.NoError(t, err)
	assert.Len(t, fields, 2)
	assert.Equal(t, explicit, values[1])
}

func TestScopeInsert_NoScopeIsHardError(t *testing.T) {
	_, _, err := ScopeInsert(context.Background(), []string{"name"}, []any{"x"})
	require.ErrorIs(t, err, ErrNoTenantScope)
}
