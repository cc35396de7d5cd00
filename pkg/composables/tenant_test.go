package composables

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseTenant_Missing(t *testing.T) {
	_, err := UseTenant(context.Background())
	require.ErrorIs(t, err, ErrNoTenant)

	_, err = UseTenantID(context.Background())
	require.ErrorIs(t, err, ErrNoTenant)
}

func TestWithTenant_RoundTrip(t *testing.T) {
	want := &Tenant{
		ID:        uuid.New(),
		Name:      "Acme",
		Subdomain: "acme",
		Plan:      "pro",
	}
	ctx := WithTenant(context.Background(), want)

	got, err := UseTenant(ctx)
	require.NoError(t, err)
	assert.Same(t, want, got)

	id, err := UseTenantID(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.ID, id)
}

func TestWithTenantID_CarriesOnlyID(t *testing.T) {
	id := uuid.New()
	ctx := WithTenantID(context.Background(), id)

	got, err := UseTenant(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Empty(t, got.Name)
}
