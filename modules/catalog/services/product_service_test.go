package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storo-shop/backend/modules/catalog/domain/entities/product"
	"github.com/storo-shop/backend/modules/catalog/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/catalog/services"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/itf"
)

func TestProductService_CRUD(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.ProductService](env)

	created, err := svc.Create(env.Ctx, product.New("Americano", "americano", 15000, "UAH",
		product.WithSKU("COF-001"),
		product.WithStock(10),
	))
	require.NoError(t, err)
	assert.Equal(t, env.Tenant.ID, created.TenantID())

	bySlug, err := svc.GetBySlug(env.Ctx, "americano")
	require.NoError(t, err)
	assert.Equal(t, created.ID(), bySlug.ID())
	assert.Equal(t, int64(15000), bySlug.PriceMinor())

	items, err := svc.GetPaginated(env.Ctx, &product.FindParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.Delete(env.Ctx, created.ID()))
	_, err = svc.GetByID(env.Ctx, created.ID())
	assert.ErrorIs(t, err, persistence.ErrProductNotFound)
}

func TestProductService_TenantIsolation(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.ProductService](env)

	_, err := svc.Create(env.Ctx, product.New("Latte", "latte", 18000, "UAH"))
	require.NoError(t, err)

	other, err := itf.CreateTestTenant(env.Ctx, env.Pool)
	require.NoError(t, err)
	otherCtx := composables.WithTenant(env.Ctx, other)

	_, err = svc.GetBySlug(otherCtx, "latte")
	assert.ErrorIs(t, err, persistence.ErrProductNotFound)

	count, err := svc.Count(otherCtx, &product.FindParams{})
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = svc.Count(env.Ctx, &product.FindParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestProductService_SearchAndActiveFilter(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.ProductService](env)

	_, err := svc.Create(env.Ctx, product.New("Flat White", "flat-white", 17000, "UAH"))
	require.NoError(t, err)
	_, err = svc.Create(env.Ctx, product.New("Old Blend", "old-blend", 9000, "UAH",
		product.WithActive(false)))
	require.NoError(t, err)

	found, err := svc.GetPaginated(env.Ctx, &product.FindParams{Limit: 10, Search: "flat"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "flat-white", found[0].Slug())

	active, err := svc.GetPaginated(env.Ctx, &product.FindParams{Limit: 10, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "flat-white", active[0].Slug())
}
