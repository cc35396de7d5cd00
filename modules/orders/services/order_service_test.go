package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storo-shop/backend/modules/orders/domain/entities/order"
	"github.com/storo-shop/backend/modules/orders/services"
	"github.com/storo-shop/backend/pkg/itf"
)

func newTestOrder() *order.Order {
	return order.New("Olena", "+380501112233",
		order.WithCurrency("UAH"),
		order.WithItems([]order.Item{
			{ProductID: uuid.New(), Name: "Americano", PriceMinor: 15000, Quantity: 2},
			{ProductID: uuid.New(), Name: "Croissant", PriceMinor: 9000, Quantity: 1},
		}),
	)
}

func TestOrderService_Create_AssignsSequentialNumbers(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.OrderService](env)

	first, err := svc.Create(env.Ctx, newTestOrder())
	require.NoError(t, err)
	second, err := svc.Create(env.Ctx, newTestOrder())
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Number())
	assert.Equal(t, int64(2), second.Number())
	assert.Equal(t, order.StatusNew, first.Status())
	assert.Equal(t, int64(39000), first.TotalMinor())

	byNumber, err := svc.GetByNumber(env.Ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, second.ID(), byNumber.ID())
	require.Len(t, byNumber.Items(), 2)
}

func TestOrderService_SetStatus(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.OrderService](env)

	created, err := svc.Create(env.Ctx, newTestOrder())
	require.NoError(t, err)

	processing, err := svc.SetStatus(env.Ctx, created.ID(), order.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, processing.Status())

	_, err = svc.SetStatus(env.Ctx, created.ID(), order.StatusDelivered)
	var invalid *order.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, order.StatusProcessing, invalid.From)
	assert.Equal(t, order.StatusDelivered, invalid.To)

	_, err = svc.SetStatus(env.Ctx, created.ID(), order.Status("teleported"))
	assert.ErrorIs(t, err, services.ErrUnknownStatus)
}

func TestOrderService_Cancel(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.OrderService](env)

	created, err := svc.Create(env.Ctx, newTestOrder())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(env.Ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, cancelled.Status())

	shipped, err := svc.Create(env.Ctx, newTestOrder())
	require.NoError(t, err)
	_, err = svc.SetStatus(env.Ctx, shipped.ID(), order.StatusProcessing)
	require.NoError(t, err)
	_, err = svc.SetStatus(env.Ctx, shipped.ID(), order.StatusShipped)
	require.NoError(t, err)

	_, err = svc.Cancel(env.Ctx, shipped.ID())
	var invalid *order.InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
}
