package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storo-shop/backend/modules/orders/domain/entities/order"
)

func TestOrder_Transition_HappyPath(t *testing.T) {
	o := order.New("Olena", "+380501112233")
	require.Equal(t, order.StatusNew, o.Status())

	require.NoError(t, o.Transition(order.StatusProcessing))
	require.NoError(t, o.Transition(order.StatusShipped))
	require.NoError(t, o.Transition(order.StatusDelivered))
	assert.Equal(t, order.StatusDelivered, o.Status())
}

func TestOrder_Transition_RejectsSkips(t *testing.T) {
	cases := []struct {
		name string
		from order.Status
		to   order.Status
	}{
		{"new to shipped", order.StatusNew, order.StatusShipped},
		{"new to delivered", order.StatusNew, order.StatusDelivered},
		{"processing to delivered", order.StatusProcessing, order.StatusDelivered},
		{"delivered to processing", order.StatusDelivered, order.StatusProcessing},
		{"shipped back to new", order.StatusShipped, order.StatusNew},
		{"cancelled to processing", order.StatusCancelled, order.StatusProcessing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := order.New("Olena", "+380501112233", order.WithStatus(tc.from))
			err := o.Transition(tc.to)
			require.Error(t, err)

			var invalid *order.InvalidTransitionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.from, invalid.From)
			assert.Equal(t, tc.to, invalid.To)
			assert.Equal(t, tc.from, o.Status(), "failed transition must not change status")
		})
	}
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("before shipping", func(t *testing.T) {
		o := order.New("Olena", "+380501112233")
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())

		o = order.New("Olena", "+380501112233", order.WithStatus(order.StatusProcessing))
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("after shipping", func(t *testing.T) {
		o := order.New("Olena", "+380501112233", order.WithStatus(order.StatusShipped))
		require.Error(t, o.Cancel())
		assert.Equal(t, order.StatusShipped, o.Status())

		o = order.New("Olena", "+380501112233", order.WithStatus(order.StatusDelivered))
		require.Error(t, o.Cancel())
	})
}

func TestOrder_TotalMinor(t *testing.T) {
	o := order.New("Olena", "+380501112233", order.WithItems([]order.Item{
		{Name: "Mug", PriceMinor: 25000, Quantity: 2},
		{Name: "Poster", PriceMinor: 40000, Quantity: 1},
	}))
	assert.Equal(t, int64(90000), o.TotalMinor())
}
