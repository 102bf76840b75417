//go:build unit

package order_test

import (
	"encoding/json"
	"testing"

	"flatcart/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		o, err := order.NewOrder(1001, "u1", json.RawMessage(`[{"sku":"A","qty":2}]`), 19.99, json.RawMessage(`{"name":"Alice"}`), "2024-01-01T00:00:00")
		require.NoError(t, err)

		assert.Equal(t, int64(1001), o.Number())
		assert.Equal(t, "u1", o.UserID())
		assert.JSONEq(t, `[{"sku":"A","qty":2}]`, string(o.Items()))
		assert.Equal(t, 19.99, o.Total())
		assert.JSONEq(t, `{"name":"Alice"}`, string(o.CustomerInfo()))
		assert.Equal(t, "2024-01-01T00:00:00", o.OrderDate())
	})

	t.Run("absent nested fields default to empty documents", func(t *testing.T) {
		o, err := order.NewOrder(1, "u1", nil, 0, nil, "")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(o.Items()))
		assert.Equal(t, "{}", string(o.CustomerInfo()))

		o, err = order.NewOrder(1, "u1", json.RawMessage(`null`), 0, json.RawMessage(`null`), "")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(o.Items()))
		assert.Equal(t, "{}", string(o.CustomerInfo()))
	})

	testCases := []struct {
		name  string
		build func() (*order.Order, error)
		errIs error
	}{
		{
			name: "zero order number",
			build: func() (*order.Order, error) {
				return order.NewOrder(0, "u1", nil, 0, nil, "")
			},
			errIs: order.ErrInvalidOrderNumber,
		},
		{
			name: "negative order number",
			build: func() (*order.Order, error) {
				return order.NewOrder(-5, "u1", nil, 0, nil, "")
			},
			errIs: order.ErrInvalidOrderNumber,
		},
		{
			name: "empty user id",
			build: func() (*order.Order, error) {
				return order.NewOrder(1, "", nil, 0, nil, "")
			},
			errIs: order.ErrEmptyUserID,
		},
		{
			name: "negative total",
			build: func() (*order.Order, error) {
				return order.NewOrder(1, "u1", nil, -0.01, nil, "")
			},
			errIs: order.ErrNegativeTotal,
		},
		{
			name: "items is not valid JSON",
			build: func() (*order.Order, error) {
				return order.NewOrder(1, "u1", json.RawMessage(`[{"sku":`), 0, nil, "")
			},
			errIs: order.ErrInvalidItems,
		},
		{
			name: "items is not an array",
			build: func() (*order.Order, error) {
				return order.NewOrder(1, "u1", json.RawMessage(`{"sku":"A"}`), 0, nil, "")
			},
			errIs: order.ErrInvalidItems,
		},
		{
			name: "customer info is not an object",
			build: func() (*order.Order, error) {
				return order.NewOrder(1, "u1", nil, 0, json.RawMessage(`["Alice"]`), "")
			},
			errIs: order.ErrInvalidCustomerInfo,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
