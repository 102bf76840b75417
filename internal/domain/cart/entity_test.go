//go:build unit

package cart_test

import (
	"encoding/json"
	"testing"

	"flatcart/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCart(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c, err := cart.NewCart("u1", json.RawMessage(`[{"sku":"B","qty":1}]`))
		require.NoError(t, err)
		assert.Equal(t, "u1", c.UserID())
		assert.JSONEq(t, `[{"sku":"B","qty":1}]`, string(c.Items()))
	})

	t.Run("absent items default to an empty array", func(t *testing.T) {
		c, err := cart.NewCart("u1", nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(c.Items()))
	})

	t.Run("empty user id", func(t *testing.T) {
		_, err := cart.NewCart("", json.RawMessage(`[]`))
		assert.ErrorIs(t, err, cart.ErrEmptyUserID)
	})

	t.Run("items is not valid JSON", func(t *testing.T) {
		_, err := cart.NewCart("u1", json.RawMessage(`[broken`))
		assert.ErrorIs(t, err, cart.ErrInvalidItems)
	})

	t.Run("items is not an array", func(t *testing.T) {
		_, err := cart.NewCart("u1", json.RawMessage(`{"sku":"B"}`))
		assert.ErrorIs(t, err, cart.ErrInvalidItems)
	})
}
