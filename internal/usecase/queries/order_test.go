//go:build unit

package queries_test

import (
	"context"
	"testing"

	"flatcart/internal/infra"
	"flatcart/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderReadStore struct {
	byNumber func(int64) (*queries.OrderView, error)
	byUser   func(string) ([]*queries.OrderView, error)
}

func (s *stubOrderReadStore) FindByNumber(_ context.Context, n int64) (*queries.OrderView, error) {
	return s.byNumber(n)
}

func (s *stubOrderReadStore) FindByUser(_ context.Context, u string) ([]*queries.OrderView, error) {
	return s.byUser(u)
}

func TestOrderQueries_GetByNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row maps to the not-found sentinel", func(t *testing.T) {
		q := queries.NewOrderQueries(&stubOrderReadStore{
			byNumber: func(int64) (*queries.OrderView, error) {
				return nil, infra.WrapStoreErr(infra.KindNotFound, "order not found", nil)
			},
		})

		_, err := q.GetByNumber(ctx, 42)
		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	})

	t.Run("io failure passes through untouched", func(t *testing.T) {
		q := queries.NewOrderQueries(&stubOrderReadStore{
			byNumber: func(int64) (*queries.OrderView, error) {
				return nil, infra.WrapStoreErr(infra.KindIOFailure, "failed to open orders.csv", nil)
			},
		})

		_, err := q.GetByNumber(ctx, 42)
		require.Error(t, err)
		assert.NotErrorIs(t, err, queries.ErrOrderNotFound)
		assert.True(t, infra.IsKind(err, infra.KindIOFailure))
	})

	t.Run("found row is returned as is", func(t *testing.T) {
		want := &queries.OrderView{OrderID: "id-1", Number: 42, UserID: "u1"}
		q := queries.NewOrderQueries(&stubOrderReadStore{
			byNumber: func(n int64) (*queries.OrderView, error) {
				require.Equal(t, int64(42), n)
				return want, nil
			},
		})

		got, err := q.GetByNumber(ctx, 42)
		require.NoError(t, err)
		assert.Same(t, want, got)
	})
}

type stubCartReadStore struct {
	byUser func(string) (*queries.CartView, error)
}

func (s *stubCartReadStore) FindByUser(_ context.Context, u string) (*queries.CartView, error) {
	return s.byUser(u)
}

func TestCartQueries_GetByUser(t *testing.T) {
	t.Run("missing row maps to the not-found sentinel", func(t *testing.T) {
		q := queries.NewCartQueries(&stubCartReadStore{
			byUser: func(string) (*queries.CartView, error) {
				return nil, infra.WrapStoreErr(infra.KindNotFound, "cart not found", nil)
			},
		})

		_, err := q.GetByUser(context.Background(), "ghost")
		assert.ErrorIs(t, err, queries.ErrCartNotFound)
	})
}
