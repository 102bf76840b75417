package queries

import (
	"context"
	"encoding/json"
	"errors"

	"flatcart/internal/infra"
	"flatcart/internal/pkg/errs"
)

var ErrCartNotFound = errors.New("cart not found")

// CartView is the read-side projection of one stored cart row.
type CartView struct {
	UserID    string          `json:"user_id"`
	Items     json.RawMessage `json:"items"`
	UpdatedAt string          `json:"updated_at"`
}

type CartReadStore interface {
	FindByUser(ctx context.Context, userID string) (*CartView, error)
}

type CartQueries interface {
	GetByUser(ctx context.Context, userID string) (*CartView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) GetByUser(ctx context.Context, userID string) (*CartView, error) {
	v, err := q.store.FindByUser(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCartNotFound)
		}
		return nil, err
	}
	return v, nil
}
