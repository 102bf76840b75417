package queries

import (
	"context"
	"encoding/json"
	"errors"

	"flatcart/internal/infra"
	"flatcart/internal/pkg/errs"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderView is the read-side projection of one stored order row.
type OrderView struct {
	OrderID      string          `json:"order_id"`
	Number       int64           `json:"orderNumber"`
	UserID       string          `json:"userId"`
	Items        json.RawMessage `json:"items"`
	Total        float64         `json:"total"`
	CustomerInfo json.RawMessage `json:"customerInfo"`
	OrderDate    string          `json:"orderDate"`
}

type OrderReadStore interface {
	FindByNumber(ctx context.Context, number int64) (*OrderView, error)
	FindByUser(ctx context.Context, userID string) ([]*OrderView, error)
}

type OrderQueries interface {
	GetByNumber(ctx context.Context, number int64) (*OrderView, error)
	ListByUser(ctx context.Context, userID string) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByNumber(ctx context.Context, number int64) (*OrderView, error) {
	v, err := q.store.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}
	return v, nil
}

// ListByUser never reports a missing user; zero rows is an empty slice.
func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID string) ([]*OrderView, error) {
	return q.store.FindByUser(ctx, userID)
}
