package csvstore

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"flatcart/internal/domain/order"
	"flatcart/internal/infra"
	"flatcart/internal/pkg/clock"
	"flatcart/internal/pkg/config"
	"flatcart/internal/usecase/queries"

	"github.com/google/uuid"
)

// OrderStore is an append-only log of orders over one CSV file. Rows are
// never rewritten or deleted; lookups are linear scans in file order.
//
// The mutex serializes operations within this process only. A second
// process writing the same file is not guarded against (single-writer
// assumption, inherited from the storage format).
type OrderStore struct {
	path   string
	clock  clock.Clock
	logger *slog.Logger

	mu sync.Mutex
}

func NewOrderStore(cfg config.StorageConfig, clk clock.Clock, logger *slog.Logger) (*OrderStore, error) {
	path := cfg.OrdersPath()
	if err := ensureFile(path, orderHeader); err != nil {
		return nil, err
	}
	return &OrderStore{path: path, clock: clk, logger: logger}, nil
}

// Append assigns the generated order id and the default order date, then
// writes exactly one row. Existing rows are never touched.
func (s *OrderStore) Append(_ context.Context, o *order.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := &queries.OrderView{
		OrderID:      uuid.NewString(),
		Number:       o.Number(),
		UserID:       o.UserID(),
		Items:        o.Items(),
		Total:        o.Total(),
		CustomerInfo: o.CustomerInfo(),
		OrderDate:    o.OrderDate(),
	}
	if v.OrderDate == "" {
		v.OrderDate = s.clock.Now().UTC().Format(time.RFC3339)
	}

	if err := appendRow(s.path, encodeOrderRow(v)); err != nil {
		return "", err
	}
	s.logger.Debug("order appended", "order_id", v.OrderID, "order_number", v.Number)
	return v.OrderID, nil
}

// FindByNumber compares numerically, so "007" in a row matches 7. Duplicate
// numbers are tolerated: the first row in file order wins.
func (s *OrderStore) FindByNumber(_ context.Context, number int64) (*queries.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := readRows(s.path)
	if err != nil {
		return nil, err
	}
	for _, rec := range rows {
		if len(rec) != len(orderHeader) {
			return nil, infra.WrapStoreErr(infra.KindFormatFailure, "order row has wrong field count", nil)
		}
		n, err := strconv.ParseInt(rec[orderColNumber], 10, 64)
		if err != nil {
			return nil, infra.WrapStoreErr(infra.KindFormatFailure, "malformed order number", err)
		}
		if n == number {
			return decodeOrderRow(rec)
		}
	}
	return nil, infra.WrapStoreErr(infra.KindNotFound, "order not found", nil)
}

// FindByUser returns the user's orders sorted by order date descending.
// Zero matches is an empty slice, never an error.
func (s *OrderStore) FindByUser(_ context.Context, userID string) ([]*queries.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := readRows(s.path)
	if err != nil {
		return nil, err
	}

	matched := make([]*queries.OrderView, 0)
	for _, rec := range rows {
		if len(rec) != len(orderHeader) {
			return nil, infra.WrapStoreErr(infra.KindFormatFailure, "order row has wrong field count", nil)
		}
		if rec[orderColUser] != userID {
			continue
		}
		v, err := decodeOrderRow(rec)
		if err != nil {
			return nil, err
		}
		matched = append(matched, v)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].OrderDate > matched[j].OrderDate
	})
	return matched, nil
}
