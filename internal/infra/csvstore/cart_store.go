package csvstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"flatcart/internal/domain/cart"
	"flatcart/internal/infra"
	"flatcart/internal/pkg/clock"
	"flatcart/internal/pkg/config"
	"flatcart/internal/usecase/queries"
)

// CartStore keeps at most one row per user over one CSV file. Because row
// lengths vary with the serialized items, an upsert rewrites the whole file
// rather than patching in place.
//
// The mutex serializes operations within this process only; a crash during
// the rewrite can leave the file truncated (no recovery is attempted).
type CartStore struct {
	path   string
	clock  clock.Clock
	logger *slog.Logger

	mu sync.Mutex
}

func NewCartStore(cfg config.StorageConfig, clk clock.Clock, logger *slog.Logger) (*CartStore, error) {
	path := cfg.CartsPath()
	if err := ensureFile(path, cartHeader); err != nil {
		return nil, err
	}
	return &CartStore{path: path, clock: clk, logger: logger}, nil
}

// Upsert replaces the user's row or appends a new one, stamping updated_at
// either way. Rows of other users are carried through verbatim.
func (s *CartStore) Upsert(_ context.Context, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := readRows(s.path)
	if err != nil {
		return err
	}

	now := s.clock.Now().UTC().Format(time.RFC3339)
	updated := false
	for _, rec := range rows {
		if len(rec) != len(cartHeader) {
			return infra.WrapStoreErr(infra.KindFormatFailure, "cart row has wrong field count", nil)
		}
		if rec[cartColUser] == c.UserID() {
			rec[1] = string(c.Items())
			rec[2] = now
			updated = true
			break
		}
	}
	if !updated {
		rows = append(rows, encodeCartRow(&queries.CartView{
			UserID:    c.UserID(),
			Items:     c.Items(),
			UpdatedAt: now,
		}))
	}

	if err := writeRows(s.path, cartHeader, rows); err != nil {
		return err
	}
	s.logger.Debug("cart saved", "user_id", c.UserID())
	return nil
}

func (s *CartStore) FindByUser(_ context.Context, userID string) (*queries.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := readRows(s.path)
	if err != nil {
		return nil, err
	}
	for _, rec := range rows {
		if len(rec) != len(cartHeader) {
			return nil, infra.WrapStoreErr(infra.KindFormatFailure, "cart row has wrong field count", nil)
		}
		if rec[cartColUser] == userID {
			return decodeCartRow(rec)
		}
	}
	return nil, infra.WrapStoreErr(infra.KindNotFound, "cart not found", nil)
}
