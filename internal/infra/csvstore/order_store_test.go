//go:build unit

package csvstore_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"flatcart/internal/domain/order"
	"flatcart/internal/infra"
	"flatcart/internal/infra/csvstore"
	"flatcart/internal/pkg/clock"
	"flatcart/internal/pkg/config"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storageConfig(t *testing.T) config.StorageConfig {
	t.Helper()
	return config.StorageConfig{
		DataDir:    t.TempDir(),
		OrdersFile: "orders.csv",
		CartsFile:  "carts.csv",
	}
}

func newOrderStore(t *testing.T) (*csvstore.OrderStore, config.StorageConfig, *clock.MockClock) {
	t.Helper()
	cfg := storageConfig(t)
	clk := clock.NewMockClock(fixedTime)
	store, err := csvstore.NewOrderStore(cfg, clk, discardLogger())
	require.NoError(t, err)
	return store, cfg, clk
}

func mustOrder(t *testing.T, number int64, userID, items string, total float64, info, date string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(number, userID, json.RawMessage(items), total, json.RawMessage(info), date)
	require.NoError(t, err)
	return o
}

func asAny(t *testing.T, raw json.RawMessage) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

// appendRawLine sneaks a row past the codec, emulating an external writer
// or a corrupted file.
func appendRawLine(t *testing.T, path, line string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(line + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestOrderStore_AppendThenFindByNumber(t *testing.T) {
	store, _, _ := newOrderStore(t)
	ctx := context.Background()

	o := mustOrder(t, 1001, "u1", `[{"sku":"A","qty":2}]`, 19.99, `{"name":"Alice"}`, "2024-01-01T00:00:00")
	id, err := store.Append(ctx, o)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := store.FindByNumber(ctx, 1001)
	require.NoError(t, err)

	assert.Equal(t, id, got.OrderID)
	assert.Equal(t, int64(1001), got.Number)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, 19.99, got.Total)
	assert.Equal(t, "2024-01-01T00:00:00", got.OrderDate)
	assert.Empty(t, cmp.Diff(asAny(t, json.RawMessage(`[{"sku":"A","qty":2}]`)), asAny(t, got.Items)))
	assert.Empty(t, cmp.Diff(asAny(t, json.RawMessage(`{"name":"Alice"}`)), asAny(t, got.CustomerInfo)))
}

func TestOrderStore_FindByNumber_NotFound(t *testing.T) {
	store, _, _ := newOrderStore(t)

	_, err := store.FindByNumber(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestOrderStore_FindByNumber_FirstMatchWins(t *testing.T) {
	store, _, _ := newOrderStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, mustOrder(t, 500, "first", `[]`, 1, `{}`, "2024-01-01T00:00:00"))
	require.NoError(t, err)
	_, err = store.Append(ctx, mustOrder(t, 500, "second", `[]`, 2, `{}`, "2024-02-01T00:00:00"))
	require.NoError(t, err)

	got, err := store.FindByNumber(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, "first", got.UserID)
}

func TestOrderStore_FindByNumber_ComparesNumerically(t *testing.T) {
	store, cfg, _ := newOrderStore(t)

	// zero-padded number written by another producer
	appendRawLine(t, cfg.OrdersPath(), `id-7,007,u7,[],7,{},2024-01-01T00:00:00`)

	got, err := store.FindByNumber(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "u7", got.UserID)
}

func TestOrderStore_Append_DefaultsOrderDate(t *testing.T) {
	store, _, clk := newOrderStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, mustOrder(t, 9, "u1", `[]`, 0, `{}`, ""))
	require.NoError(t, err)

	got, err := store.FindByNumber(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, clk.Now().UTC().Format(time.RFC3339), got.OrderDate)
}

func TestOrderStore_Append_GeneratesDistinctIDs(t *testing.T) {
	store, _, _ := newOrderStore(t)
	ctx := context.Background()

	first, err := store.Append(ctx, mustOrder(t, 1, "u1", `[]`, 0, `{}`, "2024-01-01T00:00:00"))
	require.NoError(t, err)
	second, err := store.Append(ctx, mustOrder(t, 2, "u1", `[]`, 0, `{}`, "2024-01-01T00:00:00"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestOrderStore_FindByUser_SortsByDateDescending(t *testing.T) {
	store, _, _ := newOrderStore(t)
	ctx := context.Background()

	dates := []string{"2024-01-01T00:00:00", "2024-03-01T00:00:00", "2024-02-01T00:00:00"}
	for i, d := range dates {
		_, err := store.Append(ctx, mustOrder(t, int64(100+i), "u1", `[]`, 1, `{}`, d))
		require.NoError(t, err)
	}
	_, err := store.Append(ctx, mustOrder(t, 999, "u2", `[]`, 1, `{}`, "2024-12-01T00:00:00"))
	require.NoError(t, err)

	got, err := store.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-03-01T00:00:00", got[0].OrderDate)
	assert.Equal(t, "2024-02-01T00:00:00", got[1].OrderDate)
	assert.Equal(t, "2024-01-01T00:00:00", got[2].OrderDate)
	for _, v := range got {
		assert.Equal(t, "u1", v.UserID)
	}
}

func TestOrderStore_FindByUser_UnknownUserYieldsEmptyList(t *testing.T) {
	store, _, _ := newOrderStore(t)

	got, err := store.FindByUser(context.Background(), "ghost")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOrderStore_AbsentFileReadsAsEmpty(t *testing.T) {
	store, cfg, _ := newOrderStore(t)
	require.NoError(t, os.Remove(cfg.OrdersPath()))

	_, err := store.FindByNumber(context.Background(), 1)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	got, err := store.FindByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOrderStore_MalformedRows(t *testing.T) {
	t.Run("non-numeric order number fails the read", func(t *testing.T) {
		store, cfg, _ := newOrderStore(t)
		appendRawLine(t, cfg.OrdersPath(), `id-1,not-a-number,u1,[],1,{},2024-01-01T00:00:00`)

		_, err := store.FindByNumber(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFormatFailure))
	})

	t.Run("corrupt items field fails the matching read", func(t *testing.T) {
		store, cfg, _ := newOrderStore(t)
		appendRawLine(t, cfg.OrdersPath(), `id-2,77,u1,"{not json",1,{},2024-01-01T00:00:00`)

		_, err := store.FindByNumber(context.Background(), 77)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFormatFailure))

		_, err = store.FindByUser(context.Background(), "u1")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFormatFailure))
	})

	t.Run("short row fails the read", func(t *testing.T) {
		store, cfg, _ := newOrderStore(t)
		appendRawLine(t, cfg.OrdersPath(), `id-3,88,u1`)

		_, err := store.FindByNumber(context.Background(), 88)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindFormatFailure))
	})
}
