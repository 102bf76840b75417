package csvstore

import (
	"bytes"
	"encoding/json"
	"strconv"

	"flatcart/internal/infra"
	"flatcart/internal/usecase/queries"
)

// Column layout of the two backing tables. The header row is written by the
// store constructors and skipped on every read.
var (
	orderHeader = []string{"order_id", "order_number", "user_id", "items", "total", "customer_info", "order_date"}
	cartHeader  = []string{"user_id", "items", "updated_at"}
)

const (
	orderColNumber = 1
	orderColUser   = 2
	cartColUser    = 0
)

func encodeOrderRow(v *queries.OrderView) []string {
	return []string{
		v.OrderID,
		strconv.FormatInt(v.Number, 10),
		v.UserID,
		string(v.Items),
		formatTotal(v.Total),
		string(v.CustomerInfo),
		v.OrderDate,
	}
}

func decodeOrderRow(rec []string) (*queries.OrderView, error) {
	if len(rec) != len(orderHeader) {
		return nil, infra.WrapStoreErr(infra.KindFormatFailure, "order row has wrong field count", nil)
	}

	number, err := strconv.ParseInt(rec[orderColNumber], 10, 64)
	if err != nil {
		return nil, infra.WrapStoreErr(infra.KindFormatFailure, "malformed order number", err)
	}
	total, err := strconv.ParseFloat(rec[4], 64)
	if err != nil {
		return nil, infra.WrapStoreErr(infra.KindFormatFailure, "malformed order total", err)
	}
	items, err := decodeJSONField(rec[3], "order items")
	if err != nil {
		return nil, err
	}
	customerInfo, err := decodeJSONField(rec[5], "customer info")
	if err != nil {
		return nil, err
	}

	return &queries.OrderView{
		OrderID:      rec[0],
		Number:       number,
		UserID:       rec[orderColUser],
		Items:        items,
		Total:        total,
		CustomerInfo: customerInfo,
		OrderDate:    rec[6],
	}, nil
}

func encodeCartRow(v *queries.CartView) []string {
	return []string{v.UserID, string(v.Items), v.UpdatedAt}
}

func decodeCartRow(rec []string) (*queries.CartView, error) {
	if len(rec) != len(cartHeader) {
		return nil, infra.WrapStoreErr(infra.KindFormatFailure, "cart row has wrong field count", nil)
	}

	items, err := decodeJSONField(rec[1], "cart items")
	if err != nil {
		return nil, err
	}

	return &queries.CartView{
		UserID:    rec[cartColUser],
		Items:     items,
		UpdatedAt: rec[2],
	}, nil
}

// formatTotal keeps the shortest representation that round-trips, so 19.99
// is stored as "19.99" rather than a padded form.
func formatTotal(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}

func decodeJSONField(s string, what string) (json.RawMessage, error) {
	raw := json.RawMessage(bytes.TrimSpace([]byte(s)))
	if !json.Valid(raw) {
		return nil, infra.WrapStoreErr(infra.KindFormatFailure, "corrupt "+what+" field", nil)
	}
	return raw, nil
}
