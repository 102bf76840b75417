package order

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrInvalidOrderNumber  = errors.New("order number must be positive")
	ErrEmptyUserID         = errors.New("user id must not be empty")
	ErrInvalidItems        = errors.New("items must be a JSON array")
	ErrInvalidCustomerInfo = errors.New("customer info must be a JSON object")
	ErrNegativeTotal       = errors.New("total must not be negative")
)

// Order is an immutable purchase record. The storage layer assigns the
// generated order id and the default order date at append time.
type Order struct {
	number       int64
	userID       string
	items        json.RawMessage
	total        float64
	customerInfo json.RawMessage
	orderDate    string
}

func NewOrder(
	number int64,
	userID string,
	items json.RawMessage,
	total float64,
	customerInfo json.RawMessage,
	orderDate string,
) (*Order, error) {
	if number <= 0 {
		return nil, ErrInvalidOrderNumber
	}
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if total < 0 {
		return nil, ErrNegativeTotal
	}

	items, err := normalizeJSON(items, '[', "[]", ErrInvalidItems)
	if err != nil {
		return nil, err
	}
	customerInfo, err = normalizeJSON(customerInfo, '{', "{}", ErrInvalidCustomerInfo)
	if err != nil {
		return nil, err
	}

	return &Order{
		number:       number,
		userID:       userID,
		items:        items,
		total:        total,
		customerInfo: customerInfo,
		orderDate:    orderDate,
	}, nil
}

// normalizeJSON defaults an absent value and rejects anything that is not a
// valid JSON document opening with the expected delimiter.
func normalizeJSON(raw json.RawMessage, open byte, empty string, invalid error) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.RawMessage(empty), nil
	}
	if trimmed[0] != open || !json.Valid(trimmed) {
		return nil, invalid
	}
	return trimmed, nil
}

func (o *Order) Number() int64                 { return o.number }
func (o *Order) UserID() string                { return o.userID }
func (o *Order) Items() json.RawMessage        { return o.items }
func (o *Order) Total() float64                { return o.total }
func (o *Order) CustomerInfo() json.RawMessage { return o.customerInfo }
func (o *Order) OrderDate() string             { return o.orderDate }
