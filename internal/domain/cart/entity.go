package cart

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrEmptyUserID  = errors.New("user id must not be empty")
	ErrInvalidItems = errors.New("items must be a JSON array")
)

// Cart holds a user's pending items. The storage layer stamps updated_at on
// every save, so the entity carries no timestamp of its own.
type Cart struct {
	userID string
	items  json.RawMessage
}

func NewCart(userID string, items json.RawMessage) (*Cart, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	trimmed := bytes.TrimSpace(items)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = json.RawMessage("[]")
	} else if trimmed[0] != '[' || !json.Valid(trimmed) {
		return nil, ErrInvalidItems
	}

	return &Cart{userID: userID, items: trimmed}, nil
}

func (c *Cart) UserID() string         { return c.userID }
func (c *Cart) Items() json.RawMessage { return c.items }
