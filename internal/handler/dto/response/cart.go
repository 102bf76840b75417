package response

import (
	"encoding/json"

	"flatcart/internal/usecase/queries"
)

type SaveCartResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewSaveCartResponse() *SaveCartResponse {
	return &SaveCartResponse{
		Success: true,
		Message: "Cart saved successfully",
	}
}

type CartResponse struct {
	Success bool         `json:"success"`
	Cart    *CartPayload `json:"cart"`
}

type CartPayload struct {
	UserID    string          `json:"user_id"`
	Items     json.RawMessage `json:"items"`
	UpdatedAt string          `json:"updated_at"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	return &CartResponse{
		Success: true,
		Cart: &CartPayload{
			UserID:    v.UserID,
			Items:     v.Items,
			UpdatedAt: v.UpdatedAt,
		},
	}
}
