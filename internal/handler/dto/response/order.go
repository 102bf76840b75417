package response

import (
	"encoding/json"

	"flatcart/internal/usecase/queries"
)

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

func NewCreateOrderResponse(orderID string) *CreateOrderResponse {
	return &CreateOrderResponse{
		Success: true,
		OrderID: orderID,
		Message: "Order created successfully",
	}
}

type OrderResponse struct {
	Success bool          `json:"success"`
	Order   *OrderPayload `json:"order"`
}

type OrderPayload struct {
	OrderID      string          `json:"order_id"`
	OrderNumber  int64           `json:"orderNumber"`
	UserID       string          `json:"userId"`
	Items        json.RawMessage `json:"items"`
	Total        float64         `json:"total"`
	CustomerInfo json.RawMessage `json:"customerInfo"`
	OrderDate    string          `json:"orderDate"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		Success: true,
		Order: &OrderPayload{
			OrderID:      v.OrderID,
			OrderNumber:  v.Number,
			UserID:       v.UserID,
			Items:        v.Items,
			Total:        v.Total,
			CustomerInfo: v.CustomerInfo,
			OrderDate:    v.OrderDate,
		},
	}
}

type OrderListResponse struct {
	Success bool             `json:"success"`
	Orders  []*OrderListItem `json:"orders"`
}

// OrderListItem omits userId: the list endpoint is already scoped to one
// user by its path parameter.
type OrderListItem struct {
	OrderID      string          `json:"order_id"`
	OrderNumber  int64           `json:"orderNumber"`
	Items        json.RawMessage `json:"items"`
	Total        float64         `json:"total"`
	CustomerInfo json.RawMessage `json:"customerInfo"`
	OrderDate    string          `json:"orderDate"`
}

func FromOrderViews(vs []*queries.OrderView) *OrderListResponse {
	items := make([]*OrderListItem, 0, len(vs))
	for _, v := range vs {
		items = append(items, &OrderListItem{
			OrderID:      v.OrderID,
			OrderNumber:  v.Number,
			Items:        v.Items,
			Total:        v.Total,
			CustomerInfo: v.CustomerInfo,
			OrderDate:    v.OrderDate,
		})
	}
	return &OrderListResponse{Success: true, Orders: items}
}
