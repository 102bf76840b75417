package request

import (
	"encoding/json"

	"flatcart/internal/usecase/commands"
)

// CreateOrderRequest carries the camelCase order fields of the wire
// contract. Items and customerInfo stay opaque JSON end to end.
type CreateOrderRequest struct {
	OrderNumber  int64           `json:"orderNumber" binding:"required,gt=0"`
	UserID       string          `json:"userId" binding:"required"`
	Items        json.RawMessage `json:"items" binding:"required"`
	Total        float64         `json:"total" binding:"gte=0"`
	CustomerInfo json.RawMessage `json:"customerInfo"`
	OrderDate    string          `json:"orderDate"`
}

func (r *CreateOrderRequest) ToCommand() commands.CreateOrderCommand {
	return commands.CreateOrderCommand{
		Number:       r.OrderNumber,
		UserID:       r.UserID,
		Items:        r.Items,
		Total:        r.Total,
		CustomerInfo: r.CustomerInfo,
		OrderDate:    r.OrderDate,
	}
}
