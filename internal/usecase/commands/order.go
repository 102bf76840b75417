package commands

import (
	"context"
	"encoding/json"
	"errors"

	"flatcart/internal/domain/order"
	"flatcart/internal/pkg/errs"
)

var ErrInvalidOrder = errors.New("invalid order")

type CreateOrderCommand struct {
	Number       int64
	UserID       string
	Items        json.RawMessage
	Total        float64
	CustomerInfo json.RawMessage
	OrderDate    string
}

type CreateOrderResult struct {
	OrderID string
}

// OrderRepository appends one order row and reports the generated id.
type OrderRepository interface {
	Append(ctx context.Context, o *order.Order) (string, error)
}

type OrderCommands interface {
	Create(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error)
}

type orderCommandsImpl struct {
	repo OrderRepository
}

func NewOrderCommands(repo OrderRepository) OrderCommands {
	return &orderCommandsImpl{repo: repo}
}

func (uc *orderCommandsImpl) Create(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	o, err := order.NewOrder(cmd.Number, cmd.UserID, cmd.Items, cmd.Total, cmd.CustomerInfo, cmd.OrderDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOrder)
	}

	id, err := uc.repo.Append(ctx, o)
	if err != nil {
		return nil, err
	}
	return &CreateOrderResult{OrderID: id}, nil
}
