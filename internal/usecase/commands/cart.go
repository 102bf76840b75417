package commands

import (
	"context"
	"encoding/json"
	"errors"

	"flatcart/internal/domain/cart"
	"flatcart/internal/pkg/errs"
)

var ErrInvalidCart = errors.New("invalid cart")

type SaveCartCommand struct {
	UserID string
	Items  json.RawMessage
}

// CartRepository replaces or inserts the single row keyed by user id.
type CartRepository interface {
	Upsert(ctx context.Context, c *cart.Cart) error
}

type CartCommands interface {
	Save(ctx context.Context, cmd SaveCartCommand) error
}

type cartCommandsImpl struct {
	repo CartRepository
}

func NewCartCommands(repo CartRepository) CartCommands {
	return &cartCommandsImpl{repo: repo}
}

func (uc *cartCommandsImpl) Save(ctx context.Context, cmd SaveCartCommand) error {
	c, err := cart.NewCart(cmd.UserID, cmd.Items)
	if err != nil {
		return errs.Mark(err, ErrInvalidCart)
	}
	return uc.repo.Upsert(ctx, c)
}
