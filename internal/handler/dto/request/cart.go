package request

import (
	"encoding/json"

	"flatcart/internal/usecase/commands"
)

// SaveCartRequest uses snake_case keys, matching the cart side of the wire
// contract.
type SaveCartRequest struct {
	UserID string          `json:"user_id" binding:"required"`
	Items  json.RawMessage `json:"items" binding:"required"`
}

func (r *SaveCartRequest) ToCommand() commands.SaveCartCommand {
	return commands.SaveCartCommand{
		UserID: r.UserID,
		Items:  r.Items,
	}
}
