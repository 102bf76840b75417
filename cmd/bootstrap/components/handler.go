package components

import (
	"flatcart/internal/handler"
	"flatcart/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewCartHandler,
	),
	fx.Invoke(handler.NewRouter),
)
