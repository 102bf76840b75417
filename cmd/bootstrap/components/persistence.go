package components

import (
	"flatcart/internal/infra/csvstore"
	"flatcart/internal/pkg/config"
	"flatcart/internal/usecase/commands"
	"flatcart/internal/usecase/queries"

	"go.uber.org/fx"
)

// PersistenceModule wires the two file-backed stores. Each store serves
// both the write side (repository) and the read side (read store), the
// whole table being one file either way.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		func(cfg config.Config) config.StorageConfig { return cfg.Storage },
		fx.Annotate(
			csvstore.NewOrderStore,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			csvstore.NewCartStore,
			fx.As(new(commands.CartRepository)),
			fx.As(new(queries.CartReadStore)),
		),
	),
)
