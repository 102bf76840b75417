package bootstrap

import (
	"flatcart/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
