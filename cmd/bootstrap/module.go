package bootstrap

import (
	"price-resolver/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
