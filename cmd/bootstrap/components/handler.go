package components

import (
	"price-resolver/internal/handler"
	"price-resolver/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPriceHandler,
	),
	fx.Invoke(handler.NewRouter),
)
