package components

import (
	"price-resolver/internal/pkg/clock"
	"price-resolver/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		queries.NewPriceQueries,
	),
)
