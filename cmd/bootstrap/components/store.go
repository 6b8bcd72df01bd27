package components

import (
	"price-resolver/internal/infra/cache"
	"price-resolver/internal/infra/readstore"
	"price-resolver/internal/pkg/clock"
	"price-resolver/internal/pkg/config"
	"price-resolver/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			readstore.NewPriceReadStore,
			fx.As(new(queries.TimelineReadStore)),
		),
		NewTimelineCache,
		fx.Annotate(
			cache.NewSource,
			fx.As(new(queries.TimelineSource)),
		),
	),
)

func NewTimelineCache(cfg config.Config, clk clock.Clock) (*cache.TimelineCache, error) {
	return cache.NewTimelineCache(cfg.Cache, clk)
}
