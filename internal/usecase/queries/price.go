package queries

import (
	"context"
	"errors"
	"time"

	"price-resolver/internal/domain/pricing"
	"price-resolver/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Read model (DTO for read side)
type ResolvedPriceView struct {
	ProductID   int64           `json:"product_id"`
	BrandID     int64           `json:"brand_id"`
	PriceListID int64           `json:"price_list_id"`
	ValidFrom   time.Time       `json:"valid_from"`
	ValidTo     time.Time       `json:"valid_to"`
	Amount      decimal.Decimal `json:"amount"`
}

// TimelineReadStore is the backing-store port: one read keyed by
// (product, brand). Implementations signal absence with a
// KindNotFound repository error; anything else is a store failure.
type TimelineReadStore interface {
	FindByProductAndBrand(ctx context.Context, productID pricing.ProductID, brandID pricing.BrandID) (*pricing.Timeline, error)
}

// TimelineSource hands out timelines, usually from a cache in front of
// the read store. Errors are marked with the errs sentinels
// (ErrTimelineNotFound, ErrBackingStore, ErrResolveTimeout).
type TimelineSource interface {
	Load(ctx context.Context, productID pricing.ProductID, brandID pricing.BrandID) (*pricing.Timeline, error)
}

type PriceQueries interface {
	Resolve(ctx context.Context, at time.Time, productID, brandID int64) (*ResolvedPriceView, error)
}

type priceQueriesImpl struct {
	source TimelineSource
}

func NewPriceQueries(source TimelineSource) PriceQueries {
	return &priceQueriesImpl{source: source}
}

// Resolve validates its inputs before any I/O, loads the timeline
// through the cached source and picks the applicable rule.
func (q *priceQueriesImpl) Resolve(ctx context.Context, at time.Time, productID, brandID int64) (*ResolvedPriceView, error) {
	if at.IsZero() {
		return nil, errs.Mark(errs.New("application date is required"), errs.ErrDomainValidation)
	}
	pid, err := pricing.NewProductID(productID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	bid, err := pricing.NewBrandID(brandID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	timeline, err := q.source.Load(ctx, pid, bid)
	if err != nil {
		if errors.Is(err, errs.ErrTimelineNotFound) {
			// An unknown pair and a known pair with no covering rule
			// are the same outcome for the caller.
			return nil, errs.Mark(err, errs.ErrPriceNotFound)
		}
		return nil, err
	}

	rule, ok := timeline.ResolveAt(at)
	if !ok {
		return nil, errs.Mark(errs.New("no rule covers the application date"), errs.ErrPriceNotFound)
	}

	return &ResolvedPriceView{
		ProductID:   pid.Int64(),
		BrandID:     bid.Int64(),
		PriceListID: rule.PriceListID().Int64(),
		ValidFrom:   rule.ValidFrom(),
		ValidTo:     rule.ValidTo(),
		Amount:      rule.Amount().Decimal(),
	}, nil
}
